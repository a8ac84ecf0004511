package entities

// TimeEntry is one immutable timeclock event. All entries share the
// constant partition "ALL" and sort by timestamp, so a day's logs for
// the whole shop are a single range query.
type TimeEntry struct {
	PK         string `json:"-"`
	UserName   string `json:"user"`
	Timestamp  int64  `json:"timestamp"`
	IsClockOut bool   `json:"out"`
}

// TimeSegment is a corrected in/out pair used when rewriting a day's
// clock logs.
type TimeSegment struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// ClockState is the mutable per-user toggle stored in Config under
// "{user}#is_clocked_in".
type ClockState struct {
	ClockedIn   bool  `json:"clocked_in"`
	LastUpdated int64 `json:"last_updated"`
}

// ClockLogs is the clock-logs report: the raw entries in a range plus
// the current wage for every user appearing in them.
type ClockLogs struct {
	Entries []TimeEntry `json:"entries"`
	Wages   []UserWage  `json:"wages"`
}

// PurchaseItem is opaque to the core beyond its shape; the frontend
// owns the semantics of the monthly purchases ledger.
type PurchaseItem struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

// MonthPurchases is the purchases ledger for one calendar month,
// keyed "YYYY-MM" and overwritten whole on update.
type MonthPurchases struct {
	MonthYear string         `json:"month_year"`
	Items     []PurchaseItem `json:"items"`
}

// StoreConfig is the singleton shop configuration (Config PK
// "config"). TaxRate is a percentage and is read fresh on every
// payment so rate changes apply immediately.
type StoreConfig struct {
	StoreName  string  `json:"store_name"`
	TaxRate    float64 `json:"tax_rate"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Zip        string  `json:"zip"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Disclaimer string  `json:"disclaimer"`
}

// UserWage is the hourly wage record stored in Config under
// "{user}#wage".
type UserWage struct {
	UserName  string `json:"name"`
	WageCents int64  `json:"wage_cents"`
}
