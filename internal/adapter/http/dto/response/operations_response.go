package response

import "truetickets/internal/domain/entities"

type ClockStateResponse struct {
	ClockedIn   bool  `json:"clocked_in"`
	LastUpdated int64 `json:"last_updated"`
}

func FromClockState(s entities.ClockState) ClockStateResponse {
	return ClockStateResponse{ClockedIn: s.ClockedIn, LastUpdated: s.LastUpdated}
}

type TimeEntryResponse struct {
	UserName   string `json:"user_name"`
	Timestamp  int64  `json:"timestamp"`
	IsClockOut bool   `json:"is_clock_out"`
}

type UserWageResponse struct {
	Name      string `json:"name"`
	WageCents int64  `json:"wage_cents"`
}

type ClockLogsResponse struct {
	Entries []TimeEntryResponse `json:"entries"`
	Wages   []UserWageResponse  `json:"wages"`
}

func FromClockLogs(logs entities.ClockLogs) ClockLogsResponse {
	entries := make([]TimeEntryResponse, 0, len(logs.Entries))
	for _, e := range logs.Entries {
		entries = append(entries, TimeEntryResponse{
			UserName:   e.UserName,
			Timestamp:  e.Timestamp,
			IsClockOut: e.IsClockOut,
		})
	}
	wages := make([]UserWageResponse, 0, len(logs.Wages))
	for _, w := range logs.Wages {
		wages = append(wages, UserWageResponse{Name: w.UserName, WageCents: w.WageCents})
	}
	return ClockLogsResponse{Entries: entries, Wages: wages}
}

type PurchaseItemResponse struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

type PurchasesResponse struct {
	MonthYear string                 `json:"month_year"`
	Items     []PurchaseItemResponse `json:"items"`
}

func FromPurchases(mp entities.MonthPurchases) PurchasesResponse {
	items := make([]PurchaseItemResponse, 0, len(mp.Items))
	for _, it := range mp.Items {
		items = append(items, PurchaseItemResponse{Name: it.Name, AmountCents: it.AmountCents})
	}
	return PurchasesResponse{MonthYear: mp.MonthYear, Items: items}
}

type StoreConfigResponse struct {
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

func FromStoreConfig(sc entities.StoreConfig) StoreConfigResponse {
	return StoreConfigResponse{
		StoreName:  sc.StoreName,
		TaxRate:    sc.TaxRate,
		Address:    sc.Address,
		City:       sc.City,
		State:      sc.State,
		Zip:        sc.Zip,
		Phone:      sc.Phone,
		Email:      sc.Email,
		Disclaimer: sc.Disclaimer,
	}
}

type PaymentResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	TicketNumber   int64  `json:"ticket_number"`
	TotalPaidCents int64  `json:"total_paid_cents,omitempty"`
}

type MigrationResponse struct {
	MigratedCount       int64 `json:"migrated_count"`
	HighestTicketNumber int64 `json:"highest_ticket_number"`
}

type UploadAttachmentResponse struct {
	TicketNumber int64  `json:"ticket_number"`
	URL          string `json:"url"`
}

type QueryAllResponse struct {
	Tickets   []TicketResponse   `json:"tickets"`
	Customers []CustomerResponse `json:"customers"`
}
