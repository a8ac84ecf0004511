package interfaces

import (
	"context"
	"truetickets/internal/domain/entities"
)

// IOperationsRepository covers the shop-operations state in the
// Config, TimeEntries and Purchases tables.
type IOperationsRepository interface {
	// ClockInOut writes one immutable TimeEntry and flips the user's
	// "{user}#is_clocked_in" state in a single transaction. The state
	// Put carries a condition (must be clocked out to clock in and
	// vice versa); a cancelled transaction surfaces as
	// ErrConditionFailed.
	ClockInOut(ctx context.Context, user string, clockingIn bool, now int64) error

	// ClockStatus is a strongly consistent read; missing state means
	// clocked out.
	ClockStatus(ctx context.Context, user string) (entities.ClockState, error)

	ListTimeEntries(ctx context.Context, start, end int64) ([]entities.TimeEntry, error)

	// RewriteClockLogs deletes the user's entries inside the day
	// range and inserts one in/out pair per segment, all in one
	// transaction.
	RewriteClockLogs(ctx context.Context, user string, startOfDay, endOfDay int64, segments []entities.TimeSegment) error

	// GetWages batch-reads "{user}#wage" rows; users without a record
	// are absent from the result and default to zero at the caller.
	GetWages(ctx context.Context, users []string) (map[string]int64, error)
	PutWage(ctx context.Context, user string, wageCents int64) error

	GetPurchases(ctx context.Context, monthYear string) (entities.MonthPurchases, bool, error)
	PutPurchases(ctx context.Context, mp entities.MonthPurchases) error

	GetStoreConfig(ctx context.Context) (entities.StoreConfig, bool, error)
	PutStoreConfig(ctx context.Context, sc entities.StoreConfig) error

	// GetTaxRate reads tax_rate from the config singleton, 0 when the
	// record or attribute is missing. Read fresh on every payment.
	GetTaxRate(ctx context.Context) (float64, error)
}
