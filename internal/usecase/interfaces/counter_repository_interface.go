package interfaces

import "context"

// ICounterRepository owns the monotonic ticket-number counter in the
// Counters table. Allocation is write-serialized by DynamoDB, so
// concurrent creates always receive distinct consecutive numbers.
type ICounterRepository interface {
	// NextTicketNumber atomically increments and returns the counter
	// (SET counter_value = if_not_exists(counter_value, 0) + 1).
	NextTicketNumber(ctx context.Context) (int64, error)

	// CurrentTicketNumber reads the counter with a consistent read;
	// false when the counter was never initialized.
	CurrentTicketNumber(ctx context.Context) (int64, bool, error)

	// RaiseTicketNumber lifts the counter to n after a migration
	// batch, conditional on counter_value <= n (or absence) so a
	// stale re-run can never lower it.
	RaiseTicketNumber(ctx context.Context, n int64) error
}
