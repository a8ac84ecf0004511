package interfaces

import (
	"context"
	"truetickets/internal/domain/entities"
)

// ITicketRepository abstracts DynamoDB persistence for tickets and
// the TicketSubjects search projection. Mutations that touch both
// tables are committed as a single transaction inside the
// implementation so the subject projection can never drift from the
// ticket.
type ITicketRepository interface {
	// Create writes the ticket and its TicketSubjects row in one
	// transaction. The ticket number must already be allocated.
	Create(ctx context.Context, t entities.Ticket) error

	GetByNumber(ctx context.Context, number int64) (entities.Ticket, bool, error)

	// GetPaymentView fetches only line_items, device, status and
	// subject, which is all payment capture and refund need.
	GetPaymentView(ctx context.Context, number int64) (entities.Ticket, bool, error)

	ListByCustomer(ctx context.Context, customerID string) ([]entities.Ticket, error)

	// SearchNumbersBySubject pages the TicketSearchIndex newest-first,
	// AND-ing a contains(subject_lc, word) filter per word, until
	// limit numbers are collected or the index is exhausted.
	SearchNumbersBySubject(ctx context.Context, words []string, limit int) ([]int64, error)

	// BatchGet returns full tickets for the given numbers. Order is
	// not preserved; callers re-sort. Missing numbers are skipped.
	BatchGet(ctx context.Context, numbers []int64) ([]entities.Ticket, error)

	Recent(ctx context.Context, limit int32) ([]entities.Ticket, error)
	RecentByStatusDevice(ctx context.Context, statusDevice string, limit int32) ([]entities.Ticket, error)

	// ListPaidBetween pages the sparse RevenueIndex for tickets with
	// paid_at in [start, end], newest payment first.
	ListPaidBetween(ctx context.Context, start, end int64) ([]entities.Ticket, error)

	// Update applies a partial update, rewriting status_device when
	// status or device changes and syncing TicketSubjects when the
	// subject changes. Returns ErrResolvedTicketLocked when a status
	// change is attempted on a Resolved ticket carrying line items.
	Update(ctx context.Context, number int64, u entities.TicketUpdate) error

	AddComment(ctx context.Context, number int64, c entities.Comment) error
	AppendAttachment(ctx context.Context, number int64, url string) error

	// ResolveWithPayment flips the ticket to Resolved, stamps
	// paid_at/total_paid_cents and appends the receipt comment, all
	// guarded by status <> Resolved. Returns ErrConditionFailed when
	// the ticket is already resolved.
	ResolveWithPayment(ctx context.Context, number int64, device entities.Device, totalPaidCents int64, receipt entities.Comment, now int64) error

	// RefundPayment reverts a Resolved ticket to In Progress, removes
	// the payment attributes and appends the refund comment, guarded
	// by status = Resolved.
	RefundPayment(ctx context.Context, number int64, device entities.Device, comment entities.Comment, now int64) error

	// MarkDontFix sets the ticket Ready, clears line items and
	// appends the zero-dollar statement comment.
	MarkDontFix(ctx context.Context, number int64, device entities.Device, comment entities.Comment, now int64) error

	// Import writes one migrated customer and ticket, including every
	// index row, in a single transaction.
	Import(ctx context.Context, c entities.Customer, t entities.Ticket) error
}
