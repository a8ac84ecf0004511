package interfaces

import "errors"

// Contract errors shared by the repository implementations and the
// usecases that consume them.
var (
	// ErrNotFound: the addressed item does not exist.
	ErrNotFound = errors.New("item not found")

	// ErrConditionFailed: a condition expression rejected the write
	// (ID collision, double payment, clock-state race, counter
	// rollback). Maps to 409.
	ErrConditionFailed = errors.New("condition failed")

	// ErrResolvedTicketLocked: a status change was attempted on a
	// Resolved ticket that still carries line items; payment and
	// refund are the only ways through.
	ErrResolvedTicketLocked = errors.New("resolved ticket with line items")

	// ErrPartialBatch: a batch get still had unprocessed keys after
	// retrying. Maps to 503 so the client retries; a partial result
	// is never returned.
	ErrPartialBatch = errors.New("batch get left unprocessed keys")

	// ErrDataIntegrity: stored data violates an invariant, e.g. a
	// ticket referencing a missing customer. Maps to 500.
	ErrDataIntegrity = errors.New("data integrity error")
)
