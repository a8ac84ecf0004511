package interfaces

import (
	"context"
	"truetickets/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for customers
// and their two derived tables (CustomerNames, CustomerPhoneIndex).
// Every mutation commits the primary row and all index side effects
// in one transaction.
type ICustomerRepository interface {
	// Create writes the customer, its CustomerNames row and one
	// CustomerPhoneIndex row per phone, conditional on the customer
	// ID not existing. Returns ErrConditionFailed on an ID collision.
	Create(ctx context.Context, c entities.Customer) error

	GetByID(ctx context.Context, id string) (entities.Customer, bool, error)

	// ListByPhone resolves customer IDs through CustomerPhoneIndex
	// and batch-gets a summary projection (customer_id, full_name,
	// phone_numbers).
	ListByPhone(ctx context.Context, phone string) ([]entities.Customer, error)

	// SearchIDsByName scans CustomerNames with an AND-of-contains
	// filter over full_name_lc, collecting at most limit IDs.
	SearchIDsByName(ctx context.Context, words []string, limit int) ([]string, error)

	// BatchGet returns customers for the given IDs with the merge
	// projection (customer_id, full_name, email, phone_numbers,
	// created_at, last_updated).
	BatchGet(ctx context.Context, ids []string) ([]entities.Customer, error)

	// Update applies a partial update; a phone change reads the
	// current numbers with a consistent read and diffs the phone
	// index rows, a name change syncs CustomerNames.
	Update(ctx context.Context, id string, u entities.CustomerUpdate) error
}
