package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase/interfaces"
)

var (
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")
	ErrInvalidDevice         = errors.New("invalid device")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrEmptySearchQuery      = errors.New("empty search query")
	ErrTicketConflict        = errors.New("ticket write conflict")
	ErrResolvedWithItems     = errors.New("resolved ticket with line items cannot change status")
	ErrDataIntegrity         = errors.New("data integrity error")
	ErrPartialBatchResult    = errors.New("partial batch result, retry")
	ErrCounterNotInitialized = errors.New("ticket counter not initialized")
)

const (
	searchResultCap  = 15
	recentTicketsCap = 30
	suffixResultCap  = 7
)

// ITicketUseCase encapsulates ticket reads and writes, including the
// customer join performed on every listing.
type ITicketUseCase interface {
	GetByNumber(ctx context.Context, number int64) (entities.Ticket, error)
	GetByCustomer(ctx context.Context, customerID string) ([]entities.Ticket, error)
	SearchBySubject(ctx context.Context, query string) ([]entities.Ticket, error)
	SearchBySuffix(ctx context.Context, suffix int64) ([]entities.Ticket, error)
	Recent(ctx context.Context) ([]entities.Ticket, error)
	RecentFiltered(ctx context.Context, device entities.Device, statuses []entities.TicketStatus) ([]entities.Ticket, error)
	Create(ctx context.Context, customerID, subject, password string, itemsLeft []string, device entities.Device) (entities.Ticket, error)
	Update(ctx context.Context, number int64, u entities.TicketUpdate) error
	AddComment(ctx context.Context, number int64, body, techName string) error
}

type TicketUseCase struct {
	ticketRepo   interfaces.ITicketRepository
	customerRepo interfaces.ICustomerRepository
	counterRepo  interfaces.ICounterRepository
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(ticketRepo interfaces.ITicketRepository, customerRepo interfaces.ICustomerRepository, counterRepo interfaces.ICounterRepository) *TicketUseCase {
	return &TicketUseCase{ticketRepo: ticketRepo, customerRepo: customerRepo, counterRepo: counterRepo}
}

func (u *TicketUseCase) GetByNumber(ctx context.Context, number int64) (entities.Ticket, error) {
	t, found, err := u.ticketRepo.GetByNumber(ctx, number)
	if err != nil {
		log.Printf("[ticket][usecase] get by number failed ticket_number=%d err=%v", number, err)
		return entities.Ticket{}, err
	}
	if !found {
		return entities.Ticket{}, ErrTicketNotFound
	}

	c, found, err := u.customerRepo.GetByID(ctx, t.CustomerID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if !found {
		log.Printf("[ticket][usecase] ticket %d references missing customer %q", number, t.CustomerID)
		return entities.Ticket{}, fmt.Errorf("%w: ticket %d references missing customer %q", ErrDataIntegrity, number, t.CustomerID)
	}
	t.Customer = &c
	return t, nil
}

func (u *TicketUseCase) GetByCustomer(ctx context.Context, customerID string) ([]entities.Ticket, error) {
	c, found, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCustomerNotFound
	}

	tickets, err := u.ticketRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		log.Printf("[ticket][usecase] list by customer failed customer_id=%s err=%v", customerID, err)
		return nil, err
	}
	for i := range tickets {
		tickets[i].Customer = &c
	}
	return tickets, nil
}

func (u *TicketUseCase) SearchBySubject(ctx context.Context, query string) ([]entities.Ticket, error) {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil, ErrEmptySearchQuery
	}

	numbers, err := u.ticketRepo.SearchNumbersBySubject(ctx, words, searchResultCap)
	if err != nil {
		log.Printf("[ticket][usecase] subject search failed query=%q err=%v", query, err)
		return nil, err
	}
	if len(numbers) == 0 {
		return []entities.Ticket{}, nil
	}

	tickets, err := u.ticketRepo.BatchGet(ctx, numbers)
	if err != nil {
		return nil, mapBatchErr(err)
	}

	// Batch get does not preserve order; restore the newest-first
	// order the index query collected.
	rank := make(map[int64]int, len(numbers))
	for i, n := range numbers {
		rank[n] = i
	}
	sort.Slice(tickets, func(i, j int) bool {
		return rank[tickets[i].TicketNumber] < rank[tickets[j].TicketNumber]
	})

	return u.mergeCustomers(ctx, tickets)
}

func (u *TicketUseCase) SearchBySuffix(ctx context.Context, suffix int64) ([]entities.Ticket, error) {
	counter, found, err := u.counterRepo.CurrentTicketNumber(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCounterNotInitialized
	}

	// Every ticket number ending in the suffix, counting down from
	// the current counter.
	base := (counter/1000)*1000 + suffix
	if base > counter {
		base -= 1000
	}
	var numbers []int64
	for base > 0 && len(numbers) < suffixResultCap {
		numbers = append(numbers, base)
		base -= 1000
	}
	if len(numbers) == 0 {
		return []entities.Ticket{}, nil
	}

	tickets, err := u.ticketRepo.BatchGet(ctx, numbers)
	if err != nil {
		return nil, mapBatchErr(err)
	}
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].TicketNumber > tickets[j].TicketNumber
	})
	return u.mergeCustomers(ctx, tickets)
}

func (u *TicketUseCase) Recent(ctx context.Context) ([]entities.Ticket, error) {
	tickets, err := u.ticketRepo.Recent(ctx, recentTicketsCap)
	if err != nil {
		log.Printf("[ticket][usecase] recent query failed err=%v", err)
		return nil, err
	}
	return u.mergeCustomers(ctx, tickets)
}

func (u *TicketUseCase) RecentFiltered(ctx context.Context, device entities.Device, statuses []entities.TicketStatus) ([]entities.Ticket, error) {
	if !device.Valid() {
		return nil, ErrInvalidDevice
	}
	if len(statuses) == 0 {
		return nil, ErrInvalidStatus
	}

	var tickets []entities.Ticket
	for _, status := range statuses {
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		page, err := u.ticketRepo.RecentByStatusDevice(ctx, entities.StatusDevice(status, device), recentTicketsCap)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, page...)
	}

	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].TicketNumber > tickets[j].TicketNumber
	})
	if len(tickets) > recentTicketsCap {
		tickets = tickets[:recentTicketsCap]
	}
	return u.mergeCustomers(ctx, tickets)
}

func (u *TicketUseCase) Create(ctx context.Context, customerID, subject, password string, itemsLeft []string, device entities.Device) (entities.Ticket, error) {
	if !device.Valid() {
		return entities.Ticket{}, ErrInvalidDevice
	}

	number, err := u.counterRepo.NextTicketNumber(ctx)
	if err != nil {
		log.Printf("[ticket][usecase] counter increment failed err=%v", err)
		return entities.Ticket{}, err
	}

	now := time.Now().Unix()
	t := entities.Ticket{
		TicketNumber: number,
		CustomerID:   customerID,
		Subject:      subject,
		Status:       entities.StatusDiagnosing,
		Device:       device,
		Password:     password,
		ItemsLeft:    itemsLeft,
		CreatedAt:    now,
		LastUpdated:  now,
	}

	if err := u.ticketRepo.Create(ctx, t); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Ticket{}, ErrTicketConflict
		}
		log.Printf("[ticket][usecase] create failed ticket_number=%d err=%v", number, err)
		return entities.Ticket{}, err
	}
	log.Printf("[ticket][usecase] created ticket_number=%d customer_id=%s", number, customerID)
	return t, nil
}

func (u *TicketUseCase) Update(ctx context.Context, number int64, upd entities.TicketUpdate) error {
	if upd.Empty() {
		return ErrNoFieldsToUpdate
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return ErrInvalidStatus
	}
	if upd.Device != nil && !upd.Device.Valid() {
		return ErrInvalidDevice
	}

	err := u.ticketRepo.Update(ctx, number, upd)
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		return ErrTicketNotFound
	case errors.Is(err, interfaces.ErrResolvedTicketLocked):
		return ErrResolvedWithItems
	case err != nil:
		log.Printf("[ticket][usecase] update failed ticket_number=%d err=%v", number, err)
	}
	return err
}

func (u *TicketUseCase) AddComment(ctx context.Context, number int64, body, techName string) error {
	if strings.TrimSpace(body) == "" {
		return ErrNoFieldsToUpdate
	}
	err := u.ticketRepo.AddComment(ctx, number, entities.Comment{
		CommentBody: body,
		TechName:    techName,
		CreatedAt:   time.Now().Unix(),
	})
	if errors.Is(err, interfaces.ErrNotFound) {
		return ErrTicketNotFound
	}
	return err
}

// mergeCustomers batch-fetches the customers a ticket list refers to
// and attaches them. A ticket pointing at a missing customer is a
// stored-data bug and fails the whole read.
func (u *TicketUseCase) mergeCustomers(ctx context.Context, tickets []entities.Ticket) ([]entities.Ticket, error) {
	return mergeCustomersIntoTickets(ctx, u.customerRepo, tickets)
}

func mergeCustomersIntoTickets(ctx context.Context, customerRepo interfaces.ICustomerRepository, tickets []entities.Ticket) ([]entities.Ticket, error) {
	if len(tickets) == 0 {
		return []entities.Ticket{}, nil
	}

	seen := make(map[string]bool)
	var ids []string
	for _, t := range tickets {
		if t.CustomerID == "" || seen[t.CustomerID] {
			continue
		}
		seen[t.CustomerID] = true
		ids = append(ids, t.CustomerID)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %d tickets with no customer ids", ErrDataIntegrity, len(tickets))
	}

	customers, err := customerRepo.BatchGet(ctx, ids)
	if err != nil {
		return nil, mapBatchErr(err)
	}

	byID := make(map[string]entities.Customer, len(customers))
	for _, c := range customers {
		byID[c.CustomerID] = c
	}
	for i := range tickets {
		c, ok := byID[tickets[i].CustomerID]
		if !ok {
			return nil, fmt.Errorf("%w: ticket %d references missing customer %q", ErrDataIntegrity, tickets[i].TicketNumber, tickets[i].CustomerID)
		}
		tickets[i].Customer = &c
	}
	return tickets, nil
}

func mapBatchErr(err error) error {
	if errors.Is(err, interfaces.ErrPartialBatch) {
		return ErrPartialBatchResult
	}
	return err
}
