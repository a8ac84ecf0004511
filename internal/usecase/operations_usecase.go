package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase/interfaces"
)

var (
	ErrClockStateRace     = errors.New("clock state changed during processing")
	ErrAlreadyResolved    = errors.New("ticket already resolved")
	ErrNotResolved        = errors.New("ticket must be resolved to refund")
	ErrNoLineItems        = errors.New("ticket has no line items")
	ErrInvalidTimeRange   = errors.New("invalid time range")
	ErrInvalidMonth       = errors.New("invalid year or month")
	ErrPaymentConflict    = errors.New("payment state changed during processing")
	ErrMissingUserName    = errors.New("user_name is required")
	ErrStoreConfigMissing = errors.New("store config not found")
)

// IOperationsUseCase covers the shop-operations surface: timeclock,
// wages, revenue, purchases, payment capture/refund and the store
// config singleton.
type IOperationsUseCase interface {
	ClockInOut(ctx context.Context, user string, clockingIn bool) (entities.ClockState, error)
	ClockStatus(ctx context.Context, user string) (entities.ClockState, error)
	GetClockLogs(ctx context.Context, start, end int64) (entities.ClockLogs, error)
	UpdateClockLogs(ctx context.Context, user string, startOfDay, endOfDay int64, segments []entities.TimeSegment) error
	UpdateWage(ctx context.Context, user string, wageCents int64) error
	MonthlyRevenue(ctx context.Context, year, month int) ([]entities.Ticket, error)
	GetPurchases(ctx context.Context, year, month int) (entities.MonthPurchases, error)
	PutPurchases(ctx context.Context, year, month int, items []entities.PurchaseItem) error
	TakePayment(ctx context.Context, ticketNumber int64, techName string) (int64, error)
	RefundPayment(ctx context.Context, ticketNumber int64, techName string) error
	DontFix(ctx context.Context, ticketNumber int64, techName string) error
	GetStoreConfig(ctx context.Context) (entities.StoreConfig, error)
	PutStoreConfig(ctx context.Context, sc entities.StoreConfig) error
}

type OperationsUseCase struct {
	opsRepo      interfaces.IOperationsRepository
	ticketRepo   interfaces.ITicketRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IOperationsUseCase = (*OperationsUseCase)(nil)

func NewOperationsUseCase(opsRepo interfaces.IOperationsRepository, ticketRepo interfaces.ITicketRepository, customerRepo interfaces.ICustomerRepository) *OperationsUseCase {
	return &OperationsUseCase{opsRepo: opsRepo, ticketRepo: ticketRepo, customerRepo: customerRepo}
}

func (u *OperationsUseCase) ClockInOut(ctx context.Context, user string, clockingIn bool) (entities.ClockState, error) {
	if strings.TrimSpace(user) == "" {
		return entities.ClockState{}, ErrMissingUserName
	}

	now := time.Now().Unix()
	err := u.opsRepo.ClockInOut(ctx, user, clockingIn, now)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		log.Printf("[operations][usecase] clock toggle race user=%s clocking_in=%t", user, clockingIn)
		return entities.ClockState{}, ErrClockStateRace
	}
	if err != nil {
		log.Printf("[operations][usecase] clock toggle failed user=%s err=%v", user, err)
		return entities.ClockState{}, err
	}
	return entities.ClockState{ClockedIn: clockingIn, LastUpdated: now}, nil
}

func (u *OperationsUseCase) ClockStatus(ctx context.Context, user string) (entities.ClockState, error) {
	if strings.TrimSpace(user) == "" {
		return entities.ClockState{}, ErrMissingUserName
	}
	return u.opsRepo.ClockStatus(ctx, user)
}

func (u *OperationsUseCase) GetClockLogs(ctx context.Context, start, end int64) (entities.ClockLogs, error) {
	if start > end {
		return entities.ClockLogs{}, ErrInvalidTimeRange
	}

	entries, err := u.opsRepo.ListTimeEntries(ctx, start, end)
	if err != nil {
		log.Printf("[operations][usecase] clock logs query failed err=%v", err)
		return entities.ClockLogs{}, err
	}

	seen := make(map[string]bool)
	var users []string
	for _, e := range entries {
		if !seen[e.UserName] {
			seen[e.UserName] = true
			users = append(users, e.UserName)
		}
	}
	sort.Strings(users)

	wageMap, err := u.opsRepo.GetWages(ctx, users)
	if err != nil {
		return entities.ClockLogs{}, mapBatchErr(err)
	}

	wages := make([]entities.UserWage, 0, len(users))
	for _, name := range users {
		wages = append(wages, entities.UserWage{UserName: name, WageCents: wageMap[name]})
	}
	if entries == nil {
		entries = []entities.TimeEntry{}
	}
	return entities.ClockLogs{Entries: entries, Wages: wages}, nil
}

func (u *OperationsUseCase) UpdateClockLogs(ctx context.Context, user string, startOfDay, endOfDay int64, segments []entities.TimeSegment) error {
	if strings.TrimSpace(user) == "" {
		return ErrMissingUserName
	}
	if startOfDay > endOfDay {
		return ErrInvalidTimeRange
	}
	for _, seg := range segments {
		if seg.Start >= seg.End || seg.Start < startOfDay || seg.End > endOfDay {
			return ErrInvalidTimeRange
		}
	}
	return u.opsRepo.RewriteClockLogs(ctx, user, startOfDay, endOfDay, segments)
}

func (u *OperationsUseCase) UpdateWage(ctx context.Context, user string, wageCents int64) error {
	if strings.TrimSpace(user) == "" {
		return ErrMissingUserName
	}
	log.Printf("[operations][usecase] updating wage user=%s wage_cents=%d", user, wageCents)
	return u.opsRepo.PutWage(ctx, user, wageCents)
}

func (u *OperationsUseCase) MonthlyRevenue(ctx context.Context, year, month int) ([]entities.Ticket, error) {
	start, end, err := monthBounds(year, month)
	if err != nil {
		return nil, err
	}

	tickets, err := u.ticketRepo.ListPaidBetween(ctx, start, end)
	if err != nil {
		log.Printf("[operations][usecase] revenue query failed year=%d month=%d err=%v", year, month, err)
		return nil, err
	}
	return mergeCustomersIntoTickets(ctx, u.customerRepo, tickets)
}

func (u *OperationsUseCase) GetPurchases(ctx context.Context, year, month int) (entities.MonthPurchases, error) {
	my, err := monthYearKey(year, month)
	if err != nil {
		return entities.MonthPurchases{}, err
	}

	mp, found, err := u.opsRepo.GetPurchases(ctx, my)
	if err != nil {
		return entities.MonthPurchases{}, err
	}
	if !found {
		return entities.MonthPurchases{MonthYear: my, Items: []entities.PurchaseItem{}}, nil
	}
	return mp, nil
}

func (u *OperationsUseCase) PutPurchases(ctx context.Context, year, month int, items []entities.PurchaseItem) error {
	my, err := monthYearKey(year, month)
	if err != nil {
		return err
	}
	return u.opsRepo.PutPurchases(ctx, entities.MonthPurchases{MonthYear: my, Items: items})
}

func (u *OperationsUseCase) TakePayment(ctx context.Context, ticketNumber int64, techName string) (int64, error) {
	t, found, err := u.ticketRepo.GetPaymentView(ctx, ticketNumber)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrTicketNotFound
	}
	if t.Status == entities.StatusResolved {
		return 0, ErrAlreadyResolved
	}

	var subtotalCents int64
	for _, li := range t.LineItems {
		subtotalCents += li.PriceCents
	}

	// Read fresh on every payment so tax rate changes apply
	// immediately.
	taxRate, err := u.opsRepo.GetTaxRate(ctx)
	if err != nil {
		return 0, err
	}
	totalPaidCents := int64(math.Round(float64(subtotalCents) * (1 + taxRate/100)))

	now := time.Now().Unix()
	receipt := entities.Comment{
		CommentBody: receiptBody("[Payment Taken]", t.LineItems, totalPaidCents),
		TechName:    techName + " (System)",
		CreatedAt:   now,
	}

	err = u.ticketRepo.ResolveWithPayment(ctx, ticketNumber, t.Device, totalPaidCents, receipt, now)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return 0, ErrPaymentConflict
	}
	if err != nil {
		log.Printf("[operations][usecase] payment capture failed ticket_number=%d err=%v", ticketNumber, err)
		return 0, err
	}
	log.Printf("[operations][usecase] payment taken ticket_number=%d total_paid_cents=%d", ticketNumber, totalPaidCents)
	return totalPaidCents, nil
}

func (u *OperationsUseCase) RefundPayment(ctx context.Context, ticketNumber int64, techName string) error {
	t, found, err := u.ticketRepo.GetPaymentView(ctx, ticketNumber)
	if err != nil {
		return err
	}
	if !found {
		return ErrTicketNotFound
	}

	now := time.Now().Unix()
	comment := entities.Comment{
		CommentBody: "[Payment Refunded]",
		TechName:    techName + " (System)",
		CreatedAt:   now,
	}

	err = u.ticketRepo.RefundPayment(ctx, ticketNumber, t.Device, comment, now)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return ErrNotResolved
	}
	if err != nil {
		log.Printf("[operations][usecase] refund failed ticket_number=%d err=%v", ticketNumber, err)
	}
	return err
}

func (u *OperationsUseCase) DontFix(ctx context.Context, ticketNumber int64, techName string) error {
	t, found, err := u.ticketRepo.GetPaymentView(ctx, ticketNumber)
	if err != nil {
		return err
	}
	if !found {
		return ErrTicketNotFound
	}
	if len(t.LineItems) == 0 {
		return ErrNoLineItems
	}

	now := time.Now().Unix()
	comment := entities.Comment{
		CommentBody: receiptBody("[Don't fix]", t.LineItems, 0),
		TechName:    techName + " (System)",
		CreatedAt:   now,
	}

	err = u.ticketRepo.MarkDontFix(ctx, ticketNumber, t.Device, comment, now)
	if errors.Is(err, interfaces.ErrNotFound) {
		return ErrTicketNotFound
	}
	return err
}

func (u *OperationsUseCase) GetStoreConfig(ctx context.Context) (entities.StoreConfig, error) {
	sc, found, err := u.opsRepo.GetStoreConfig(ctx)
	if err != nil {
		return entities.StoreConfig{}, err
	}
	if !found {
		return entities.StoreConfig{}, ErrStoreConfigMissing
	}
	return sc, nil
}

func (u *OperationsUseCase) PutStoreConfig(ctx context.Context, sc entities.StoreConfig) error {
	return u.opsRepo.PutStoreConfig(ctx, sc)
}

// receiptBody renders the line-item statement appended to a ticket on
// payment capture and don't-fix, e.g.
//
//	[Payment Taken]
//	- Screen: $120.00
//	- Labor: $30.00
//	Total: $162.00
func receiptBody(header string, lineItems []entities.LineItem, totalCents int64) string {
	var b strings.Builder
	b.WriteString(header)
	for _, li := range lineItems {
		fmt.Fprintf(&b, "\n- %s: $%.2f", li.Subject, float64(li.PriceCents)/100)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f", float64(totalCents)/100)
	return b.String()
}

func monthBounds(year, month int) (int64, int64, error) {
	if year < 2000 || year > 3000 || month < 1 || month > 12 {
		return 0, 0, ErrInvalidMonth
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start.Unix(), end.Unix(), nil
}

func monthYearKey(year, month int) (string, error) {
	if year < 2000 || year > 3000 || month < 1 || month > 12 {
		return "", ErrInvalidMonth
	}
	return fmt.Sprintf("%04d-%02d", year, month), nil
}
