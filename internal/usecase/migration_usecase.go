package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase/interfaces"
	"truetickets/pkg"
)

var (
	ErrMigrationCountTooLarge = errors.New("migration count must be 5 or less")
	ErrCounterRollback        = errors.New("counter raise rejected")
)

const migrationBatchCap = 5

// Upstream ticket_type_id values that select which of the three
// password properties applies.
const (
	ticketTypeLaptop  = 9818
	ticketTypeDesktop = 9836
	ticketTypePhone   = 9801
)

// IMigrationUseCase imports tickets from the legacy vendor API.
type IMigrationUseCase interface {
	// MigrateTickets imports count tickets counting down from
	// latestTicketNumber and returns how many were committed.
	MigrateTickets(ctx context.Context, latestTicketNumber, count int64) (int64, error)
}

type MigrationUseCase struct {
	upstream    interfaces.IUpstreamClient
	blob        interfaces.IBlobStorage
	ticketRepo  interfaces.ITicketRepository
	counterRepo interfaces.ICounterRepository
}

var _ IMigrationUseCase = (*MigrationUseCase)(nil)

func NewMigrationUseCase(upstream interfaces.IUpstreamClient, blob interfaces.IBlobStorage, ticketRepo interfaces.ITicketRepository, counterRepo interfaces.ICounterRepository) *MigrationUseCase {
	return &MigrationUseCase{upstream: upstream, blob: blob, ticketRepo: ticketRepo, counterRepo: counterRepo}
}

func (u *MigrationUseCase) MigrateTickets(ctx context.Context, latestTicketNumber, count int64) (int64, error) {
	if count > migrationBatchCap {
		return 0, ErrMigrationCountTooLarge
	}

	var migrated int64
	for i := int64(0); i < count; i++ {
		number := latestTicketNumber - i
		if err := u.migrateOne(ctx, number); err != nil {
			// Already-committed records stay; the operator reruns
			// with an adjusted range.
			return migrated, fmt.Errorf("migrate ticket %d: %w", number, err)
		}
		migrated++
	}

	if err := u.counterRepo.RaiseTicketNumber(ctx, latestTicketNumber); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			// The counter is already past this batch; never lower it.
			return migrated, ErrCounterRollback
		}
		return migrated, err
	}

	log.Printf("[migration][usecase] batch done migrated=%d highest_ticket_number=%d", migrated, latestTicketNumber)
	return migrated, nil
}

func (u *MigrationUseCase) migrateOne(ctx context.Context, number int64) error {
	up, err := u.upstream.FetchTicketByNumber(ctx, number)
	if err != nil {
		return err
	}

	createdAt, err := parseUpstreamTime(up.CreatedAt)
	if err != nil {
		return err
	}
	lastUpdated, err := parseUpstreamTime(up.UpdatedAt)
	if err != nil {
		return err
	}

	customer, err := normalizeCustomer(up)
	if err != nil {
		return err
	}

	attachments, err := u.sideloadAttachments(ctx, up)
	if err != nil {
		return err
	}

	comments := make([]entities.Comment, 0, len(up.Comments))
	for _, c := range up.Comments {
		at, err := parseUpstreamTime(c.CreatedAt)
		if err != nil {
			at = createdAt
		}
		comments = append(comments, entities.Comment{
			CommentBody: c.Body,
			TechName:    c.Tech,
			CreatedAt:   at,
		})
	}

	ticket := entities.Ticket{
		TicketNumber: up.Number,
		CustomerID:   strconv.FormatInt(up.CustomerID, 10),
		Subject:      up.Subject,
		Status:       convertUpstreamStatus(up.Status),
		Device:       deviceFromSubject(up.Subject),
		Password:     extractPassword(up),
		ItemsLeft:    itemsLeftFromProperties(up.Properties),
		Attachments:  attachments,
		Comments:     comments,
		CreatedAt:    createdAt,
		LastUpdated:  lastUpdated,
	}

	if err := u.ticketRepo.Import(ctx, customer, ticket); err != nil {
		return err
	}
	log.Printf("[migration][usecase] imported ticket_number=%d customer_id=%s", ticket.TicketNumber, ticket.CustomerID)
	return nil
}

func (u *MigrationUseCase) sideloadAttachments(ctx context.Context, up interfaces.UpstreamTicket) ([]string, error) {
	var urls []string
	for _, a := range up.Attachments {
		// The vendor JSON escapes ampersands in presigned URLs.
		src := strings.ReplaceAll(a.File.URL, `\u0026`, "&")
		data, err := u.upstream.DownloadAttachment(ctx, src)
		if err != nil {
			return nil, err
		}
		key := fmt.Sprintf("attachments/%d/%d_%s", up.Number, time.Now().Unix(), pkg.ShortID(attachmentIDLength))
		url, err := u.blob.Upload(ctx, key, data, "application/octet-stream")
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func normalizeCustomer(up interfaces.UpstreamTicket) (entities.Customer, error) {
	createdAt, err := parseUpstreamTime(up.Customer.CreatedAt)
	if err != nil {
		return entities.Customer{}, err
	}
	lastUpdated := createdAt
	if up.Customer.UpdatedAt != "" {
		lastUpdated, err = parseUpstreamTime(up.Customer.UpdatedAt)
		if err != nil {
			return entities.Customer{}, err
		}
	}

	var phones []entities.PhoneNumber
	if up.Customer.Phone != "" {
		phones = append(phones, entities.PhoneNumber{Number: up.Customer.Phone})
	}

	return entities.Customer{
		CustomerID:   strconv.FormatInt(up.CustomerID, 10),
		FullName:     up.Customer.BusinessAndFullName,
		Email:        up.Customer.Email,
		PhoneNumbers: phones,
		CreatedAt:    createdAt,
		LastUpdated:  lastUpdated,
	}, nil
}

func parseUpstreamTime(iso string) (int64, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return 0, fmt.Errorf("parse timestamp %q: %w", iso, err)
	}
	return t.Unix(), nil
}

// extractPassword picks among the three vendor password properties
// based on the ticket type, discarding placeholder values.
func extractPassword(up interfaces.UpstreamTicket) string {
	typeID := up.TicketTypeID
	if len(up.TicketFields) > 0 && up.TicketFields[0].TicketTypeID != nil {
		typeID = up.TicketFields[0].TicketTypeID
	}

	if typeID != nil {
		switch *typeID {
		case ticketTypeLaptop, ticketTypeDesktop:
			if pw := up.Properties.Password; usablePassword(pw) {
				return pw
			}
		case ticketTypePhone:
			if pw := up.Properties.PasswordForPhone; usablePassword(pw) {
				return pw
			}
		}
	}

	if pw := up.Properties.PasswordAlt; usablePassword(pw) {
		return pw
	}
	return ""
}

func usablePassword(pw string) bool {
	switch strings.TrimSpace(strings.ToLower(pw)) {
	case "", "n", "na", "n/a", "none":
		return false
	}
	return true
}

func itemsLeftFromProperties(p interfaces.UpstreamProperties) []string {
	switch strings.TrimSpace(strings.ToLower(p.ACCharger)) {
	case "true", "yes", "1":
		return []string{"AC Charger"}
	}
	return nil
}

var deviceKeywords = map[string]entities.Device{
	"iphone": entities.DevicePhone, "iph": entities.DevicePhone, "ip": entities.DevicePhone,
	"galaxy": entities.DevicePhone, "pixel": entities.DevicePhone, "oneplus": entities.DevicePhone,
	"samsung": entities.DevicePhone, "huawei": entities.DevicePhone, "phone": entities.DevicePhone,
	"moto": entities.DevicePhone,

	"ipad": entities.DeviceTablet, "tablet": entities.DeviceTablet, "kindle": entities.DeviceTablet,
	"tab": entities.DeviceTablet,

	"laptop": entities.DeviceLaptop, "macbook": entities.DeviceLaptop, "thinkpad": entities.DeviceLaptop,
	"elitebook": entities.DeviceLaptop, "chromebook": entities.DeviceLaptop, "inspiron": entities.DeviceLaptop,
	"predator": entities.DeviceLaptop, "latitude": entities.DeviceLaptop, "ltop": entities.DeviceLaptop,

	"desktop": entities.DeviceDesktop, "dtop": entities.DeviceDesktop, "pc": entities.DeviceDesktop,
	"tower": entities.DeviceDesktop, "omen": entities.DeviceDesktop,

	"watch": entities.DeviceWatch, "smartwatch": entities.DeviceWatch,

	"playstation": entities.DeviceConsole, "xbox": entities.DeviceConsole, "nintendo": entities.DeviceConsole,
	"switch": entities.DeviceConsole, "ps6": entities.DeviceConsole, "ps5": entities.DeviceConsole,
	"ps4": entities.DeviceConsole, "console": entities.DeviceConsole, "controller": entities.DeviceConsole,
}

// deviceFromSubject returns the device type of the first recognized
// keyword in the subject, or Other.
func deviceFromSubject(subject string) entities.Device {
	for _, word := range strings.Fields(strings.ToLower(subject)) {
		if d, ok := deviceKeywords[word]; ok {
			return d
		}
	}
	return entities.DeviceOther
}

var upstreamStatusMap = map[string]entities.TicketStatus{
	"New":                 entities.StatusDiagnosing,
	"Scheduled":           entities.StatusFindingPrice,
	"Call Customer":       entities.StatusApprovalNeeded,
	"Waiting for Parts":   entities.StatusWaitingForParts,
	"Waiting on Customer": entities.StatusWaitingOther,
	"In Progress":         entities.StatusInProgress,
	"Customer Reply":      entities.StatusReady,
	"Ready!":              entities.StatusReady,
	"Resolved":            entities.StatusResolved,
}

func convertUpstreamStatus(status string) entities.TicketStatus {
	if s, ok := upstreamStatusMap[status]; ok {
		return s
	}
	return entities.StatusOther
}
