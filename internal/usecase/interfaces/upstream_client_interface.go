package interfaces

import "context"

// Upstream* types mirror the legacy vendor API response shape the
// migration consumes. Field names follow the vendor's JSON.

type UpstreamProperties struct {
	Password         string `json:"Password"`
	PasswordAlt      string `json:"Password (type \"none\" if no password)"`
	PasswordForPhone string `json:"passwordForPhone"`
	ACCharger        string `json:"AC Charger"`
}

type UpstreamTicketField struct {
	TicketTypeID *int64 `json:"ticket_type_id"`
}

type UpstreamComment struct {
	Body      string `json:"body"`
	Tech      string `json:"tech"`
	CreatedAt string `json:"created_at"`
}

type UpstreamAttachmentFile struct {
	URL string `json:"url"`
}

type UpstreamAttachment struct {
	File UpstreamAttachmentFile `json:"file"`
}

type UpstreamCustomer struct {
	BusinessAndFullName string `json:"business_and_full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

type UpstreamTicket struct {
	Number       int64                 `json:"number"`
	Subject      string                `json:"subject"`
	Status       string                `json:"status"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
	CustomerID   int64                 `json:"customer_id"`
	Properties   UpstreamProperties    `json:"properties"`
	TicketTypeID *int64                `json:"ticket_type_id"`
	TicketFields []UpstreamTicketField `json:"ticket_fields"`
	Comments     []UpstreamComment     `json:"comments"`
	Attachments  []UpstreamAttachment  `json:"attachments"`
	Customer     UpstreamCustomer      `json:"customer"`
}

// IUpstreamClient is the legacy-vendor HTTP client used by the
// migration importer.
type IUpstreamClient interface {
	// FetchTicketByNumber resolves an upstream ticket number and
	// returns the full ticket document.
	FetchTicketByNumber(ctx context.Context, number int64) (UpstreamTicket, error)

	// DownloadAttachment fetches the raw bytes of an upstream
	// attachment URL (ampersand escapes already normalized).
	DownloadAttachment(ctx context.Context, url string) ([]byte, error)
}
