package entities

import "fmt"

// Device classifies the hardware a ticket is about.
type Device string

const (
	DevicePhone   Device = "Phone"
	DeviceTablet  Device = "Tablet"
	DeviceLaptop  Device = "Laptop"
	DeviceDesktop Device = "Desktop"
	DeviceWatch   Device = "Watch"
	DeviceConsole Device = "Console"
	DeviceOther   Device = "Other"
)

// TicketStatus is the repair workflow state. "Resolved" is reachable
// only through payment capture; refund moves the ticket back to
// "In Progress".
type TicketStatus string

const (
	StatusDiagnosing      TicketStatus = "Diagnosing"
	StatusFindingPrice    TicketStatus = "Finding Price"
	StatusApprovalNeeded  TicketStatus = "Approval Needed"
	StatusWaitingForParts TicketStatus = "Waiting for Parts"
	StatusWaitingOther    TicketStatus = "Waiting (Other)"
	StatusInProgress      TicketStatus = "In Progress"
	StatusReady           TicketStatus = "Ready"
	StatusResolved        TicketStatus = "Resolved"
	StatusOther           TicketStatus = "Other"
)

var validDevices = map[Device]bool{
	DevicePhone: true, DeviceTablet: true, DeviceLaptop: true,
	DeviceDesktop: true, DeviceWatch: true, DeviceConsole: true,
	DeviceOther: true,
}

var validStatuses = map[TicketStatus]bool{
	StatusDiagnosing: true, StatusFindingPrice: true,
	StatusApprovalNeeded: true, StatusWaitingForParts: true,
	StatusWaitingOther: true, StatusInProgress: true,
	StatusReady: true, StatusResolved: true, StatusOther: true,
}

func (d Device) Valid() bool       { return validDevices[d] }
func (s TicketStatus) Valid() bool { return validStatuses[s] }

// StatusDevice builds the denormalized "{status}#{device}" composite
// used as the partition key for filtered recency queries. It must be
// rewritten whenever either component changes.
func StatusDevice(status TicketStatus, device Device) string {
	return fmt.Sprintf("%s#%s", status, device)
}

// Comment is an append-only note on a ticket.
type Comment struct {
	CommentBody string `json:"comment_body"`
	TechName    string `json:"tech_name"`
	CreatedAt   int64  `json:"created_at"`
}

// LineItem is a billable item on a ticket; prices are integer cents.
type LineItem struct {
	Subject    string `json:"subject"`
	PriceCents int64  `json:"price_cents"`
}

// Ticket is the repair ticket persisted in DynamoDB.
//
// Storage model:
//   - Tickets: PK ticket_number (N), gsi_pk="ALL" on every item
//   - GSI CustomerIdIndex: customer_id -> ticket_number
//   - GSI TicketNumberIndex: gsi_pk, ticket_number (recency)
//   - GSI StatusDeviceIndex: status_device, ticket_number
//   - GSI RevenueIndex (sparse): gsi_pk, paid_at
//   - TicketSubjects: PK ticket_number, subject_lc (search projection)
//
// PaidAt and TotalPaidCents are set together by payment capture and
// removed together by refund; any other combination is a data bug.
type Ticket struct {
	TicketNumber   int64        `json:"ticket_number"`
	CustomerID     string       `json:"customer_id"`
	Subject        string       `json:"subject"`
	Status         TicketStatus `json:"status"`
	Device         Device       `json:"device"`
	Password       string       `json:"password,omitempty"`
	ItemsLeft      []string     `json:"items_left,omitempty"`
	Attachments    []string     `json:"attachments,omitempty"`
	Comments       []Comment    `json:"comments,omitempty"`
	LineItems      []LineItem   `json:"line_items,omitempty"`
	PaidAt         *int64       `json:"paid_at,omitempty"`
	TotalPaidCents *int64       `json:"total_paid_cents,omitempty"`
	CreatedAt      int64        `json:"created_at"`
	LastUpdated    int64        `json:"last_updated"`

	// Customer is attached at read time by the customer join; it is
	// never stored on the ticket item.
	Customer *Customer `json:"customer,omitempty"`
}
