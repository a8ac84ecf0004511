package request

import "truetickets/internal/domain/entities"

// TicketCreateRequest is the POST /tickets payload.
type TicketCreateRequest struct {
	CustomerID string   `json:"customer_id" binding:"required"`
	Subject    string   `json:"subject" binding:"required"`
	Password   string   `json:"password"`
	ItemsLeft  []string `json:"items_left"`
	Device     string   `json:"device" binding:"required"`
}

// LineItemPayload mirrors the stored line-item shape.
type LineItemPayload struct {
	Subject    string `json:"subject"`
	PriceCents int64  `json:"price_cents"`
}

// TicketUpdateRequest is the PUT /tickets payload. Absent fields stay
// unchanged; an explicit empty value removes optional attributes.
type TicketUpdateRequest struct {
	Subject   *string            `json:"subject"`
	Status    *string            `json:"status"`
	Password  *string            `json:"password"`
	ItemsLeft *[]string          `json:"items_left"`
	LineItems *[]LineItemPayload `json:"line_items"`
	Device    *string            `json:"device"`
}

func (r TicketUpdateRequest) ToUpdate() entities.TicketUpdate {
	u := entities.TicketUpdate{
		Subject:   r.Subject,
		Password:  r.Password,
		ItemsLeft: r.ItemsLeft,
	}
	if r.Status != nil {
		s := entities.TicketStatus(*r.Status)
		u.Status = &s
	}
	if r.Device != nil {
		d := entities.Device(*r.Device)
		u.Device = &d
	}
	if r.LineItems != nil {
		lis := make([]entities.LineItem, 0, len(*r.LineItems))
		for _, li := range *r.LineItems {
			lis = append(lis, entities.LineItem{Subject: li.Subject, PriceCents: li.PriceCents})
		}
		u.LineItems = &lis
	}
	return u
}

// TicketCommentRequest is the POST /tickets/comment payload.
type TicketCommentRequest struct {
	CommentBody string `json:"comment_body" binding:"required"`
	TechName    string `json:"tech_name" binding:"required"`
}
