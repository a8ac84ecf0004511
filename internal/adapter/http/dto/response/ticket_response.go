package response

import "truetickets/internal/domain/entities"

type CommentResponse struct {
	CommentBody string `json:"comment_body"`
	TechName    string `json:"tech_name"`
	CreatedAt   int64  `json:"created_at"`
}

type LineItemResponse struct {
	Subject    string `json:"subject"`
	PriceCents int64  `json:"price_cents"`
}

type TicketResponse struct {
	TicketNumber   int64              `json:"ticket_number"`
	CustomerID     string             `json:"customer_id"`
	Subject        string             `json:"subject"`
	Status         string             `json:"status"`
	Device         string             `json:"device"`
	Password       string             `json:"password,omitempty"`
	ItemsLeft      []string           `json:"items_left,omitempty"`
	Attachments    []string           `json:"attachments,omitempty"`
	Comments       []CommentResponse  `json:"comments,omitempty"`
	LineItems      []LineItemResponse `json:"line_items,omitempty"`
	PaidAt         *int64             `json:"paid_at,omitempty"`
	TotalPaidCents *int64             `json:"total_paid_cents,omitempty"`
	CreatedAt      int64              `json:"created_at"`
	LastUpdated    int64              `json:"last_updated"`
	Customer       *CustomerResponse  `json:"customer,omitempty"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	var comments []CommentResponse
	for _, c := range t.Comments {
		comments = append(comments, CommentResponse{
			CommentBody: c.CommentBody,
			TechName:    c.TechName,
			CreatedAt:   c.CreatedAt,
		})
	}
	var lineItems []LineItemResponse
	for _, li := range t.LineItems {
		lineItems = append(lineItems, LineItemResponse{Subject: li.Subject, PriceCents: li.PriceCents})
	}

	resp := TicketResponse{
		TicketNumber:   t.TicketNumber,
		CustomerID:     t.CustomerID,
		Subject:        t.Subject,
		Status:         string(t.Status),
		Device:         string(t.Device),
		Password:       t.Password,
		ItemsLeft:      t.ItemsLeft,
		Attachments:    t.Attachments,
		Comments:       comments,
		LineItems:      lineItems,
		PaidAt:         t.PaidAt,
		TotalPaidCents: t.TotalPaidCents,
		CreatedAt:      t.CreatedAt,
		LastUpdated:    t.LastUpdated,
	}
	if t.Customer != nil {
		c := FromCustomer(*t.Customer)
		resp.Customer = &c
	}
	return resp
}

func FromTickets(tickets []entities.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, FromTicket(t))
	}
	return out
}
