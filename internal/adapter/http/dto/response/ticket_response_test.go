package response

import (
	"testing"

	"truetickets/internal/domain/entities"
)

func TestFromTicket(t *testing.T) {
	paidAt := int64(1700000000)
	total := int64(16200)
	r := FromTicket(entities.Ticket{
		TicketNumber:   5481,
		CustomerID:     "c1",
		Subject:        "iPhone screen",
		Status:         entities.StatusResolved,
		Device:         entities.DevicePhone,
		LineItems:      []entities.LineItem{{Subject: "Screen", PriceCents: 12000}},
		PaidAt:         &paidAt,
		TotalPaidCents: &total,
		Customer:       &entities.Customer{CustomerID: "c1", FullName: "Jane Doe"},
	})

	if r.TicketNumber != 5481 || r.Status != "Resolved" || r.Device != "Phone" {
		t.Fatalf("unexpected response: %+v", r)
	}
	if len(r.LineItems) != 1 || r.LineItems[0].PriceCents != 12000 {
		t.Fatalf("unexpected line items: %+v", r.LineItems)
	}
	if r.TotalPaidCents == nil || *r.TotalPaidCents != 16200 {
		t.Fatalf("unexpected total: %+v", r.TotalPaidCents)
	}
	if r.Customer == nil || r.Customer.FullName != "Jane Doe" {
		t.Fatalf("expected embedded customer, got %+v", r.Customer)
	}
}

func TestFromTickets_Empty(t *testing.T) {
	out := FromTickets(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}
