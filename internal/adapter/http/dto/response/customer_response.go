package response

import "truetickets/internal/domain/entities"

type PhoneNumberResponse struct {
	Number         string `json:"number"`
	PrefersTexting bool   `json:"prefers_texting"`
	NoEnglish      bool   `json:"no_english"`
}

type CustomerResponse struct {
	CustomerID   string                `json:"customer_id"`
	FullName     string                `json:"full_name"`
	Email        string                `json:"email,omitempty"`
	PhoneNumbers []PhoneNumberResponse `json:"phone_numbers"`
	CreatedAt    int64                 `json:"created_at"`
	LastUpdated  int64                 `json:"last_updated"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	pns := make([]PhoneNumberResponse, 0, len(c.PhoneNumbers))
	for _, pn := range c.PhoneNumbers {
		pns = append(pns, PhoneNumberResponse{
			Number:         pn.Number,
			PrefersTexting: pn.PrefersTexting,
			NoEnglish:      pn.NoEnglish,
		})
	}
	return CustomerResponse{
		CustomerID:   c.CustomerID,
		FullName:     c.FullName,
		Email:        c.Email,
		PhoneNumbers: pns,
		CreatedAt:    c.CreatedAt,
		LastUpdated:  c.LastUpdated,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
