package request

import "truetickets/internal/domain/entities"

type PhoneNumberPayload struct {
	Number         string `json:"number" binding:"required"`
	PrefersTexting bool   `json:"prefers_texting"`
	NoEnglish      bool   `json:"no_english"`
}

func toPhoneNumbers(payloads []PhoneNumberPayload) []entities.PhoneNumber {
	pns := make([]entities.PhoneNumber, 0, len(payloads))
	for _, p := range payloads {
		pns = append(pns, entities.PhoneNumber{
			Number:         p.Number,
			PrefersTexting: p.PrefersTexting,
			NoEnglish:      p.NoEnglish,
		})
	}
	return pns
}

// CustomerCreateRequest is the POST /customers payload.
type CustomerCreateRequest struct {
	FullName     string               `json:"full_name" binding:"required"`
	Email        string               `json:"email"`
	PhoneNumbers []PhoneNumberPayload `json:"phone_numbers" binding:"required"`
}

func (r CustomerCreateRequest) Phones() []entities.PhoneNumber {
	return toPhoneNumbers(r.PhoneNumbers)
}

// CustomerUpdateRequest is the PUT /customers payload.
type CustomerUpdateRequest struct {
	FullName     *string               `json:"full_name"`
	Email        *string               `json:"email"`
	PhoneNumbers *[]PhoneNumberPayload `json:"phone_numbers"`
}

func (r CustomerUpdateRequest) ToUpdate() entities.CustomerUpdate {
	u := entities.CustomerUpdate{
		FullName: r.FullName,
		Email:    r.Email,
	}
	if r.PhoneNumbers != nil {
		pns := toPhoneNumbers(*r.PhoneNumbers)
		u.PhoneNumbers = &pns
	}
	return u
}
