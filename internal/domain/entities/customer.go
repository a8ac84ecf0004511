package entities

// PhoneNumber is one reachable number for a customer. Number is
// free-form and matched exactly by the phone index, so formatting is
// the frontend's problem.
type PhoneNumber struct {
	Number         string `json:"number"`
	PrefersTexting bool   `json:"prefers_texting"`
	NoEnglish      bool   `json:"no_english"`
}

// Customer is the customer record persisted in DynamoDB.
//
// Storage model:
//   - Customers: PK customer_id (10-char base36 short ID)
//   - CustomerNames: PK customer_id, full_name_lc (search projection)
//   - CustomerPhoneIndex: PK phone_number, SK customer_id
//
// Timestamps are Unix epoch seconds.
type Customer struct {
	CustomerID   string        `json:"customer_id"`
	FullName     string        `json:"full_name"`
	Email        string        `json:"email,omitempty"`
	PhoneNumbers []PhoneNumber `json:"phone_numbers"`
	CreatedAt    int64         `json:"created_at"`
	LastUpdated  int64         `json:"last_updated"`
}
