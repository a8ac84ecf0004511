package request

import "truetickets/internal/domain/entities"

// ClockRequest is the POST /clock payload.
type ClockRequest struct {
	UserName   string `json:"user_name" binding:"required"`
	ClockingIn *bool  `json:"clocking_in" binding:"required"`
}

type TimeSegmentPayload struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// ClockLogsUpdateRequest is the PUT /clock-logs payload: the
// corrected in/out segments replacing one user's entries for one day.
type ClockLogsUpdateRequest struct {
	UserName   string               `json:"user_name" binding:"required"`
	StartOfDay int64                `json:"start_of_day" binding:"required"`
	EndOfDay   int64                `json:"end_of_day" binding:"required"`
	Segments   []TimeSegmentPayload `json:"segments"`
}

func (r ClockLogsUpdateRequest) ToSegments() []entities.TimeSegment {
	segs := make([]entities.TimeSegment, 0, len(r.Segments))
	for _, s := range r.Segments {
		segs = append(segs, entities.TimeSegment{Start: s.Start, End: s.End})
	}
	return segs
}

// WageRequest is the PUT /wage payload.
type WageRequest struct {
	UserName  string `json:"user_name" binding:"required"`
	WageCents int64  `json:"wage_cents"`
}

type PurchaseItemPayload struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

// PurchasesPutRequest is the PUT /purchases payload; the month's
// ledger is overwritten whole.
type PurchasesPutRequest struct {
	Items []PurchaseItemPayload `json:"items"`
}

func (r PurchasesPutRequest) ToItems() []entities.PurchaseItem {
	items := make([]entities.PurchaseItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.PurchaseItem{Name: it.Name, AmountCents: it.AmountCents})
	}
	return items
}

// StoreConfigRequest is the PUT /store-config payload.
type StoreConfigRequest struct {
	StoreName  string  `json:"store_name" binding:"required"`
	TaxRate    float64 `json:"tax_rate"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Zip        string  `json:"zip"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Disclaimer string  `json:"disclaimer"`
}

func (r StoreConfigRequest) ToStoreConfig() entities.StoreConfig {
	return entities.StoreConfig{
		StoreName:  r.StoreName,
		TaxRate:    r.TaxRate,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		Zip:        r.Zip,
		Phone:      r.Phone,
		Email:      r.Email,
		Disclaimer: r.Disclaimer,
	}
}

// UploadAttachmentRequest is the POST /upload-attachment payload.
// ImageData is either a data URL or raw base64.
type UploadAttachmentRequest struct {
	TicketID  int64  `json:"ticket_id" binding:"required"`
	ImageData string `json:"image_data" binding:"required"`
}
