package response

import (
	"time"

	"studio_pricing/internal/domain/entities"
)

// QuoteResponse is the admin-facing view of a quote, snapshot included.
type QuoteResponse struct {
	ID             string `json:"id"`
	EstimateID     string `json:"estimate_id"`
	RecipientEmail string `json:"recipient_email"`
	ShareID        string `json:"share_id"`

	Snapshot EstimateResponse `json:"snapshot"`

	Status               string `json:"status"`
	AssumptionsConfirmed bool   `json:"assumptions_confirmed"`
	PDFURL               string `json:"pdf_url,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	ViewedAt   *time.Time `json:"viewed_at,omitempty"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}

// PublicQuoteResponse is what the share-link page sees. It deliberately omits
// the recipient email and internal ids; the share id is the only reference a
// client needs.
type PublicQuoteResponse struct {
	ShareID string `json:"share_id"`

	PriceMin float64 `json:"price_min"`
	PriceMid float64 `json:"price_mid"`
	PriceMax float64 `json:"price_max"`
	DaysMin  int     `json:"days_min"`
	DaysMax  int     `json:"days_max"`

	Confidence   float64 `json:"confidence"`
	DegradedMode bool    `json:"degraded_mode"`

	CostDrivers []CostDriverResponse `json:"cost_drivers"`
	Assumptions []string             `json:"assumptions"`

	Status               string     `json:"status"`
	AssumptionsConfirmed bool       `json:"assumptions_confirmed"`
	CreatedAt            time.Time  `json:"created_at"`
	AcceptedAt           *time.Time `json:"accepted_at,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:                   q.ID,
		EstimateID:           q.EstimateID,
		RecipientEmail:       q.RecipientEmail,
		ShareID:              q.ShareID,
		Snapshot:             FromEstimate(q.Snapshot),
		Status:               string(q.Status),
		AssumptionsConfirmed: q.AssumptionsConfirmed,
		PDFURL:               q.PDFURL,
		CreatedAt:            q.CreatedAt,
	}
	if !q.ViewedAt.IsZero() {
		t := q.ViewedAt
		resp.ViewedAt = &t
	}
	if !q.AcceptedAt.IsZero() {
		t := q.AcceptedAt
		resp.AcceptedAt = &t
	}
	return resp
}

func FromQuotes(items []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(items))
	for _, q := range items {
		out = append(out, FromQuote(q))
	}
	return out
}

func PublicFromQuote(q entities.Quote) PublicQuoteResponse {
	drivers := make([]CostDriverResponse, 0, len(q.Snapshot.CostDrivers))
	for _, d := range q.Snapshot.CostDrivers {
		drivers = append(drivers, CostDriverResponse{Name: d.Name, Impact: string(d.Impact), Amount: d.Amount})
	}
	resp := PublicQuoteResponse{
		ShareID:              q.ShareID,
		PriceMin:             q.Snapshot.PriceMin,
		PriceMid:             q.Snapshot.PriceMid,
		PriceMax:             q.Snapshot.PriceMax,
		DaysMin:              q.Snapshot.DaysMin,
		DaysMax:              q.Snapshot.DaysMax,
		Confidence:           q.Snapshot.Confidence,
		DegradedMode:         q.Snapshot.DegradedMode,
		CostDrivers:          drivers,
		Assumptions:          q.Snapshot.Assumptions,
		Status:               string(q.Status),
		AssumptionsConfirmed: q.AssumptionsConfirmed,
		CreatedAt:            q.CreatedAt,
	}
	if !q.AcceptedAt.IsZero() {
		t := q.AcceptedAt
		resp.AcceptedAt = &t
	}
	return resp
}
