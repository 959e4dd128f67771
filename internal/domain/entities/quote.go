package entities

import "time"

// QuoteStatus represents the client-facing lifecycle of an issued quote.
//
// Forward-only: sent -> viewed -> accepted. Viewing is set-once and never
// reverts; acceptance additionally requires the recipient to confirm the
// quote's assumptions.

type QuoteStatus string

const (
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusViewed   QuoteStatus = "viewed"
	QuoteStatusAccepted QuoteStatus = "accepted"
)

var quoteStatusRank = map[QuoteStatus]int{
	QuoteStatusSent:     0,
	QuoteStatusViewed:   1,
	QuoteStatusAccepted: 2,
}

func (s QuoteStatus) Valid() bool {
	_, ok := quoteStatusRank[s]
	return ok
}

func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	from, okFrom := quoteStatusRank[s]
	to, okTo := quoteStatusRank[next]
	if !okFrom || !okTo {
		return false
	}
	return to >= from
}

// Quote is a formally issued, shareable quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (share_id-index): share_id
//
// Snapshot design:
//   - Snapshot is a by-value copy of the source estimate taken at publish
//     time. Later edits to the module catalog or rate cards never change a
//     quote the client has already seen. EstimateID is kept for traceability
//     only, never for recomputation.
//   - ShareID is a capability token: the sole public lookup key, unguessable
//     enough, not an authenticated session.
type Quote struct {
	ID             string `json:"id"`
	EstimateID     string `json:"estimate_id"`
	RecipientEmail string `json:"recipient_email"`
	ShareID        string `json:"share_id"`

	Snapshot Estimate `json:"snapshot"`

	Status               QuoteStatus `json:"status"`
	AssumptionsConfirmed bool        `json:"assumptions_confirmed"`
	PDFURL               string      `json:"pdf_url,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	ViewedAt   time.Time `json:"viewed_at,omitzero"`
	AcceptedAt time.Time `json:"accepted_at,omitzero"`
}
