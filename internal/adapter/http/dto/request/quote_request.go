package request

// PublishQuoteRequest turns an existing estimate into a shareable quote.
type PublishQuoteRequest struct {
	EstimateID     string `json:"estimate_id" binding:"required"`
	RecipientEmail string `json:"recipient_email" binding:"required"`
}

// AcceptQuoteRequest is posted from the public quote page. Acceptance is only
// valid when the recipient has ticked the assumptions checkbox.
type AcceptQuoteRequest struct {
	AssumptionsConfirmed bool `json:"assumptions_confirmed"`
}
