package request

import (
	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/usecase"
)

// SubmitInquiryRequest is the public payload posted by the marketing site's
// quick-estimate form.
type SubmitInquiryRequest struct {
	Description string `json:"description" binding:"required"`
	UserType    string `json:"user_type" binding:"required"`
	Timeline    string `json:"timeline" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Name        string `json:"name"`
}

func (r SubmitInquiryRequest) ToInput() usecase.SubmitInquiryInput {
	return usecase.SubmitInquiryInput{
		Description: r.Description,
		UserType:    entities.UserType(r.UserType),
		Timeline:    entities.Timeline(r.Timeline),
		Email:       r.Email,
		Name:        r.Name,
	}
}

// PatchInquiryRequest carries the admin review fields; absent fields are left
// untouched.
type PatchInquiryRequest struct {
	Status      *string  `json:"status"`
	ReviewNotes *string  `json:"review_notes"`
	ActualQuote *float64 `json:"actual_quote"`
	EstimateID  *string  `json:"estimate_id"`
}

func (r PatchInquiryRequest) ToPatch() usecase.InquiryPatch {
	p := usecase.InquiryPatch{
		ReviewNotes: r.ReviewNotes,
		ActualQuote: r.ActualQuote,
		EstimateID:  r.EstimateID,
	}
	if r.Status != nil {
		s := entities.InquiryStatus(*r.Status)
		p.Status = &s
	}
	return p
}
