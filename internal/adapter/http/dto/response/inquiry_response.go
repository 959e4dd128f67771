package response

import (
	"time"

	"studio_pricing/internal/domain/entities"
)

type InquiryResponse struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	UserType    string     `json:"user_type"`
	Timeline    string     `json:"timeline"`
	Email       string     `json:"email"`
	Name        string     `json:"name,omitempty"`
	RoughMin    int        `json:"rough_min"`
	RoughMax    int        `json:"rough_max"`
	Keywords    []string   `json:"keywords"`
	Status      string     `json:"status"`
	ReviewNotes string     `json:"review_notes,omitempty"`
	ActualQuote float64    `json:"actual_quote,omitempty"`
	EstimateID  string     `json:"estimate_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
}

func FromInquiry(i entities.Inquiry) InquiryResponse {
	resp := InquiryResponse{
		ID:          i.ID,
		Description: i.Description,
		UserType:    string(i.UserType),
		Timeline:    string(i.Timeline),
		Email:       i.Email,
		Name:        i.Name,
		RoughMin:    i.RoughMin,
		RoughMax:    i.RoughMax,
		Keywords:    i.Keywords,
		Status:      string(i.Status),
		ReviewNotes: i.ReviewNotes,
		ActualQuote: i.ActualQuote,
		EstimateID:  i.EstimateID,
		CreatedAt:   i.CreatedAt,
	}
	if !i.ReviewedAt.IsZero() {
		t := i.ReviewedAt
		resp.ReviewedAt = &t
	}
	return resp
}

func FromInquiries(items []entities.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInquiry(i))
	}
	return out
}
