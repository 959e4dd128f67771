package response

import (
	"time"

	"studio_pricing/internal/domain/entities"
)

type ModuleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	BaseHours   float64  `json:"base_hours"`
	BaseTokens  int64    `json:"base_tokens"`
	RiskWeight  float64  `json:"risk_weight"`
	Deps        []string `json:"dependencies,omitempty"`

	ArchitectReviewTrigger bool `json:"architect_review_trigger"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModule(m entities.CatalogModule) ModuleResponse {
	return ModuleResponse{
		ID:                     m.ID,
		Name:                   m.Name,
		Description:            m.Description,
		Category:               m.Category,
		BaseHours:              m.BaseHours,
		BaseTokens:             m.BaseTokens,
		RiskWeight:             m.RiskWeight,
		Deps:                   m.Deps,
		ArchitectReviewTrigger: m.ArchitectReviewTrigger,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func FromModules(items []entities.CatalogModule) []ModuleResponse {
	out := make([]ModuleResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromModule(m))
	}
	return out
}

type RateCardResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	HourlyRate   float64   `json:"hourly_rate"`
	TokenRateIn  float64   `json:"token_rate_in"`
	TokenRateOut float64   `json:"token_rate_out"`
	MarkupFactor float64   `json:"markup_factor"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromRateCard(rc entities.RateCard) RateCardResponse {
	return RateCardResponse{
		ID:           rc.ID,
		Name:         rc.Name,
		HourlyRate:   rc.HourlyRate,
		TokenRateIn:  rc.TokenRateIn,
		TokenRateOut: rc.TokenRateOut,
		MarkupFactor: rc.MarkupFactor,
		IsActive:     rc.IsActive,
		CreatedAt:    rc.CreatedAt,
		UpdatedAt:    rc.UpdatedAt,
	}
}

func FromRateCards(items []entities.RateCard) []RateCardResponse {
	out := make([]RateCardResponse, 0, len(items))
	for _, rc := range items {
		out = append(out, FromRateCard(rc))
	}
	return out
}
