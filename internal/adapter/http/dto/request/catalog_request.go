package request

import "studio_pricing/internal/domain/entities"

// ModuleRequest creates or replaces a catalog module definition. The path id
// wins over any id in the body.
type ModuleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	BaseHours   float64  `json:"base_hours" binding:"required"`
	BaseTokens  int64    `json:"base_tokens"`
	RiskWeight  float64  `json:"risk_weight"`
	Deps        []string `json:"dependencies"`

	ArchitectReviewTrigger bool `json:"architect_review_trigger"`
}

func (r ModuleRequest) ToEntity(id string) entities.CatalogModule {
	return entities.CatalogModule{
		ID:                     id,
		Name:                   r.Name,
		Description:            r.Description,
		Category:               r.Category,
		BaseHours:              r.BaseHours,
		BaseTokens:             r.BaseTokens,
		RiskWeight:             r.RiskWeight,
		Deps:                   r.Deps,
		ArchitectReviewTrigger: r.ArchitectReviewTrigger,
	}
}

// RateCardRequest creates a new rate card. Cards are created inactive and
// switched on through the activation endpoint.
type RateCardRequest struct {
	Name         string  `json:"name" binding:"required"`
	HourlyRate   float64 `json:"hourly_rate" binding:"required"`
	TokenRateIn  float64 `json:"token_rate_in"`
	TokenRateOut float64 `json:"token_rate_out"`
	MarkupFactor float64 `json:"markup_factor"`
}

func (r RateCardRequest) ToEntity() entities.RateCard {
	return entities.RateCard{
		Name:         r.Name,
		HourlyRate:   r.HourlyRate,
		TokenRateIn:  r.TokenRateIn,
		TokenRateOut: r.TokenRateOut,
		MarkupFactor: r.MarkupFactor,
	}
}
