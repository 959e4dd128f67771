package response

import (
	"time"

	"studio_pricing/internal/domain/entities"
)

type CostDriverResponse struct {
	Name   string  `json:"name"`
	Impact string  `json:"impact"`
	Amount float64 `json:"amount"`
}

type EstimateResponse struct {
	ID   string             `json:"id"`
	Spec entities.BuildSpec `json:"spec"`

	PriceMin float64 `json:"price_min"`
	PriceMid float64 `json:"price_mid"`
	PriceMax float64 `json:"price_max"`

	HoursMin float64 `json:"hours_min"`
	HoursMax float64 `json:"hours_max"`
	DaysMin  int     `json:"days_min"`
	DaysMax  int     `json:"days_max"`

	Confidence float64 `json:"confidence"`

	TokensIn      int64   `json:"tokens_in"`
	TokensOut     int64   `json:"tokens_out"`
	MaterialsCost float64 `json:"materials_cost"`
	LaborCost     float64 `json:"labor_cost"`
	RiskBuffer    float64 `json:"risk_buffer"`

	DegradedMode   bool   `json:"degraded_mode"`
	DegradedReason string `json:"degraded_reason,omitempty"`

	NeedsReview          bool     `json:"needs_review"`
	ReviewTriggerModules []string `json:"review_trigger_modules,omitempty"`

	CostDrivers []CostDriverResponse `json:"cost_drivers"`
	Assumptions []string             `json:"assumptions"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	drivers := make([]CostDriverResponse, 0, len(e.CostDrivers))
	for _, d := range e.CostDrivers {
		drivers = append(drivers, CostDriverResponse{Name: d.Name, Impact: string(d.Impact), Amount: d.Amount})
	}
	return EstimateResponse{
		ID:                   e.ID,
		Spec:                 e.Spec,
		PriceMin:             e.PriceMin,
		PriceMid:             e.PriceMid,
		PriceMax:             e.PriceMax,
		HoursMin:             e.HoursMin,
		HoursMax:             e.HoursMax,
		DaysMin:              e.DaysMin,
		DaysMax:              e.DaysMax,
		Confidence:           e.Confidence,
		TokensIn:             e.TokensIn,
		TokensOut:            e.TokensOut,
		MaterialsCost:        e.MaterialsCost,
		LaborCost:            e.LaborCost,
		RiskBuffer:           e.RiskBuffer,
		DegradedMode:         e.DegradedMode,
		DegradedReason:       e.DegradedReason,
		NeedsReview:          e.NeedsReview,
		ReviewTriggerModules: e.ReviewTriggerModules,
		CostDrivers:          drivers,
		Assumptions:          e.Assumptions,
		Status:               string(e.Status),
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}
