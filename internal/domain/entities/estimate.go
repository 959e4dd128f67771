package entities

import "time"

// EstimateStatus represents the lifecycle of a detailed estimate.
//
// Domain notes:
//   - draft: produced by the wizard, still recomputable.
//   - quoted: snapshotted into a Quote; the estimate is immutable from then on.

type EstimateStatus string

const (
	EstimateStatusDraft  EstimateStatus = "draft"
	EstimateStatusQuoted EstimateStatus = "quoted"
)

// Unknown is the sentinel answer for every categorical BuildSpec field the
// visitor skipped. The calculator treats it as "apply a default, widen the
// band, note an assumption" rather than as an error.
const Unknown = "unknown"

// BuildSpec is the structured build specification collected by the wizard.
// Every field is categorical and may carry the Unknown sentinel.
type BuildSpec struct {
	Platform     string   `json:"platform"`
	AuthLevel    string   `json:"auth_level"`
	Modules      []string `json:"modules"`
	Quality      string   `json:"quality"`
	Integrations string   `json:"integrations"`
	Urgency      string   `json:"urgency"`
	Iteration    string   `json:"iteration"`
}

// DriverImpact is the qualitative tier of a cost driver.
type DriverImpact string

const (
	ImpactHigh   DriverImpact = "high"
	ImpactMedium DriverImpact = "medium"
	ImpactLow    DriverImpact = "low"
)

// CostDriver is one explainable contribution to the estimate, ordered by
// declaration (modules first, then the categorical factors).
type CostDriver struct {
	Name   string       `json:"name"`
	Impact DriverImpact `json:"impact"`
	Amount float64      `json:"amount"`
}

// Estimate is the full wizard-produced estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation: whole USD, float64 like the rest of the billing
// path. MaterialsCost + LaborCost + RiskBuffer == PriceMid up to rounding.
type Estimate struct {
	ID   string    `json:"id"`
	Spec BuildSpec `json:"spec"`

	PriceMin float64 `json:"price_min"`
	PriceMid float64 `json:"price_mid"`
	PriceMax float64 `json:"price_max"`

	HoursMin float64 `json:"hours_min"`
	HoursMax float64 `json:"hours_max"`
	DaysMin  int     `json:"days_min"`
	DaysMax  int     `json:"days_max"`

	// Confidence is a 0..1 scalar; lower confidence widens the price band.
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

	CostDrivers []CostDriver `json:"cost_drivers"`
	Assumptions []string     `json:"assumptions"`

	Status    EstimateStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Clone returns a deep copy of the estimate. Quotes snapshot estimates by
// value at publish time; the copy must not share slice backing arrays with
// the source, or a later catalog edit could leak into an issued quote.
func (e Estimate) Clone() Estimate {
	c := e
	c.Spec.Modules = append([]string(nil), e.Spec.Modules...)
	c.ReviewTriggerModules = append([]string(nil), e.ReviewTriggerModules...)
	c.CostDrivers = append([]CostDriver(nil), e.CostDrivers...)
	c.Assumptions = append([]string(nil), e.Assumptions...)
	return c
}
