package entities

import "time"

// CatalogModule is a reusable build-block definition consumed by the detailed
// estimate calculator. Seed/config data, edited by admins.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Dependencies reference other catalog module ids; the calculator pulls a
// dependency's hours and tokens into the total even when it was not selected
// explicitly, without double-counting shared dependencies.
type CatalogModule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`

	BaseHours  float64  `json:"base_hours"`
	BaseTokens int64    `json:"base_tokens"`
	RiskWeight float64  `json:"risk_weight"`
	Deps       []string `json:"dependencies"`

	// ArchitectReviewTrigger marks modules complex enough to warrant a human
	// design review before building. Advisory; never blocks estimation.
	ArchitectReviewTrigger bool `json:"architect_review_trigger"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RateCard holds the billable rates the detailed calculator prices against.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariant: at most one rate card has IsActive=true at any time. Activation
// flips the previous actives off and the target on in a single transaction.
type RateCard struct {
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

// FallbackRateCard returns the conservative rates used when no rate card is
// active. Estimates priced with it run in degraded mode.
func FallbackRateCard() RateCard {
	return RateCard{
		ID:           "fallback",
		Name:         "Fallback rates",
		HourlyRate:   110,
		TokenRateIn:  0.000003,
		TokenRateOut: 0.000015,
		MarkupFactor: 1.0,
	}
}

// SeedCatalogModules returns the default module catalog used to pre-populate
// an empty table.
func SeedCatalogModules() []CatalogModule {
	return []CatalogModule{
		{ID: "auth-basic", Name: "Accounts & login", Category: "auth", BaseHours: 12, BaseTokens: 900_000, RiskWeight: 0.5},
		{ID: "auth-sso", Name: "SSO / enterprise auth", Category: "auth", BaseHours: 18, BaseTokens: 1_400_000, RiskWeight: 1.5, Deps: []string{"auth-basic"}},
		{ID: "crud-core", Name: "Core data & CRUD", Category: "data", BaseHours: 16, BaseTokens: 1_200_000, RiskWeight: 0.5},
		{ID: "dashboard", Name: "Dashboard & reporting", Category: "data", BaseHours: 14, BaseTokens: 1_100_000, RiskWeight: 1.0, Deps: []string{"crud-core"}},
		{ID: "payments", Name: "Payments & billing", Category: "payments", BaseHours: 20, BaseTokens: 1_600_000, RiskWeight: 2.0, Deps: []string{"auth-basic"}, ArchitectReviewTrigger: true},
		{ID: "ai-assistant", Name: "AI assistant / chatbot", Category: "ai", BaseHours: 24, BaseTokens: 2_400_000, RiskWeight: 2.5, Deps: []string{"crud-core"}, ArchitectReviewTrigger: true},
		{ID: "realtime-sync", Name: "Realtime sync & presence", Category: "realtime", BaseHours: 22, BaseTokens: 1_800_000, RiskWeight: 2.5, ArchitectReviewTrigger: true},
		{ID: "notifications", Name: "Email & push notifications", Category: "messaging", BaseHours: 8, BaseTokens: 600_000, RiskWeight: 0.5},
		{ID: "file-uploads", Name: "File uploads & storage", Category: "storage", BaseHours: 10, BaseTokens: 700_000, RiskWeight: 1.0},
		{ID: "search", Name: "Search & filtering", Category: "data", BaseHours: 12, BaseTokens: 900_000, RiskWeight: 1.5, Deps: []string{"crud-core"}},
	}
}
