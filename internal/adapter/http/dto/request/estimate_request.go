package request

import (
	"strings"

	"studio_pricing/internal/domain/entities"
)

// EstimateRequest is the wizard's build specification. Every categorical
// field may be omitted or blank; blanks normalize to the unknown sentinel so
// the calculator can apply defaults and widen the band instead of rejecting
// the request.
type EstimateRequest struct {
	Platform     string   `json:"platform"`
	AuthLevel    string   `json:"auth_level"`
	Modules      []string `json:"modules"`
	Quality      string   `json:"quality"`
	Integrations string   `json:"integrations"`
	Urgency      string   `json:"urgency"`
	Iteration    string   `json:"iteration"`
}

func (r EstimateRequest) ToBuildSpec() entities.BuildSpec {
	return entities.BuildSpec{
		Platform:     normalizeAnswer(r.Platform),
		AuthLevel:    normalizeAnswer(r.AuthLevel),
		Modules:      r.Modules,
		Quality:      normalizeAnswer(r.Quality),
		Integrations: normalizeAnswer(r.Integrations),
		Urgency:      normalizeAnswer(r.Urgency),
		Iteration:    normalizeAnswer(r.Iteration),
	}
}

func normalizeAnswer(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return entities.Unknown
	}
	return v
}
