package pricing

import (
	"errors"
	"fmt"
	"math"

	"studio_pricing/internal/domain/entities"
)

var ErrUnknownModule = errors.New("unknown catalog module")

// Multiplier tables for the detailed calculator. Unknown answers fall back to
// a neutral-ish default and surface as assumptions instead of errors.
var qualityMultipliers = map[string]float64{
	"prototype":  0.7,
	"mvp":        1.0,
	"production": 1.45,
}

var platformMultipliers = map[string]float64{
	"web":    1.0,
	"mobile": 1.2,
	"both":   1.5,
}

var urgencyMultipliers = map[string]float64{
	"flexible": 0.95,
	"standard": 1.0,
	"asap":     1.25,
}

var iterationMultipliers = map[string]float64{
	"one-pass":  1.0,
	"iterative": 1.15,
}

// authLevelHours is the flat hour add-on for the requested auth depth.
var authLevelHours = map[string]float64{
	"none":  0,
	"basic": 8,
	"sso":   16,
}

var integrationTiers = map[string]int{
	"none": 0,
	"few":  1,
	"many": 2,
}

const (
	unknownPlatformMult  = 1.1
	unknownAuthHours     = 8
	unknownIntegrations  = 1
	degradedUnknownLimit = 4
	degradedMaxConf      = 0.45

	hoursPerDay = 6

	tokensInShare = 0.6
)

// ComputeEstimate maps a structured build specification plus the active rate
// card plus the module catalog into a full estimate.
//
// Business-level uncertainty (unknown answers, missing rate card) degrades
// the result instead of failing; only a reference to a module id absent from
// the catalog is a structural error.
func ComputeEstimate(spec entities.BuildSpec, card *entities.RateCard, catalog []entities.CatalogModule) (entities.Estimate, error) {
	closure, err := moduleClosure(spec.Modules, catalog)
	if err != nil {
		return entities.Estimate{}, err
	}

	var assumptions []string
	unknowns := 0
	countUnknown := func(field, value string) bool {
		if value == "" || value == entities.Unknown {
			unknowns++
			assumptions = append(assumptions, fmt.Sprintf("No %s was specified; a typical default was assumed.", field))
			return true
		}
		return false
	}

	qualityMult := 1.0
	if !countUnknown("quality level", spec.Quality) {
		if m, ok := qualityMultipliers[spec.Quality]; ok {
			qualityMult = m
		} else {
			unknowns++
			assumptions = append(assumptions, fmt.Sprintf("Quality level %q is not recognized; MVP quality was assumed.", spec.Quality))
		}
	}

	platformMult := unknownPlatformMult
	if !countUnknown("target platform", spec.Platform) {
		if m, ok := platformMultipliers[spec.Platform]; ok {
			platformMult = m
		} else {
			unknowns++
			assumptions = append(assumptions, fmt.Sprintf("Platform %q is not recognized; a web-first build was assumed.", spec.Platform))
			platformMult = 1.0
		}
	}

	urgencyMult := 1.0
	if !countUnknown("delivery urgency", spec.Urgency) {
		if m, ok := urgencyMultipliers[spec.Urgency]; ok {
			urgencyMult = m
		}
	}

	iterationMult := 1.0
	if !countUnknown("iteration style", spec.Iteration) {
		if m, ok := iterationMultipliers[spec.Iteration]; ok {
			iterationMult = m
		}
	}

	authHours := float64(unknownAuthHours)
	if !countUnknown("authentication level", spec.AuthLevel) {
		if h, ok := authLevelHours[spec.AuthLevel]; ok {
			authHours = h
		}
	}

	integrationTier := unknownIntegrations
	if !countUnknown("integration count", spec.Integrations) {
		if t, ok := integrationTiers[spec.Integrations]; ok {
			integrationTier = t
		}
	}

	// Rate card: absence is a configuration gap, not a failure.
	degraded := false
	degradedReason := ""
	rates := entities.FallbackRateCard()
	if card != nil {
		rates = *card
	} else {
		degraded = true
		degradedReason = "No active rate card is configured; fallback rates were used."
		assumptions = append(assumptions, "Priced with fallback rates because no rate card is active.")
	}
	if unknowns >= degradedUnknownLimit {
		degraded = true
		if degradedReason != "" {
			degradedReason += " "
		}
		degradedReason += fmt.Sprintf("%d of the build questions were left unanswered; the range is wider than usual.", unknowns)
	}

	factorMult := qualityMult * platformMult * urgencyMult * iterationMult

	// Hours and tokens over the dependency closure, shared deps counted once.
	var rawHours, riskWeightSum float64
	var rawTokens int64
	var reviewTriggers []string
	for _, m := range closure {
		rawHours += m.BaseHours
		rawTokens += m.BaseTokens
		riskWeightSum += m.RiskWeight
		if m.ArchitectReviewTrigger {
			reviewTriggers = append(reviewTriggers, m.Name)
		}
	}
	integrationHours := float64(integrationTier) * 6

	hours := (rawHours + authHours + integrationHours) * factorMult
	tokens := float64(rawTokens) * qualityMult

	avgRiskWeight := 0.0
	if len(closure) > 0 {
		avgRiskWeight = riskWeightSum / float64(len(closure))
	}

	markup := rates.MarkupFactor
	if markup <= 0 {
		markup = 1.0
	}
	laborCost := hours * rates.HourlyRate * markup
	tokensIn := int64(tokens * tokensInShare)
	tokensOut := int64(tokens) - tokensIn
	materialsCost := (float64(tokensIn)*rates.TokenRateIn + float64(tokensOut)*rates.TokenRateOut) * markup

	riskFactor := 0.06*avgRiskWeight + 0.05*float64(unknowns) + 0.04*float64(integrationTier)
	if spec.Urgency == "asap" {
		riskFactor += 0.05
	}
	riskBuffer := (laborCost + materialsCost) * riskFactor

	confidence := 0.92 - 0.08*float64(unknowns) - 0.03*avgRiskWeight - 0.02*float64(integrationTier)
	confidence = clamp(confidence, 0.30, 0.92)
	if degraded {
		confidence = math.Min(confidence, degradedMaxConf)
	}

	laborCost = math.Round(laborCost)
	materialsCost = math.Round(materialsCost)
	riskBuffer = math.Round(riskBuffer)
	priceMid := laborCost + materialsCost + riskBuffer

	spread := 1 - confidence
	lowFactor := 1 - 0.55*spread
	highFactor := 1 + 0.9*spread
	if degraded {
		lowFactor *= 0.85
		highFactor *= 1.25
	}
	priceMin := math.Round(priceMid * lowFactor)
	priceMax := math.Round(priceMid * highFactor)

	hoursMin := math.Round(hours * 0.85)
	hoursMax := math.Round(hours * 1.25)

	est := entities.Estimate{
		Spec:                 spec,
		PriceMin:             priceMin,
		PriceMid:             priceMid,
		PriceMax:             priceMax,
		HoursMin:             hoursMin,
		HoursMax:             hoursMax,
		DaysMin:              int(math.Ceil(hoursMin / hoursPerDay)),
		DaysMax:              int(math.Ceil(hoursMax / hoursPerDay)),
		Confidence:           round2(confidence),
		TokensIn:             tokensIn,
		TokensOut:            tokensOut,
		MaterialsCost:        materialsCost,
		LaborCost:            laborCost,
		RiskBuffer:           riskBuffer,
		DegradedMode:         degraded,
		DegradedReason:       degradedReason,
		NeedsReview:          len(reviewTriggers) > 0,
		ReviewTriggerModules: reviewTriggers,
		Assumptions:          assumptions,
	}

	est.CostDrivers = buildCostDrivers(driverInputs{
		closure:          closure,
		factorMult:       factorMult,
		qualityMult:      qualityMult,
		platformMult:     platformMult,
		urgencyMult:      urgencyMult,
		integrationHours: integrationHours,
		rates:            rates,
		markup:           markup,
		laborPlusMat:     laborCost + materialsCost,
		priceMid:         priceMid,
	})

	return est, nil
}

// moduleClosure resolves the selected module ids plus their transitive
// dependencies, deduplicated, ordered by catalog position so the closure
// (and the cost drivers built from it) reads the way the catalog does.
func moduleClosure(selected []string, catalog []entities.CatalogModule) ([]entities.CatalogModule, error) {
	byID := make(map[string]entities.CatalogModule, len(catalog))
	for _, m := range catalog {
		byID[m.ID] = m
	}

	seen := make(map[string]bool)
	var visit func(id string) error
	visit = func(id string) error {
		if seen[id] {
			return nil
		}
		m, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownModule, id)
		}
		seen[id] = true
		for _, dep := range m.Deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		return nil
	}

	for _, id := range selected {
		if err := visit(id); err != nil {
			return nil, err
		}
	}

	out := make([]entities.CatalogModule, 0, len(seen))
	for _, m := range catalog {
		if seen[m.ID] {
			out = append(out, m)
		}
	}
	return out, nil
}

type driverInputs struct {
	closure          []entities.CatalogModule
	factorMult       float64
	qualityMult      float64
	platformMult     float64
	urgencyMult      float64
	integrationHours float64
	rates            entities.RateCard
	markup           float64
	laborPlusMat     float64
	priceMid         float64
}

// buildCostDrivers produces one entry per meaningfully-contributing factor:
// each module in the closure, then quality, platform, integrations, urgency.
// Amounts are signed dollars relative to the MVP/web/standard baseline;
// negligible contributions are dropped.
func buildCostDrivers(in driverInputs) []entities.CostDriver {
	var drivers []entities.CostDriver
	add := func(name string, amount float64) {
		amount = math.Round(amount)
		if math.Abs(amount) < 1 {
			return
		}
		drivers = append(drivers, entities.CostDriver{
			Name:   name,
			Impact: impactTier(amount, in.priceMid),
			Amount: amount,
		})
	}

	for _, m := range in.closure {
		labor := m.BaseHours * in.factorMult * in.rates.HourlyRate * in.markup
		tokens := float64(m.BaseTokens) * in.qualityMult
		materials := (tokens*tokensInShare*in.rates.TokenRateIn + tokens*(1-tokensInShare)*in.rates.TokenRateOut) * in.markup
		add(m.Name, labor+materials)
	}

	if in.qualityMult != 1.0 {
		add("Quality level", in.laborPlusMat * (1 - 1/in.qualityMult))
	}
	if in.platformMult != 1.0 {
		add("Target platform", in.laborPlusMat * (1 - 1/in.platformMult))
	}
	if in.integrationHours > 0 {
		add("Third-party integrations", in.integrationHours*in.factorMult*in.rates.HourlyRate*in.markup)
	}
	if in.urgencyMult != 1.0 {
		add("Delivery urgency", in.laborPlusMat * (1 - 1/in.urgencyMult))
	}
	return drivers
}

func impactTier(amount, priceMid float64) entities.DriverImpact {
	if priceMid <= 0 {
		return entities.ImpactLow
	}
	share := math.Abs(amount) / priceMid
	switch {
	case share >= 0.20:
		return entities.ImpactHigh
	case share >= 0.08:
		return entities.ImpactMedium
	default:
		return entities.ImpactLow
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
