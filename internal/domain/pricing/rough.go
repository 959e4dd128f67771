package pricing

import (
	"math"

	"studio_pricing/internal/domain/entities"
)

// Rough range tuning. Increments are asymmetric on purpose: some features add
// more uncertainty (max) than base cost (min).
const (
	roughBaseMin = 2000
	roughBaseMax = 4000

	roughFloorMin    = 1500
	roughMinimumGap  = 1000
	roughRoundNearby = 500
)

type band struct {
	Min float64
	Max float64
}

var categoryIncrements = map[Category]band{
	CategoryAI:          {2000, 4000},
	CategoryPayments:    {1500, 3000},
	CategoryRealtime:    {1500, 3500},
	CategoryMobile:      {1500, 3000},
	CategoryMarketplace: {2500, 5000},
	CategoryEcommerce:   {2000, 4000},
	CategoryAuth:        {500, 1500},
	CategoryData:        {500, 1500},
}

// Multipliers default to identity for unknown values, so an unrecognized
// answer never changes the band beyond what keyword matching produced.
var userTypeMultipliers = map[entities.UserType]band{
	entities.UserTypeJustMe:    {0.6, 0.7},
	entities.UserTypeTeam:      {0.9, 1.0},
	entities.UserTypeCustomers: {1.1, 1.3},
	entities.UserTypeEveryone:  {1.3, 1.6},
}

var timelineMultipliers = map[entities.Timeline]band{
	entities.TimelineExploring: {0.9, 1.0},
	entities.TimelineSoon:      {1.0, 1.0},
	entities.TimelineASAP:      {1.15, 1.3},
}

// RoughEstimate is the quick band computed at inquiry-submission time, before
// any detailed scoping. Keywords are returned for transparency.
type RoughEstimate struct {
	Min      int
	Max      int
	Keywords []Category
}

// RoughRange combines detected categories, user-type multiplier and timeline
// multiplier with the base price band. Deterministic and side-effect free:
// identical inputs always produce identical output.
func RoughRange(description string, userType entities.UserType, timeline entities.Timeline) RoughEstimate {
	keywords := DetectCategories(description)

	min := float64(roughBaseMin)
	max := float64(roughBaseMax)
	for _, cat := range keywords {
		inc := categoryIncrements[cat]
		min += inc.Min
		max += inc.Max
	}

	if m, ok := userTypeMultipliers[userType]; ok {
		min *= m.Min
		max *= m.Max
	}
	if m, ok := timelineMultipliers[timeline]; ok {
		min *= m.Min
		max *= m.Max
	}

	minRounded := roundToNearest(min, roughRoundNearby)
	maxRounded := roundToNearest(max, roughRoundNearby)

	if minRounded < roughFloorMin {
		minRounded = roughFloorMin
	}
	if maxRounded < minRounded+roughMinimumGap {
		maxRounded = minRounded + roughMinimumGap
	}

	return RoughEstimate{Min: minRounded, Max: maxRounded, Keywords: keywords}
}

func roundToNearest(v float64, step int) int {
	return int(math.Round(v/float64(step))) * step
}
