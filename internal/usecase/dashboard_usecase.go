package usecase

import (
	"context"
	"math"

	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/usecase/interfaces"
)

// DashboardStats is the read-side rollup shown on the admin dashboard.
// Funnel percentages are cumulative: each stage counts every inquiry that
// reached it or went past it.
type DashboardStats struct {
	TotalInquiries   int                            `json:"total_inquiries"`
	InquiriesByState map[entities.InquiryStatus]int `json:"inquiries_by_status"`
	QuotesByState    map[entities.QuoteStatus]int   `json:"quotes_by_status"`

	// PotentialRevenue sums snapshot priceMax over quotes not yet accepted.
	PotentialRevenue float64 `json:"potential_revenue"`

	// FunnelPercent maps stage -> percentage in [0,100]; all zeros when no
	// inquiries exist (never a division by zero).
	FunnelPercent map[entities.InquiryStatus]float64 `json:"funnel_percent"`
}

// IDashboardUseCase is the admin aggregation layer: idempotent, side-effect
// free projections over the inquiry and quote stores. The source tables are
// small and queried directly; there is nothing to cache or invalidate.
type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type DashboardUseCase struct {
	inquiries interfaces.IInquiryRepository
	quotes    interfaces.IQuoteRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(inquiries interfaces.IInquiryRepository, quotes interfaces.IQuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{inquiries: inquiries, quotes: quotes}
}

var funnelStages = []entities.InquiryStatus{
	entities.InquiryStatusNew,
	entities.InquiryStatusReviewed,
	entities.InquiryStatusQuoted,
	entities.InquiryStatusConverted,
}

func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	inquiries, err := u.inquiries.List(ctx, "")
	if err != nil {
		return DashboardStats{}, err
	}
	quotes, err := u.quotes.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalInquiries:   len(inquiries),
		InquiriesByState: map[entities.InquiryStatus]int{},
		QuotesByState:    map[entities.QuoteStatus]int{},
		FunnelPercent:    map[entities.InquiryStatus]float64{},
	}

	for _, i := range inquiries {
		stats.InquiriesByState[i.Status]++
	}
	for _, q := range quotes {
		stats.QuotesByState[q.Status]++
		if q.Status != entities.QuoteStatusAccepted {
			stats.PotentialRevenue += q.Snapshot.PriceMax
		}
	}

	for idx, stage := range funnelStages {
		stats.FunnelPercent[stage] = 0
		if stats.TotalInquiries == 0 {
			continue
		}
		reached := 0
		for _, later := range funnelStages[idx:] {
			reached += stats.InquiriesByState[later]
		}
		pct := float64(reached) / float64(stats.TotalInquiries) * 100
		stats.FunnelPercent[stage] = math.Round(pct*10) / 10
	}

	return stats, nil
}
