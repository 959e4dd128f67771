package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/domain/pricing"
	"studio_pricing/internal/infrastructure/logging"
	"studio_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrUnknownModuleID   = errors.New("unknown module id")
)

// IEstimateUseCase exposes detailed estimate operations.
//
//   - Create runs the rule-based calculator against the active rate card and
//     module catalog and persists the result as a draft.
//   - Configuration gaps (no active rate card) degrade the estimate; only a
//     module id absent from the catalog is rejected outright.
type IEstimateUseCase interface {
	Create(ctx context.Context, spec entities.BuildSpec) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	catalog   interfaces.ICatalogRepository
	rateCards interfaces.IRateCardRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, catalog interfaces.ICatalogRepository, rateCards interfaces.IRateCardRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, catalog: catalog, rateCards: rateCards}
}

func (u *EstimateUseCase) Create(ctx context.Context, spec entities.BuildSpec) (entities.Estimate, error) {
	log := logging.L("estimate.usecase")

	modules, err := u.catalog.ListModules(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}

	var card *entities.RateCard
	active, err := u.rateCards.GetActive(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	if active.ID != "" {
		card = &active
	}

	est, err := pricing.ComputeEstimate(spec, card, modules)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownModule) {
			return entities.Estimate{}, ErrUnknownModuleID
		}
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	est.ID = uuid.NewString()
	est.Status = entities.EstimateStatusDraft
	est.CreatedAt = now
	est.UpdatedAt = now

	created, err := u.repo.Create(ctx, est)
	if err != nil {
		return entities.Estimate{}, err
	}
	log.Infow("estimate created",
		"estimate_id", created.ID,
		"price_mid", created.PriceMid,
		"confidence", created.Confidence,
		"degraded", created.DegradedMode,
		"needs_review", created.NeedsReview,
	)
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
