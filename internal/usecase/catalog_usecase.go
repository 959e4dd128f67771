package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/infrastructure/logging"
	"studio_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidModuleInput   = errors.New("invalid module input")
	ErrInvalidRateCardID    = errors.New("invalid rate card id")
	ErrInvalidRateCardInput = errors.New("invalid rate card input")
	ErrRateCardNotFound     = errors.New("rate card not found")
	ErrUnknownDependency    = errors.New("unknown module dependency")
)

// ICatalogUseCase exposes the admin-side catalog and rate-card operations
// that feed the detailed estimate calculator.
type ICatalogUseCase interface {
	ListModules(ctx context.Context) ([]entities.CatalogModule, error)
	UpsertModule(ctx context.Context, mod entities.CatalogModule) (entities.CatalogModule, error)
	ListRateCards(ctx context.Context) ([]entities.RateCard, error)
	CreateRateCard(ctx context.Context, rc entities.RateCard) (entities.RateCard, error)
	ActivateRateCard(ctx context.Context, id string) (entities.RateCard, error)
}

type CatalogUseCase struct {
	catalog   interfaces.ICatalogRepository
	rateCards interfaces.IRateCardRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogRepository, rateCards interfaces.IRateCardRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, rateCards: rateCards}
}

func (u *CatalogUseCase) ListModules(ctx context.Context) ([]entities.CatalogModule, error) {
	return u.catalog.ListModules(ctx)
}

func (u *CatalogUseCase) UpsertModule(ctx context.Context, m entities.CatalogModule) (entities.CatalogModule, error) {
	m.ID = strings.TrimSpace(m.ID)
	m.Name = strings.TrimSpace(m.Name)
	if m.ID == "" || m.Name == "" || m.BaseHours < 0 || m.BaseTokens < 0 || m.RiskWeight < 0 {
		return entities.CatalogModule{}, ErrInvalidModuleInput
	}

	// A dependency must reference an existing module (or the module itself
	// being written, for in-place edits).
	existing, err := u.catalog.ListModules(ctx)
	if err != nil {
		return entities.CatalogModule{}, err
	}
	known := make(map[string]bool, len(existing)+1)
	for _, e := range existing {
		known[e.ID] = true
	}
	known[m.ID] = true
	for _, dep := range m.Deps {
		if !known[dep] {
			return entities.CatalogModule{}, fmt.Errorf("%w: %s", ErrUnknownDependency, dep)
		}
		if dep == m.ID {
			return entities.CatalogModule{}, fmt.Errorf("%w: %s depends on itself", ErrInvalidModuleInput, m.ID)
		}
	}

	m.UpdatedAt = time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = m.UpdatedAt
	}
	return u.catalog.PutModule(ctx, m)
}

func (u *CatalogUseCase) ListRateCards(ctx context.Context) ([]entities.RateCard, error) {
	return u.rateCards.List(ctx)
}

func (u *CatalogUseCase) CreateRateCard(ctx context.Context, rc entities.RateCard) (entities.RateCard, error) {
	rc.Name = strings.TrimSpace(rc.Name)
	if rc.HourlyRate <= 0 || rc.TokenRateIn < 0 || rc.TokenRateOut < 0 {
		return entities.RateCard{}, ErrInvalidRateCardInput
	}
	if rc.MarkupFactor <= 0 {
		rc.MarkupFactor = 1.0
	}

	now := time.Now().UTC()
	rc.ID = uuid.NewString()
	rc.IsActive = false
	rc.CreatedAt = now
	rc.UpdatedAt = now
	return u.rateCards.Create(ctx, rc)
}

// ActivateRateCard enforces the single-active invariant: the repository
// deactivates every other card and activates the target in one transaction.
func (u *CatalogUseCase) ActivateRateCard(ctx context.Context, id string) (entities.RateCard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RateCard{}, ErrInvalidRateCardID
	}

	activated, err := u.rateCards.Activate(ctx, id)
	if err != nil {
		return entities.RateCard{}, err
	}
	if activated.ID == "" {
		return entities.RateCard{}, ErrRateCardNotFound
	}
	logging.L("catalog.usecase").Infow("rate card activated", "rate_card_id", activated.ID)
	return activated, nil
}
