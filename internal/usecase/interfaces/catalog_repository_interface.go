package interfaces

import (
	"context"

	"studio_pricing/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for the module catalog.

type ICatalogRepository interface {
	ListModules(ctx context.Context) ([]entities.CatalogModule, error)
	GetModule(ctx context.Context, id string) (entities.CatalogModule, error)
	PutModule(ctx context.Context, m entities.CatalogModule) (entities.CatalogModule, error)
}

// IRateCardRepository abstracts DynamoDB persistence for rate cards.
//
// Activate must be atomic: after it returns, exactly one rate card is active.
// GetActive returns a zero-value card when none is active; the calculator
// treats that as a degraded-mode configuration gap.

type IRateCardRepository interface {
	Create(ctx context.Context, rc entities.RateCard) (entities.RateCard, error)
	List(ctx context.Context) ([]entities.RateCard, error)
	GetActive(ctx context.Context) (entities.RateCard, error)
	Activate(ctx context.Context, id string) (entities.RateCard, error)
}
