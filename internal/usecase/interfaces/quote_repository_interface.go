package interfaces

import (
	"context"

	"studio_pricing/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// GetByShareID resolves the public capability token; the share_id GSI is the
// only public lookup path. Save persists workflow transitions (viewed,
// accepted) after the usecase has validated them.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByShareID(ctx context.Context, shareID string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
}
