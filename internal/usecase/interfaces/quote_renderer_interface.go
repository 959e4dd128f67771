package interfaces

import (
	"context"

	"studio_pricing/internal/domain/entities"
)

// IQuoteRenderer renders an issued quote's snapshot into a downloadable PDF.
type IQuoteRenderer interface {
	RenderPDF(ctx context.Context, q entities.Quote) ([]byte, error)
}
