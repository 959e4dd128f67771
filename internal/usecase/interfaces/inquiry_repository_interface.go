package interfaces

import (
	"context"

	"studio_pricing/internal/domain/entities"
)

// IInquiryRepository abstracts DynamoDB persistence for Inquiry.
//
// Not-found is signalled with a zero-value entity, never an error; the
// usecase layer maps that to its own sentinel. Inquiries are never deleted.

type IInquiryRepository interface {
	Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error)
	GetByID(ctx context.Context, id string) (entities.Inquiry, error)
	// List returns inquiries filtered by status; an empty status returns all.
	List(ctx context.Context, status entities.InquiryStatus) ([]entities.Inquiry, error)
	Save(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error)
}
