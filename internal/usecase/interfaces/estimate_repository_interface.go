package interfaces

import (
	"context"

	"studio_pricing/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The back-office must be able to:
//   - create an estimate when the wizard submits a build specification
//   - fetch it for display and for quote publishing
//   - flip draft -> quoted once the estimate is snapshotted into a quote

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
}
