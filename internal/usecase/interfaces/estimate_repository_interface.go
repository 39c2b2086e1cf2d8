package interfaces

import (
	"context"

	"fieldserve_costing/internal/domain/entities"
)

// IEstimateRepository abstracts read-only DynamoDB access to estimates.
//
// The costing core only needs approved estimates matching a job's estimate
// link or lead link; results come back ordered by creation time descending
// so the caller can take the most recent match.
type IEstimateRepository interface {
	FindApproved(ctx context.Context, estimateID, leadID string) ([]entities.Estimate, error)
}
