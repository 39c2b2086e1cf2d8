package interfaces

import (
	"context"

	"fieldserve_costing/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// The costing core must be able to:
//   - read a job before computing its snapshot
//   - write back the recomputed actual cost after a ledger mutation
//   - write an explicitly edited or estimate-populated contract price
//   - list jobs still missing a contract price for batch population
type IJobRepository interface {
	GetByID(ctx context.Context, id string) (entities.Job, error)
	UpdateActualCost(ctx context.Context, id string, actualCost float64) (entities.Job, error)
	UpdateContractPrice(ctx context.Context, id string, contractPrice float64) (entities.Job, error)
	ListMissingContractPrice(ctx context.Context) ([]entities.Job, error)
}
