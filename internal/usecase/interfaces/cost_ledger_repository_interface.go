package interfaces

import (
	"context"

	"fieldserve_costing/internal/domain/entities"
)

// ICostLedgerRepository abstracts DynamoDB persistence for CostEntry.
//
// The ledger is append-heavy: entries are created per receipt/timesheet,
// occasionally corrected or removed, and always read in bulk per job for
// aggregation.
type ICostLedgerRepository interface {
	Create(ctx context.Context, e entities.CostEntry) (entities.CostEntry, error)
	Update(ctx context.Context, e entities.CostEntry) (entities.CostEntry, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.CostEntry, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.CostEntry, error)
}
