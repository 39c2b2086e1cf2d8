package entities

import "time"

// JobStatus represents the lifecycle of a contracted job.
//
// Domain notes:
//   - Jobs are never deleted by the costing core; status moves them out of
//     active dashboards instead.
//   - Cost-entry mutations recompute ActualCost; contract-price edits come
//     from explicit user action or estimate population.

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Job is the contracted work record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - ContractPrice == 0 means "not set"; the revenue resolver then falls
//     back to the latest approved estimate.
//   - ActualCost is the committed ledger sum, kept as a stored denormalized
//     fallback for when the ledger is unreachable.
//
type Job struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Status               JobStatus `json:"status"`
	StartDate            time.Time `json:"start_date"`
	EstimatedHours       float64   `json:"estimated_hours"`
	ActualHours          float64   `json:"actual_hours"`
	EstimatedCost        float64   `json:"estimated_cost"`
	ActualCost           float64   `json:"actual_cost"`
	ContractPrice        float64   `json:"contract_price"`
	CompletionPercentage float64   `json:"completion_percentage"`
	EstimateID           string    `json:"estimate_id,omitempty"`
	LeadID               string    `json:"lead_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
