package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - The costing core reads estimates, never writes them; the estimating
//     subsystem owns transitions.
//   - Only approved estimates are eligible to supply a job's contract price.

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusExpired  EstimateStatus = "expired"
)

// Estimate is the approved-quote reference read from DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
//
// Monetary representation:
//   - TotalAmount is the client-facing estimate total; for an approved
//     estimate it becomes the job's contract price when no explicit
//     override exists.
//
type Estimate struct {
	ID          string         `json:"id"`
	LeadID      string         `json:"lead_id,omitempty"`
	Status      EstimateStatus `json:"status"`
	TotalAmount float64        `json:"total_amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
