package response

import (
	"time"

	"fieldserve_costing/internal/domain/entities"
)

type CostEntryResponse struct {
	ID          string     `json:"id"`
	JobID       string     `json:"job_id"`
	CostType    string     `json:"cost_type"`
	Subtype     string     `json:"subtype,omitempty"`
	Description string     `json:"description"`
	Quantity    float64    `json:"quantity"`
	UnitCost    float64    `json:"unit_cost"`
	TotalCost   float64    `json:"total_cost"`
	CostDate    time.Time  `json:"cost_date"`
	Vendor      string     `json:"vendor,omitempty"`
	MarkupPct   float64    `json:"markup_pct,omitempty"`
	MarkupType  string     `json:"markup_type,omitempty"`
	ApprovedBy  string     `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromCostEntry(e entities.CostEntry) CostEntryResponse {
	return CostEntryResponse{
		ID:          e.ID,
		JobID:       e.JobID,
		CostType:    string(e.CostType),
		Subtype:     e.Subtype,
		Description: e.Description,
		Quantity:    e.Quantity,
		UnitCost:    round2(e.UnitCost),
		TotalCost:   round2(e.TotalCost),
		CostDate:    e.CostDate,
		Vendor:      e.Vendor,
		MarkupPct:   e.MarkupPct,
		MarkupType:  string(e.MarkupType),
		ApprovedBy:  e.ApprovedBy,
		ApprovedAt:  e.ApprovedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromCostEntries(entries []entities.CostEntry) []CostEntryResponse {
	out := make([]CostEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromCostEntry(e))
	}
	return out
}

// DistributionResponse is the per-type cost breakdown for one job. Every
// valid cost type appears, zero-valued when no entries exist for it.
type DistributionResponse struct {
	JobID        string             `json:"job_id"`
	Distribution map[string]float64 `json:"distribution"`
}

func FromDistribution(jobID string, dist map[entities.CostType]float64) DistributionResponse {
	out := make(map[string]float64, len(dist))
	for k, v := range dist {
		out[string(k)] = round2(v)
	}
	return DistributionResponse{JobID: jobID, Distribution: out}
}
