package response

import (
	"time"

	"fieldserve_costing/internal/domain/entities"
)

type JobResponse struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Status               string    `json:"status"`
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

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                   j.ID,
		Title:                j.Title,
		Status:               string(j.Status),
		StartDate:            j.StartDate,
		EstimatedHours:       j.EstimatedHours,
		ActualHours:          j.ActualHours,
		EstimatedCost:        round2(j.EstimatedCost),
		ActualCost:           round2(j.ActualCost),
		ContractPrice:        round2(j.ContractPrice),
		CompletionPercentage: j.CompletionPercentage,
		EstimateID:           j.EstimateID,
		LeadID:               j.LeadID,
		CreatedAt:            j.CreatedAt,
		UpdatedAt:            j.UpdatedAt,
	}
}
