package response

import (
	"time"

	"fieldserve_costing/internal/domain/entities"
)

type AlertResponse struct {
	Type      string  `json:"type"`
	Severity  string  `json:"severity"`
	Message   string  `json:"message"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
}

type SnapshotResponse struct {
	JobID    string `json:"job_id"`
	JobTitle string `json:"job_title"`
	Status   string `json:"status"`

	ContractPrice  float64            `json:"contract_price"`
	TotalInvoiced  float64            `json:"total_invoiced"`
	EstimatedCost  float64            `json:"estimated_cost"`
	ActualCost     float64            `json:"actual_cost"`
	EstimatedHours float64            `json:"estimated_hours"`
	ActualHours    float64            `json:"actual_hours"`
	Distribution   map[string]float64 `json:"distribution"`

	ExpectedProfit  float64 `json:"expected_profit"`
	ActualProfit    float64 `json:"actual_profit"`
	ProfitVariance  float64 `json:"profit_variance"`
	GrossProfit     float64 `json:"gross_profit"`
	ProfitMarginPct float64 `json:"profit_margin_pct"`
	CostVariance    float64 `json:"cost_variance"`
	LaborVariance   float64 `json:"labor_variance"`
	IsProfitable    bool    `json:"is_profitable"`

	DaysElapsed        int     `json:"days_elapsed"`
	BurnRate           float64 `json:"burn_rate"`
	ProjectedTotalCost float64 `json:"projected_total_cost"`

	Score float64 `json:"score"`
	Grade string  `json:"grade"`

	Alerts   []AlertResponse `json:"alerts"`
	Degraded []string        `json:"degraded,omitempty"`

	ComputedAt time.Time `json:"computed_at"`
}

func FromSnapshot(s entities.JobCostSnapshot) SnapshotResponse {
	dist := make(map[string]float64, len(s.Distribution))
	for k, v := range s.Distribution {
		dist[string(k)] = round2(v)
	}
	alerts := make([]AlertResponse, 0, len(s.Alerts))
	for _, a := range s.Alerts {
		alerts = append(alerts, AlertResponse{
			Type:      a.Type,
			Severity:  string(a.Severity),
			Message:   a.Message,
			Value:     round2(a.Value),
			Threshold: round2(a.Threshold),
		})
	}

	return SnapshotResponse{
		JobID:    s.JobID,
		JobTitle: s.JobTitle,
		Status:   string(s.Status),

		ContractPrice:  round2(s.ContractPrice),
		TotalInvoiced:  round2(s.TotalInvoiced),
		EstimatedCost:  round2(s.EstimatedCost),
		ActualCost:     round2(s.ActualCost),
		EstimatedHours: round2(s.EstimatedHours),
		ActualHours:    round2(s.ActualHours),
		Distribution:   dist,

		ExpectedProfit:  round2(s.ExpectedProfit),
		ActualProfit:    round2(s.ActualProfit),
		ProfitVariance:  round2(s.ProfitVariance),
		GrossProfit:     round2(s.GrossProfit),
		ProfitMarginPct: round2(s.ProfitMarginPct),
		CostVariance:    round2(s.CostVariance),
		LaborVariance:   round2(s.LaborVariance),
		IsProfitable:    s.IsProfitable,

		DaysElapsed:        s.DaysElapsed,
		BurnRate:           round2(s.BurnRate),
		ProjectedTotalCost: round2(s.ProjectedTotalCost),

		Score: round2(s.Score),
		Grade: string(s.Grade),

		Alerts:   alerts,
		Degraded: s.Degraded,

		ComputedAt: s.ComputedAt,
	}
}

func FromSnapshots(snaps []entities.JobCostSnapshot) []SnapshotResponse {
	out := make([]SnapshotResponse, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, FromSnapshot(s))
	}
	return out
}
