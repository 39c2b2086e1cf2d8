package entities

import "time"

// Grade is the A-F letter derived from the profitability score.

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// AlertSeverity classifies a threshold alert.

type AlertSeverity string

const (
	AlertSeverityWarning AlertSeverity = "warning"
	AlertSeverityDanger  AlertSeverity = "danger"
)

// Alert types, in evaluation priority order.
const (
	AlertTypeCostOverrun     = "cost_overrun"
	AlertTypeLowMargin       = "low_margin"
	AlertTypeUnprofitable    = "unprofitable"
	AlertTypeContractUnset   = "contract_price_not_set"
	AlertTypeBurnRateOverrun = "burn_rate_overrun"
)

// Alert is one threshold finding attached to a snapshot. Alerts are
// classification only; none of them interrupts computation.
type Alert struct {
	Type      string        `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	Value     float64       `json:"value"`
	Threshold float64       `json:"threshold"`
}

// Degradation reasons recorded on a snapshot when a collaborator read
// failed and a documented default was substituted.
const (
	DegradedLedger    = "ledger_unavailable"
	DegradedEstimates = "estimates_unavailable"
	DegradedInvoices  = "invoices_unavailable"
)

// JobCostSnapshot is the complete set of derived metrics for one job at a
// point in time. It is a pure function of its inputs: recomputed on demand,
// never stored as a source of truth, and immutable once produced.
//
// All currency fields carry full float64 precision; display rounding to two
// decimals happens in the response DTO layer only.
type JobCostSnapshot struct {
	JobID    string    `json:"job_id"`
	JobTitle string    `json:"job_title"`
	Status   JobStatus `json:"status"`

	ContractPrice  float64              `json:"contract_price"`
	TotalInvoiced  float64              `json:"total_invoiced"`
	EstimatedCost  float64              `json:"estimated_cost"`
	ActualCost     float64              `json:"actual_cost"`
	EstimatedHours float64              `json:"estimated_hours"`
	ActualHours    float64              `json:"actual_hours"`
	Distribution   map[CostType]float64 `json:"distribution"`

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
	Grade Grade   `json:"grade"`

	Alerts   []Alert  `json:"alerts"`
	Degraded []string `json:"degraded,omitempty"`

	ComputedAt time.Time `json:"computed_at"`
}
