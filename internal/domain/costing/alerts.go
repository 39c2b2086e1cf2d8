package costing

import (
	"fmt"

	"fieldserve_costing/internal/domain/entities"
)

// AlertInput carries the computed metrics the alert rules evaluate.
type AlertInput struct {
	ContractPrice      float64
	EstimatedCost      float64
	CostVariance       float64
	ProfitMarginPct    float64
	ProjectedTotalCost float64
	BurnOverrun        bool
}

// EvaluateAlerts runs the threshold rules in fixed priority order and
// returns every alert whose condition holds. Rules are non-exclusive and
// the engine never fails; it only classifies.
func EvaluateAlerts(in AlertInput, th Thresholds) []entities.Alert {
	alerts := make([]entities.Alert, 0, 4)

	if in.EstimatedCost > 0 {
		overrunPct := in.CostVariance / in.EstimatedCost * 100
		if overrunPct > th.CostOverrunAlertPct {
			alerts = append(alerts, entities.Alert{
				Type:      entities.AlertTypeCostOverrun,
				Severity:  entities.AlertSeverityDanger,
				Message:   fmt.Sprintf("Cost overrun: %.1f%% over budget", overrunPct),
				Value:     overrunPct,
				Threshold: th.CostOverrunAlertPct,
			})
		}
	}

	if in.ProfitMarginPct >= 0 && in.ProfitMarginPct < th.LowMarginAlertPct {
		alerts = append(alerts, entities.Alert{
			Type:      entities.AlertTypeLowMargin,
			Severity:  entities.AlertSeverityWarning,
			Message:   fmt.Sprintf("Low profit margin: %.1f%%", in.ProfitMarginPct),
			Value:     in.ProfitMarginPct,
			Threshold: th.LowMarginAlertPct,
		})
	}

	if in.ProfitMarginPct < 0 {
		alerts = append(alerts, entities.Alert{
			Type:      entities.AlertTypeUnprofitable,
			Severity:  entities.AlertSeverityDanger,
			Message:   fmt.Sprintf("Job is unprofitable: margin %.1f%%", in.ProfitMarginPct),
			Value:     in.ProfitMarginPct,
			Threshold: 0,
		})
	}

	if in.ContractPrice == 0 {
		alerts = append(alerts, entities.Alert{
			Type:      entities.AlertTypeContractUnset,
			Severity:  entities.AlertSeverityWarning,
			Message:   "Contract price not set",
			Value:     0,
			Threshold: 0,
		})
	}

	if in.BurnOverrun {
		alerts = append(alerts, entities.Alert{
			Type:      entities.AlertTypeBurnRateOverrun,
			Severity:  entities.AlertSeverityWarning,
			Message:   fmt.Sprintf("Projected cost %.2f exceeds budget threshold", in.ProjectedTotalCost),
			Value:     in.ProjectedTotalCost,
			Threshold: in.EstimatedCost * th.BurnOverrunFactor,
		})
	}

	return alerts
}
