package costing

import "math"

// VarianceInput carries the figures the variance calculation derives from.
type VarianceInput struct {
	ContractPrice  float64
	EstimatedCost  float64
	ActualCost     float64
	EstimatedHours float64
	ActualHours    float64
	TotalInvoiced  float64
}

// VarianceResult holds every profit/variance figure for one job.
type VarianceResult struct {
	ExpectedProfit  float64
	ActualProfit    float64
	ProfitVariance  float64
	GrossProfit     float64
	ProfitMarginPct float64
	CostVariance    float64
	LaborVariance   float64
	IsProfitable    bool
}

// CalculateVariance derives profit, margin, and variance figures.
//
// Every output is finite: NaN/Inf results of bad input are coerced to 0
// before being surfaced. Losing a single figure is preferable to failing
// an entire dashboard render, so the coercion is deliberate policy rather
// than silent corruption.
func CalculateVariance(in VarianceInput) VarianceResult {
	expectedProfit := in.ContractPrice - in.EstimatedCost
	actualProfit := in.ContractPrice - in.ActualCost

	marginPct := 0.0
	if in.ContractPrice > 0 {
		marginPct = expectedProfit / in.ContractPrice * 100
	}

	return VarianceResult{
		ExpectedProfit:  sanitize(expectedProfit),
		ActualProfit:    sanitize(actualProfit),
		ProfitVariance:  sanitize(actualProfit - expectedProfit),
		GrossProfit:     sanitize(in.TotalInvoiced - in.ActualCost),
		ProfitMarginPct: sanitize(marginPct),
		CostVariance:    sanitize(in.ActualCost - in.EstimatedCost),
		LaborVariance:   sanitize(in.ActualHours - in.EstimatedHours),
		IsProfitable:    actualProfit > 0,
	}
}

// sanitize coerces NaN and ±Inf to 0.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
