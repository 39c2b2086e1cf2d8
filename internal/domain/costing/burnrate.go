package costing

import (
	"math"
	"time"
)

// BurnRateInput carries the figures the burn-rate projection derives from.
// Now is injected by the caller so projections are deterministic under test.
type BurnRateInput struct {
	ActualCost           float64
	EstimatedCost        float64
	StartDate            time.Time
	Now                  time.Time
	CompletionPercentage float64
}

// BurnRateResult is the daily spend figure and its extrapolation.
type BurnRateResult struct {
	DaysElapsed        int
	BurnRate           float64
	ProjectedTotalCost float64
	// Overrun is true when the projection exceeds the estimate by more
	// than the configured factor and the job is not already complete.
	Overrun bool
}

// ProjectBurnRate computes daily burn rate and extrapolates a total cost.
//
// The projection is a heuristic, not a guarantee: with a known completion
// percentage it scales the spend-to-date linearly to 100%; without one it
// extends the daily rate over a fixed fallback horizon. Outputs are always
// finite; anomalies coerce to 0.
func ProjectBurnRate(in BurnRateInput, th Thresholds) BurnRateResult {
	daysElapsed := int(math.Floor(in.Now.Sub(in.StartDate).Hours() / 24))
	if daysElapsed < 1 {
		daysElapsed = 1
	}

	burnRate := sanitize(in.ActualCost / float64(daysElapsed))

	var projected float64
	if in.CompletionPercentage > 0 {
		projected = burnRate * (100 / in.CompletionPercentage) * float64(daysElapsed)
	} else {
		projected = burnRate * th.FallbackHorizonDays
	}
	projected = sanitize(projected)

	overrun := in.CompletionPercentage < 100 &&
		projected > in.EstimatedCost*th.BurnOverrunFactor

	return BurnRateResult{
		DaysElapsed:        daysElapsed,
		BurnRate:           burnRate,
		ProjectedTotalCost: projected,
		Overrun:            overrun,
	}
}
