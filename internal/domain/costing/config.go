package costing

// Thresholds holds the hand-tuned constants used by projection and alerting.
//
// The overrun factor and fallback horizon carry no derivation beyond field
// experience; they are kept as named, overridable configuration rather than
// recomputed.
type Thresholds struct {
	// BurnOverrunFactor multiplies estimated cost; a projection above the
	// product raises the burn-rate alert.
	BurnOverrunFactor float64
	// FallbackHorizonDays is the projection horizon used when a job's
	// completion percentage is unknown.
	FallbackHorizonDays float64
	// CostOverrunAlertPct is the cost variance (as % of estimated cost)
	// above which the cost-overrun alert fires.
	CostOverrunAlertPct float64
	// LowMarginAlertPct is the margin below which (while non-negative) the
	// low-margin alert fires.
	LowMarginAlertPct float64
}

// DefaultThresholds returns the stock tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BurnOverrunFactor:   1.15,
		FallbackHorizonDays: 30,
		CostOverrunAlertPct: 10,
		LowMarginAlertPct:   5,
	}
}
