package costing

import "fieldserve_costing/internal/domain/entities"

// Score computes the 0-100 profitability score.
//
// The score starts at 100 and takes three independent additive deductions:
// margin band, cost-variance band (variance as % of estimated cost), and
// labor-variance band (hours). Margin carries the heaviest penalties on
// purpose; the bands are not renormalized against each other.
func Score(profitMarginPct, costVariance, laborVariance, estimatedCost float64) float64 {
	score := 100.0

	switch {
	case profitMarginPct >= 20:
	case profitMarginPct >= 15:
		score -= 10
	case profitMarginPct >= 10:
		score -= 20
	case profitMarginPct >= 5:
		score -= 30
	case profitMarginPct >= 0:
		score -= 40
	default:
		score -= 60
	}

	costVariancePct := 0.0
	if estimatedCost > 0 {
		costVariancePct = costVariance / estimatedCost * 100
	}
	switch {
	case costVariancePct <= 0:
	case costVariancePct <= 5:
		score -= 10
	case costVariancePct <= 10:
		score -= 20
	case costVariancePct <= 15:
		score -= 30
	default:
		score -= 40
	}

	switch {
	case laborVariance <= 0:
	case laborVariance <= 2:
		score -= 5
	case laborVariance <= 5:
		score -= 10
	case laborVariance <= 10:
		score -= 15
	default:
		score -= 25
	}

	return score
}

// GradeFor maps a score to its letter grade. Boundaries are closed at the
// documented thresholds: exactly 90 is still an A.
func GradeFor(score float64) entities.Grade {
	switch {
	case score >= 90:
		return entities.GradeA
	case score >= 80:
		return entities.GradeB
	case score >= 70:
		return entities.GradeC
	case score >= 60:
		return entities.GradeD
	default:
		return entities.GradeF
	}
}
