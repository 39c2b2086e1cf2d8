package response

import "math"

// round2 rounds a metric to two decimals for display. Internal computation
// keeps full float64 precision; only the response layer rounds.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
