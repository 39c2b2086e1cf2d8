package costing

import (
	"math"

	"fieldserve_costing/internal/domain/entities"
)

// SumEntries returns the ledger total for a job: the sum of every entry's
// TotalCost. Entries carrying NaN/Inf totals contribute 0 instead of
// poisoning the sum; an empty ledger sums to 0.
func SumEntries(entries []entities.CostEntry) float64 {
	total := 0.0
	for i := range entries {
		v := entries[i].TotalCost
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		total += v
	}
	return total
}

// Distribution returns per-type subtotals for a job's ledger. Every cost
// type appears in the result, zero-valued when absent, so distribution
// views render a stable set of rows.
func Distribution(entries []entities.CostEntry) map[entities.CostType]float64 {
	dist := make(map[entities.CostType]float64, len(entities.CostTypes))
	for _, t := range entities.CostTypes {
		dist[t] = 0
	}
	for i := range entries {
		v := entries[i].TotalCost
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		dist[entries[i].CostType] += v
	}
	return dist
}
