package costing

import (
	"math"
	"testing"

	"fieldserve_costing/internal/domain/entities"
)

func TestSumEntries(t *testing.T) {
	t.Run("empty ledger sums to zero", func(t *testing.T) {
		if got := SumEntries(nil); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
		if got := SumEntries([]entities.CostEntry{}); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("sums totals", func(t *testing.T) {
		entries := []entities.CostEntry{
			{CostType: entities.CostTypeLabor, TotalCost: 1200.50},
			{CostType: entities.CostTypeMaterial, TotalCost: 799.50},
			{CostType: entities.CostTypeOther, TotalCost: 1000},
		}
		if got := SumEntries(entries); got != 3000 {
			t.Fatalf("expected 3000, got %v", got)
		}
	})

	t.Run("non-finite totals contribute zero", func(t *testing.T) {
		entries := []entities.CostEntry{
			{TotalCost: 100},
			{TotalCost: math.NaN()},
			{TotalCost: math.Inf(1)},
			{TotalCost: math.Inf(-1)},
			{TotalCost: 50},
		}
		got := SumEntries(entries)
		if got != 150 {
			t.Fatalf("expected 150, got %v", got)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("sum must be finite, got %v", got)
		}
	})
}

func TestDistribution(t *testing.T) {
	t.Run("all types present even when empty", func(t *testing.T) {
		dist := Distribution(nil)
		if len(dist) != len(entities.CostTypes) {
			t.Fatalf("expected %d buckets, got %d", len(entities.CostTypes), len(dist))
		}
		for _, ct := range entities.CostTypes {
			if v, ok := dist[ct]; !ok || v != 0 {
				t.Fatalf("expected zero bucket for %s, got %v (present=%v)", ct, v, ok)
			}
		}
	})

	t.Run("subtotals by type", func(t *testing.T) {
		entries := []entities.CostEntry{
			{CostType: entities.CostTypeLabor, TotalCost: 100},
			{CostType: entities.CostTypeLabor, TotalCost: 250},
			{CostType: entities.CostTypeMaterial, TotalCost: 75},
			{CostType: entities.CostTypeEquipment, TotalCost: math.NaN()},
		}
		dist := Distribution(entries)
		if dist[entities.CostTypeLabor] != 350 {
			t.Fatalf("labor subtotal: expected 350, got %v", dist[entities.CostTypeLabor])
		}
		if dist[entities.CostTypeMaterial] != 75 {
			t.Fatalf("material subtotal: expected 75, got %v", dist[entities.CostTypeMaterial])
		}
		if dist[entities.CostTypeEquipment] != 0 {
			t.Fatalf("NaN entry must contribute 0, got %v", dist[entities.CostTypeEquipment])
		}
	})
}
