package costing

import (
	"math"
	"testing"
	"time"
)

func TestProjectBurnRate(t *testing.T) {
	th := DefaultThresholds()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("daily rate over elapsed days", func(t *testing.T) {
		res := ProjectBurnRate(BurnRateInput{
			ActualCost:           1000,
			EstimatedCost:        5000,
			StartDate:            now.AddDate(0, 0, -10),
			Now:                  now,
			CompletionPercentage: 50,
		}, th)
		if res.DaysElapsed != 10 {
			t.Fatalf("days elapsed: want 10, got %d", res.DaysElapsed)
		}
		if res.BurnRate != 100 {
			t.Fatalf("burn rate: want 100, got %v", res.BurnRate)
		}
		// 100 * (100/50) * 10 = 2000
		if res.ProjectedTotalCost != 2000 {
			t.Fatalf("projection: want 2000, got %v", res.ProjectedTotalCost)
		}
		if res.Overrun {
			t.Fatalf("2000 projected against 5000 estimate must not flag overrun")
		}
	})

	t.Run("elapsed days floor at one", func(t *testing.T) {
		res := ProjectBurnRate(BurnRateInput{
			ActualCost: 300,
			StartDate:  now.Add(2 * time.Hour), // start in the future
			Now:        now,
		}, th)
		if res.DaysElapsed != 1 {
			t.Fatalf("days elapsed: want 1, got %d", res.DaysElapsed)
		}
		if res.BurnRate != 300 {
			t.Fatalf("burn rate: want 300, got %v", res.BurnRate)
		}
	})

	t.Run("fallback horizon when completion unknown", func(t *testing.T) {
		res := ProjectBurnRate(BurnRateInput{
			ActualCost:    600,
			EstimatedCost: 10000,
			StartDate:     now.AddDate(0, 0, -3),
			Now:           now,
		}, th)
		// burn 200/day * 30-day horizon = 6000
		if res.ProjectedTotalCost != 6000 {
			t.Fatalf("projection: want 6000, got %v", res.ProjectedTotalCost)
		}
	})

	t.Run("overrun above factor with incomplete job", func(t *testing.T) {
		res := ProjectBurnRate(BurnRateInput{
			ActualCost:           4000,
			EstimatedCost:        5000,
			StartDate:            now.AddDate(0, 0, -10),
			Now:                  now,
			CompletionPercentage: 50,
		}, th)
		// 400 * 2 * 10 = 8000 > 5000*1.15
		if !res.Overrun {
			t.Fatalf("expected overrun, projection %v", res.ProjectedTotalCost)
		}
	})

	t.Run("no overrun once complete", func(t *testing.T) {
		res := ProjectBurnRate(BurnRateInput{
			ActualCost:           9000,
			EstimatedCost:        5000,
			StartDate:            now.AddDate(0, 0, -10),
			Now:                  now,
			CompletionPercentage: 100,
		}, th)
		if res.Overrun {
			t.Fatalf("completed job must not flag burn overrun")
		}
	})

	t.Run("non-finite cost coerces", func(t *testing.T) {
		res := ProjectBurnRate(BurnRateInput{
			ActualCost: math.NaN(),
			StartDate:  now.AddDate(0, 0, -5),
			Now:        now,
		}, th)
		if res.BurnRate != 0 || res.ProjectedTotalCost != 0 {
			t.Fatalf("expected coerced zeros, got rate=%v projected=%v", res.BurnRate, res.ProjectedTotalCost)
		}
	})
}
