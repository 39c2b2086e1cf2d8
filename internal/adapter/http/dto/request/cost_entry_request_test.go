package request

import (
	"errors"
	"testing"
	"time"
)

func TestCostEntryRequest_ResolveCostDate(t *testing.T) {
	r := CostEntryRequest{CostDate: "2026-02-10T08:30:00Z"}
	ts, err := r.ResolveCostDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("expected %v, got %v", want, ts)
	}

	r2 := CostEntryRequest{CostDate: "2026-02-10"}
	ts, err = r2.ResolveCostDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Year() != 2026 || ts.Month() != time.February || ts.Day() != 10 {
		t.Fatalf("unexpected date: %v", ts)
	}

	r3 := CostEntryRequest{CostDate: "   "}
	ts, err = r3.ResolveCostDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ts.IsZero() {
		t.Fatalf("expected zero time, got %v", ts)
	}

	r4 := CostEntryRequest{CostDate: "10/02/2026"}
	_, err = r4.ResolveCostDate()
	if !errors.Is(err, ErrInvalidCostDate) {
		t.Fatalf("expected ErrInvalidCostDate, got %v", err)
	}
}

func TestSnapshotBatchRequest_ResolveJobIDs(t *testing.T) {
	r := SnapshotBatchRequest{JobIDs: []string{" job-1 ", "", "job-2", "   "}}
	got := r.ResolveJobIDs()
	if len(got) != 2 || got[0] != "job-1" || got[1] != "job-2" {
		t.Fatalf("unexpected ids: %v", got)
	}

	r2 := SnapshotBatchRequest{}
	if got := r2.ResolveJobIDs(); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}
