package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldserve_costing/internal/domain/entities"
	mock_interfaces "fieldserve_costing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCostEntryUseCase_Create(t *testing.T) {
	validInput := CostEntryInput{
		CostType:    entities.CostTypeMaterial,
		Description: "copper pipe",
		Quantity:    4,
		UnitCost:    12.5,
		Vendor:      "City Plumbing Supply",
	}

	t.Run("invalid job id", func(t *testing.T) {
		uc := NewCostEntryUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "  ", validInput)
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("input validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(in *CostEntryInput)
			want   error
		}{
			{"unknown cost type", func(in *CostEntryInput) { in.CostType = "fuel" }, ErrUnknownCostType},
			{"empty description", func(in *CostEntryInput) { in.Description = "   " }, ErrEmptyDescription},
			{"zero quantity", func(in *CostEntryInput) { in.Quantity = 0 }, ErrInvalidQuantity},
			{"negative quantity", func(in *CostEntryInput) { in.Quantity = -1 }, ErrInvalidQuantity},
			{"zero unit cost", func(in *CostEntryInput) { in.UnitCost = 0 }, ErrInvalidUnitCost},
			{"unknown markup type", func(in *CostEntryInput) { in.MarkupType = "percent" }, ErrUnknownMarkupType},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewCostEntryUseCase(nil, nil)
				in := validInput
				tc.mutate(&in)
				_, err := uc.Create(context.Background(), "job-1", in)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewCostEntryUseCase(nil, jobs)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.Create(context.Background(), "job-1", validInput)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("create derives total and commits recomputed actual cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockICostLedgerRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewCostEntryUseCase(ledger, jobs)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)

		var stored entities.CostEntry
		ledger.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CostEntry{})).DoAndReturn(
			func(_ context.Context, e entities.CostEntry) (entities.CostEntry, error) {
				if e.ID == "" || e.JobID != "job-1" {
					t.Fatalf("unexpected entry identity: %+v", e)
				}
				if e.TotalCost != 50 {
					t.Fatalf("expected derived total 50, got %v", e.TotalCost)
				}
				if e.CreatedAt.IsZero() || e.CostDate.IsZero() {
					t.Fatalf("expected timestamps")
				}
				stored = e
				return e, nil
			},
		)
		ledger.EXPECT().ListByJobID(gomock.Any(), "job-1").DoAndReturn(
			func(_ context.Context, _ string) ([]entities.CostEntry, error) {
				return []entities.CostEntry{stored, {JobID: "job-1", TotalCost: 100}}, nil
			},
		)
		jobs.EXPECT().UpdateActualCost(gomock.Any(), "job-1", 150.0).Return(entities.Job{ID: "job-1", ActualCost: 150}, nil)

		created, err := uc.Create(context.Background(), "job-1", validInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.TotalCost != 50 {
			t.Fatalf("expected total 50, got %v", created.TotalCost)
		}
	})

	t.Run("actual cost write failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockICostLedgerRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewCostEntryUseCase(ledger, jobs)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CostEntry) (entities.CostEntry, error) { return e, nil },
		)
		ledger.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.CostEntry{}, nil)
		storeErr := errors.New("conditional check failed")
		jobs.EXPECT().UpdateActualCost(gomock.Any(), "job-1", 0.0).Return(entities.Job{}, storeErr)

		_, err := uc.Create(context.Background(), "job-1", validInput)
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error to surface, got %v", err)
		}
	})
}

func TestCostEntryUseCase_Update(t *testing.T) {
	input := CostEntryInput{
		CostType:    entities.CostTypeLabor,
		Description: "crew hours",
		Quantity:    8,
		UnitCost:    45,
	}

	t.Run("entry not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockICostLedgerRepository(ctrl)
		uc := NewCostEntryUseCase(ledger, nil)

		ledger.EXPECT().GetByID(gomock.Any(), "ce-1").Return(entities.CostEntry{}, nil)

		_, err := uc.Update(context.Background(), "job-1", "ce-1", input)
		if !errors.Is(err, ErrCostEntryNotFound) {
			t.Fatalf("expected ErrCostEntryNotFound, got %v", err)
		}
	})

	t.Run("entry belongs to another job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockICostLedgerRepository(ctrl)
		uc := NewCostEntryUseCase(ledger, nil)

		ledger.EXPECT().GetByID(gomock.Any(), "ce-1").Return(entities.CostEntry{ID: "ce-1", JobID: "job-2"}, nil)

		_, err := uc.Update(context.Background(), "job-1", "ce-1", input)
		if !errors.Is(err, ErrEntryJobMismatch) {
			t.Fatalf("expected ErrEntryJobMismatch, got %v", err)
		}
	})

	t.Run("update rederives total and recommits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockICostLedgerRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewCostEntryUseCase(ledger, jobs)

		existing := entities.CostEntry{
			ID: "ce-1", JobID: "job-1", CostType: entities.CostTypeMaterial,
			Description: "old", Quantity: 1, UnitCost: 10, TotalCost: 10,
			CostDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		}
		ledger.EXPECT().GetByID(gomock.Any(), "ce-1").Return(existing, nil)
		ledger.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.CostEntry) (entities.CostEntry, error) {
				if e.TotalCost != 360 {
					t.Fatalf("expected rederived total 360, got %v", e.TotalCost)
				}
				if e.CostType != entities.CostTypeLabor {
					t.Fatalf("expected type update, got %s", e.CostType)
				}
				return e, nil
			},
		)
		ledger.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.CostEntry{{TotalCost: 360}}, nil)
		jobs.EXPECT().UpdateActualCost(gomock.Any(), "job-1", 360.0).Return(entities.Job{ID: "job-1"}, nil)

		updated, err := uc.Update(context.Background(), "job-1", "ce-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.TotalCost != 360 {
			t.Fatalf("expected 360, got %v", updated.TotalCost)
		}
	})
}

func TestCostEntryUseCase_Delete(t *testing.T) {
	t.Run("delete recomputes remaining total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockICostLedgerRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewCostEntryUseCase(ledger, jobs)

		ledger.EXPECT().GetByID(gomock.Any(), "ce-1").Return(entities.CostEntry{ID: "ce-1", JobID: "job-1"}, nil)
		ledger.EXPECT().Delete(gomock.Any(), "ce-1").Return(nil)
		ledger.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.CostEntry{{TotalCost: 75}}, nil)
		jobs.EXPECT().UpdateActualCost(gomock.Any(), "job-1", 75.0).Return(entities.Job{ID: "job-1"}, nil)

		if err := uc.Delete(context.Background(), "job-1", "ce-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ledger delete error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockICostLedgerRepository(ctrl)
		uc := NewCostEntryUseCase(ledger, nil)

		ledger.EXPECT().GetByID(gomock.Any(), "ce-1").Return(entities.CostEntry{ID: "ce-1", JobID: "job-1"}, nil)
		ledger.EXPECT().Delete(gomock.Any(), "ce-1").Return(errors.New("db"))

		err := uc.Delete(context.Background(), "job-1", "ce-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCostEntryUseCase_Distribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ledger := mock_interfaces.NewMockICostLedgerRepository(ctrl)
	uc := NewCostEntryUseCase(ledger, nil)

	ledger.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.CostEntry{
		{CostType: entities.CostTypeLabor, TotalCost: 200},
		{CostType: entities.CostTypeLabor, TotalCost: 100},
		{CostType: entities.CostTypeSubcontractor, TotalCost: 500},
	}, nil)

	dist, err := uc.Distribution(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist[entities.CostTypeLabor] != 300 || dist[entities.CostTypeSubcontractor] != 500 {
		t.Fatalf("unexpected distribution: %v", dist)
	}
	if dist[entities.CostTypeOverhead] != 0 {
		t.Fatalf("expected zero bucket for overhead, got %v", dist[entities.CostTypeOverhead])
	}
}
