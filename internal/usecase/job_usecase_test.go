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

func TestJobUseCase_UpdateContractPrice(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.UpdateContractPrice(context.Background(), "", 100)
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		for _, price := range []float64{0, -50} {
			_, err := uc.UpdateContractPrice(context.Background(), "job-1", price)
			if !errors.Is(err, ErrInvalidContractPrice) {
				t.Fatalf("price %v: expected ErrInvalidContractPrice, got %v", price, err)
			}
		}
	})

	t.Run("store write error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		storeErr := errors.New("provisioned throughput exceeded")
		jobs.EXPECT().UpdateContractPrice(gomock.Any(), "job-1", 9500.0).Return(entities.Job{}, storeErr)

		_, err := uc.UpdateContractPrice(context.Background(), "job-1", 9500)
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)

		jobs.EXPECT().UpdateContractPrice(gomock.Any(), "job-1", 9500.0).Return(entities.Job{ID: "job-1", ContractPrice: 9500}, nil)

		job, err := uc.UpdateContractPrice(context.Background(), " job-1 ", 9500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.ContractPrice != 9500 {
			t.Fatalf("unexpected job: %+v", job)
		}
	})
}

func TestJobUseCase_PopulateContractPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewJobUseCase(jobs, NewRevenueResolver(estimates, nil))

	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	jobs.EXPECT().ListMissingContractPrice(gomock.Any()).Return([]entities.Job{
		{ID: "job-1", EstimateID: "est-1"},
		{ID: "job-2", LeadID: "lead-2"},
		{ID: "job-3"}, // no links: skipped without lookup
		{ID: "job-4", EstimateID: "est-4"},
	}, nil)
	estimates.EXPECT().FindApproved(gomock.Any(), "est-1", "").Return([]entities.Estimate{
		{ID: "est-1", TotalAmount: 4200, CreatedAt: created},
	}, nil)
	estimates.EXPECT().FindApproved(gomock.Any(), "", "lead-2").Return([]entities.Estimate{}, nil)
	estimates.EXPECT().FindApproved(gomock.Any(), "est-4", "").Return([]entities.Estimate{
		{ID: "est-4", TotalAmount: 1800, CreatedAt: created},
	}, nil)
	jobs.EXPECT().UpdateContractPrice(gomock.Any(), "job-1", 4200.0).Return(entities.Job{ID: "job-1"}, nil)
	jobs.EXPECT().UpdateContractPrice(gomock.Any(), "job-4", 1800.0).Return(entities.Job{}, errors.New("db"))

	res, err := uc.PopulateContractPrices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Updated != 1 || res.Skipped != 2 || res.Failed != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
