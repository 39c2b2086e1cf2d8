package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase/interfaces"
)

var ErrInvalidContractPrice = errors.New("contract price must be greater than zero")

// PopulateResult summarizes a batch contract-price population run.
type PopulateResult struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// IJobUseCase exposes the job-record operations owned by the costing core:
// explicit contract-price edits and batch population from approved
// estimates. Everything else about jobs belongs to the calling application.
type IJobUseCase interface {
	GetJob(ctx context.Context, jobID string) (entities.Job, error)
	UpdateContractPrice(ctx context.Context, jobID string, price float64) (entities.Job, error)
	PopulateContractPrices(ctx context.Context) (PopulateResult, error)
}

type JobUseCase struct {
	jobRepo  interfaces.IJobRepository
	resolver *RevenueResolver
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobRepo interfaces.IJobRepository, resolver *RevenueResolver) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, resolver: resolver}
}

func (u *JobUseCase) GetJob(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

// UpdateContractPrice sets an explicit contract price. The written value is
// authoritative from then on: the revenue resolver stops consulting
// estimates for this job. Store write failures surface unchanged.
func (u *JobUseCase) UpdateContractPrice(ctx context.Context, jobID string, price float64) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if price <= 0 {
		return entities.Job{}, ErrInvalidContractPrice
	}

	updated, err := u.jobRepo.UpdateContractPrice(ctx, jobID, price)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

// PopulateContractPrices walks every job still missing a contract price and
// fills it from the latest approved estimate. Jobs with no matching
// estimate are skipped; write failures are counted and the run continues.
func (u *JobUseCase) PopulateContractPrices(ctx context.Context) (PopulateResult, error) {
	jobs, err := u.jobRepo.ListMissingContractPrice(ctx)
	if err != nil {
		return PopulateResult{}, err
	}

	var res PopulateResult
	for i := range jobs {
		price, degraded := u.resolver.ResolveContractPrice(ctx, jobs[i])
		if degraded {
			res.Failed++
			continue
		}
		if price <= 0 {
			res.Skipped++
			continue
		}
		if _, err := u.jobRepo.UpdateContractPrice(ctx, jobs[i].ID, price); err != nil {
			log.Printf("[jobs][usecase] contract price write failed job_id=%s err=%v", jobs[i].ID, err)
			res.Failed++
			continue
		}
		res.Updated++
	}
	return res, nil
}
