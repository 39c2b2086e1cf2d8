package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"fieldserve_costing/internal/domain/costing"
	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase/interfaces"
)

// IJobMetricsUseCase computes job-cost snapshots.
//
// A snapshot is a pure function of the stores' state at computation time:
// recomputed on every request, never persisted. The only hard failures are
// an invalid/unknown job id; every collaborator read failure degrades to a
// documented default and is recorded on the snapshot instead.
type IJobMetricsUseCase interface {
	ComputeSnapshot(ctx context.Context, jobID string) (entities.JobCostSnapshot, error)
	ComputeSnapshots(ctx context.Context, jobIDs []string) ([]entities.JobCostSnapshot, error)
}

type JobMetricsUseCase struct {
	jobRepo  interfaces.IJobRepository
	ledger   interfaces.ICostLedgerRepository
	resolver *RevenueResolver

	thresholds costing.Thresholds
	nowFn      func() time.Time
}

var _ IJobMetricsUseCase = (*JobMetricsUseCase)(nil)

// batchWorkers bounds the per-request fan-out of batch snapshot computation.
const batchWorkers = 8

func NewJobMetricsUseCase(
	jobRepo interfaces.IJobRepository,
	ledger interfaces.ICostLedgerRepository,
	resolver *RevenueResolver,
	thresholds costing.Thresholds,
	nowFn func() time.Time,
) *JobMetricsUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &JobMetricsUseCase{
		jobRepo:    jobRepo,
		ledger:     ledger,
		resolver:   resolver,
		thresholds: thresholds,
		nowFn:      nowFn,
	}
}

func (u *JobMetricsUseCase) ComputeSnapshot(ctx context.Context, jobID string) (entities.JobCostSnapshot, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.JobCostSnapshot{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.JobCostSnapshot{}, err
	}
	if job.ID == "" {
		return entities.JobCostSnapshot{}, ErrJobNotFound
	}

	now := u.nowFn().UTC()
	degraded := make([]string, 0, 3)

	// Ledger aggregation; a failed read falls back to the job's stored
	// actual cost.
	actualCost := job.ActualCost
	var distribution map[entities.CostType]float64
	entries, err := u.ledger.ListByJobID(ctx, jobID)
	if err != nil {
		log.Printf("[metrics][usecase] ledger read failed job_id=%s err=%v", jobID, err)
		degraded = append(degraded, entities.DegradedLedger)
		distribution = costing.Distribution(nil)
	} else {
		actualCost = costing.SumEntries(entries)
		distribution = costing.Distribution(entries)
	}

	contractPrice, estDegraded := u.resolver.ResolveContractPrice(ctx, job)
	if estDegraded {
		degraded = append(degraded, entities.DegradedEstimates)
	}
	totalInvoiced, invDegraded := u.resolver.ResolveTotalInvoiced(ctx, jobID)
	if invDegraded {
		degraded = append(degraded, entities.DegradedInvoices)
	}

	variance := costing.CalculateVariance(costing.VarianceInput{
		ContractPrice:  contractPrice,
		EstimatedCost:  job.EstimatedCost,
		ActualCost:     actualCost,
		EstimatedHours: job.EstimatedHours,
		ActualHours:    job.ActualHours,
		TotalInvoiced:  totalInvoiced,
	})

	startDate := job.StartDate
	if startDate.IsZero() {
		startDate = now
	}
	burn := costing.ProjectBurnRate(costing.BurnRateInput{
		ActualCost:           actualCost,
		EstimatedCost:        job.EstimatedCost,
		StartDate:            startDate,
		Now:                  now,
		CompletionPercentage: job.CompletionPercentage,
	}, u.thresholds)

	score := costing.Score(variance.ProfitMarginPct, variance.CostVariance, variance.LaborVariance, job.EstimatedCost)

	alerts := costing.EvaluateAlerts(costing.AlertInput{
		ContractPrice:      contractPrice,
		EstimatedCost:      job.EstimatedCost,
		CostVariance:       variance.CostVariance,
		ProfitMarginPct:    variance.ProfitMarginPct,
		ProjectedTotalCost: burn.ProjectedTotalCost,
		BurnOverrun:        burn.Overrun,
	}, u.thresholds)

	snap := entities.JobCostSnapshot{
		JobID:    job.ID,
		JobTitle: job.Title,
		Status:   job.Status,

		ContractPrice:  contractPrice,
		TotalInvoiced:  totalInvoiced,
		EstimatedCost:  job.EstimatedCost,
		ActualCost:     actualCost,
		EstimatedHours: job.EstimatedHours,
		ActualHours:    job.ActualHours,
		Distribution:   distribution,

		ExpectedProfit:  variance.ExpectedProfit,
		ActualProfit:    variance.ActualProfit,
		ProfitVariance:  variance.ProfitVariance,
		GrossProfit:     variance.GrossProfit,
		ProfitMarginPct: variance.ProfitMarginPct,
		CostVariance:    variance.CostVariance,
		LaborVariance:   variance.LaborVariance,
		IsProfitable:    variance.IsProfitable,

		DaysElapsed:        burn.DaysElapsed,
		BurnRate:           burn.BurnRate,
		ProjectedTotalCost: burn.ProjectedTotalCost,

		Score: score,
		Grade: costing.GradeFor(score),

		Alerts:     alerts,
		ComputedAt: now,
	}
	if len(degraded) > 0 {
		snap.Degraded = degraded
	}
	return snap, nil
}

// ComputeSnapshots computes snapshots for several jobs with a bounded worker
// pool. Jobs are independent: a failure on one is logged and omitted from
// the result, never aborting the batch. Successful snapshots come back in
// input order.
func (u *JobMetricsUseCase) ComputeSnapshots(ctx context.Context, jobIDs []string) ([]entities.JobCostSnapshot, error) {
	if len(jobIDs) == 0 {
		return []entities.JobCostSnapshot{}, nil
	}

	workers := batchWorkers
	if workers > len(jobIDs) {
		workers = len(jobIDs)
	}

	work := make(chan int, len(jobIDs))
	results := make([]*entities.JobCostSnapshot, len(jobIDs))
	var wg sync.WaitGroup

	for i := range jobIDs {
		work <- i
	}
	close(work)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				snap, err := u.ComputeSnapshot(ctx, jobIDs[idx])
				if err != nil {
					log.Printf("[metrics][usecase] snapshot failed job_id=%s err=%v", jobIDs[idx], err)
					continue
				}
				results[idx] = &snap
			}
		}()
	}
	wg.Wait()

	out := make([]entities.JobCostSnapshot, 0, len(jobIDs))
	for _, s := range results {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}
