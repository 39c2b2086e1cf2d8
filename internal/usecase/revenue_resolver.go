package usecase

import (
	"context"
	"log"
	"math"

	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase/interfaces"
)

// RevenueResolver determines the authoritative contract price and the total
// paid-invoice amount for a job.
//
// Lookup failures never propagate: the unresolved figure defaults to 0 and
// the caller is told the result is degraded, so snapshot computation always
// proceeds.
type RevenueResolver struct {
	estimateRepo interfaces.IEstimateRepository
	invoiceRepo  interfaces.IInvoiceRepository
}

func NewRevenueResolver(estimateRepo interfaces.IEstimateRepository, invoiceRepo interfaces.IInvoiceRepository) *RevenueResolver {
	return &RevenueResolver{estimateRepo: estimateRepo, invoiceRepo: invoiceRepo}
}

// ResolveContractPrice returns the contract price for a job.
//
// Precedence:
//  1. An explicit non-zero price on the job is authoritative.
//  2. Otherwise the most recently created approved estimate matching the
//     job's estimate or lead link supplies its total. Equal creation
//     timestamps break by lexically greatest estimate id, which keeps the
//     pick deterministic.
//  3. No match leaves the price at 0, which downstream raises the
//     "contract price not set" alert.
func (r *RevenueResolver) ResolveContractPrice(ctx context.Context, job entities.Job) (price float64, degraded bool) {
	if job.ContractPrice > 0 {
		return job.ContractPrice, false
	}
	if job.EstimateID == "" && job.LeadID == "" {
		return 0, false
	}

	matches, err := r.estimateRepo.FindApproved(ctx, job.EstimateID, job.LeadID)
	if err != nil {
		log.Printf("[revenue][usecase] estimate lookup failed job_id=%s err=%v", job.ID, err)
		return 0, true
	}

	var best *entities.Estimate
	for i := range matches {
		e := &matches[i]
		if best == nil ||
			e.CreatedAt.After(best.CreatedAt) ||
			(e.CreatedAt.Equal(best.CreatedAt) && e.ID > best.ID) {
			best = e
		}
	}
	if best == nil || best.TotalAmount <= 0 {
		return 0, false
	}
	return best.TotalAmount, false
}

// ResolveTotalInvoiced sums the totals of the job's paid invoices.
// Non-finite amounts contribute 0.
func (r *RevenueResolver) ResolveTotalInvoiced(ctx context.Context, jobID string) (total float64, degraded bool) {
	invoices, err := r.invoiceRepo.ListPaidByJobID(ctx, jobID)
	if err != nil {
		log.Printf("[revenue][usecase] invoice lookup failed job_id=%s err=%v", jobID, err)
		return 0, true
	}
	for i := range invoices {
		v := invoices[i].TotalAmount
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		total += v
	}
	return total, false
}
