package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"fieldserve_costing/internal/domain/costing"
	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrInvalidEntryID    = errors.New("invalid cost entry id")
	ErrJobNotFound       = errors.New("job not found")
	ErrCostEntryNotFound = errors.New("cost entry not found")
	ErrEntryJobMismatch  = errors.New("cost entry does not belong to job")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidUnitCost   = errors.New("unit cost must be greater than zero")
	ErrEmptyDescription  = errors.New("description must not be empty")
	ErrUnknownCostType   = errors.New("unknown cost type")
	ErrUnknownMarkupType = errors.New("unknown markup type")
)

// CostEntryInput is the caller-supplied portion of a ledger entry. TotalCost
// is always derived here, never accepted.
type CostEntryInput struct {
	CostType    entities.CostType
	Subtype     string
	Description string
	Quantity    float64
	UnitCost    float64
	CostDate    time.Time
	Vendor      string
	MarkupPct   float64
	MarkupType  entities.MarkupType
	ApprovedBy  string
}

// ICostEntryUseCase exposes cost-ledger operations.
//
// Every mutation recomputes the owning job's actual cost from the full
// ledger and commits it to the job record before returning, so a snapshot
// read issued after a mutation always observes the new total.
type ICostEntryUseCase interface {
	Create(ctx context.Context, jobID string, in CostEntryInput) (entities.CostEntry, error)
	Update(ctx context.Context, jobID, entryID string, in CostEntryInput) (entities.CostEntry, error)
	Delete(ctx context.Context, jobID, entryID string) error
	ListByJob(ctx context.Context, jobID string) ([]entities.CostEntry, error)
	Distribution(ctx context.Context, jobID string) (map[entities.CostType]float64, error)
}

type CostEntryUseCase struct {
	ledger  interfaces.ICostLedgerRepository
	jobRepo interfaces.IJobRepository

	// jobLocks serializes mutations per job so a recompute never races a
	// concurrent ledger write for the same job. Different jobs proceed in
	// parallel.
	mu       sync.Mutex
	jobLocks map[string]*sync.Mutex
}

var _ ICostEntryUseCase = (*CostEntryUseCase)(nil)

func NewCostEntryUseCase(ledger interfaces.ICostLedgerRepository, jobRepo interfaces.IJobRepository) *CostEntryUseCase {
	return &CostEntryUseCase{
		ledger:   ledger,
		jobRepo:  jobRepo,
		jobLocks: make(map[string]*sync.Mutex),
	}
}

func (u *CostEntryUseCase) lockJob(jobID string) *sync.Mutex {
	u.mu.Lock()
	l, ok := u.jobLocks[jobID]
	if !ok {
		l = &sync.Mutex{}
		u.jobLocks[jobID] = l
	}
	u.mu.Unlock()
	l.Lock()
	return l
}

func validateEntryInput(in CostEntryInput) error {
	if !in.CostType.Valid() {
		return ErrUnknownCostType
	}
	if strings.TrimSpace(in.Description) == "" {
		return ErrEmptyDescription
	}
	if in.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if in.UnitCost <= 0 {
		return ErrInvalidUnitCost
	}
	if in.MarkupType != "" && in.MarkupType != entities.MarkupTypeFlat && in.MarkupType != entities.MarkupTypeMargin {
		return ErrUnknownMarkupType
	}
	return nil
}

func (u *CostEntryUseCase) Create(ctx context.Context, jobID string, in CostEntryInput) (entities.CostEntry, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.CostEntry{}, ErrInvalidJobID
	}
	if err := validateEntryInput(in); err != nil {
		return entities.CostEntry{}, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.CostEntry{}, err
	}
	if job.ID == "" {
		return entities.CostEntry{}, ErrJobNotFound
	}

	l := u.lockJob(jobID)
	defer l.Unlock()

	now := time.Now().UTC()
	costDate := in.CostDate
	if costDate.IsZero() {
		costDate = now
	}
	e := entities.CostEntry{
		ID:          uuid.NewString(),
		JobID:       jobID,
		CostType:    in.CostType,
		Subtype:     strings.TrimSpace(in.Subtype),
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
		UnitCost:    in.UnitCost,
		TotalCost:   in.Quantity * in.UnitCost,
		CostDate:    costDate,
		Vendor:      strings.TrimSpace(in.Vendor),
		MarkupPct:   in.MarkupPct,
		MarkupType:  in.MarkupType,
		ApprovedBy:  strings.TrimSpace(in.ApprovedBy),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if e.ApprovedBy != "" {
		e.ApprovedAt = &now
	}

	created, err := u.ledger.Create(ctx, e)
	if err != nil {
		return entities.CostEntry{}, err
	}

	if err := u.recomputeActualCost(ctx, jobID); err != nil {
		return entities.CostEntry{}, err
	}
	return created, nil
}

func (u *CostEntryUseCase) Update(ctx context.Context, jobID, entryID string, in CostEntryInput) (entities.CostEntry, error) {
	jobID = strings.TrimSpace(jobID)
	entryID = strings.TrimSpace(entryID)
	if jobID == "" {
		return entities.CostEntry{}, ErrInvalidJobID
	}
	if entryID == "" {
		return entities.CostEntry{}, ErrInvalidEntryID
	}
	if err := validateEntryInput(in); err != nil {
		return entities.CostEntry{}, err
	}

	l := u.lockJob(jobID)
	defer l.Unlock()

	existing, err := u.ledger.GetByID(ctx, entryID)
	if err != nil {
		return entities.CostEntry{}, err
	}
	if existing.ID == "" {
		return entities.CostEntry{}, ErrCostEntryNotFound
	}
	if existing.JobID != jobID {
		return entities.CostEntry{}, ErrEntryJobMismatch
	}

	now := time.Now().UTC()
	existing.CostType = in.CostType
	existing.Subtype = strings.TrimSpace(in.Subtype)
	existing.Description = strings.TrimSpace(in.Description)
	existing.Quantity = in.Quantity
	existing.UnitCost = in.UnitCost
	existing.TotalCost = in.Quantity * in.UnitCost
	if !in.CostDate.IsZero() {
		existing.CostDate = in.CostDate
	}
	existing.Vendor = strings.TrimSpace(in.Vendor)
	existing.MarkupPct = in.MarkupPct
	existing.MarkupType = in.MarkupType
	if ab := strings.TrimSpace(in.ApprovedBy); ab != "" && ab != existing.ApprovedBy {
		existing.ApprovedBy = ab
		existing.ApprovedAt = &now
	}
	existing.UpdatedAt = now

	updated, err := u.ledger.Update(ctx, existing)
	if err != nil {
		return entities.CostEntry{}, err
	}

	if err := u.recomputeActualCost(ctx, jobID); err != nil {
		return entities.CostEntry{}, err
	}
	return updated, nil
}

func (u *CostEntryUseCase) Delete(ctx context.Context, jobID, entryID string) error {
	jobID = strings.TrimSpace(jobID)
	entryID = strings.TrimSpace(entryID)
	if jobID == "" {
		return ErrInvalidJobID
	}
	if entryID == "" {
		return ErrInvalidEntryID
	}

	l := u.lockJob(jobID)
	defer l.Unlock()

	existing, err := u.ledger.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrCostEntryNotFound
	}
	if existing.JobID != jobID {
		return ErrEntryJobMismatch
	}

	if err := u.ledger.Delete(ctx, entryID); err != nil {
		return err
	}
	return u.recomputeActualCost(ctx, jobID)
}

func (u *CostEntryUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.CostEntry, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.ledger.ListByJobID(ctx, jobID)
}

func (u *CostEntryUseCase) Distribution(ctx context.Context, jobID string) (map[entities.CostType]float64, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	entries, err := u.ledger.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return costing.Distribution(entries), nil
}

// recomputeActualCost re-reads the full ledger and commits the sum to the
// job record. Write failures surface to the caller with the store error;
// the ledger mutation itself has already been applied at that point.
func (u *CostEntryUseCase) recomputeActualCost(ctx context.Context, jobID string) error {
	entries, err := u.ledger.ListByJobID(ctx, jobID)
	if err != nil {
		log.Printf("[costs][usecase] ledger re-read failed job_id=%s err=%v", jobID, err)
		return err
	}
	total := costing.SumEntries(entries)
	if _, err := u.jobRepo.UpdateActualCost(ctx, jobID, total); err != nil {
		log.Printf("[costs][usecase] actual cost commit failed job_id=%s total=%.2f err=%v", jobID, total, err)
		return err
	}
	return nil
}
