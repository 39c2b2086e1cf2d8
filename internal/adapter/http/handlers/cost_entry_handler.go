package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fieldserve_costing/internal/adapter/http/dto/request"
	response "fieldserve_costing/internal/adapter/http/dto/response"
	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase"
	"fieldserve_costing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCostEntryPayload = pkg.NewDomainErrorSimple("INVALID_COST_ENTRY_INPUT", "Invalid cost entry payload", http.StatusBadRequest)
)

// CostEntryHandler handles HTTP requests for the per-job cost ledger.

type CostEntryHandler struct {
	usecase usecase.ICostEntryUseCase
}

func NewCostEntryHandler(uc usecase.ICostEntryUseCase) *CostEntryHandler {
	return &CostEntryHandler{usecase: uc}
}

// CreateCostEntry records a new ledger entry for a job.
func (h *CostEntryHandler) CreateCostEntry(c *gin.Context) {
	jobID := c.Param("job_id")
	in, ok := bindCostEntryInput(c)
	if !ok {
		return
	}
	log.Printf("[costs][handler] create start job_id=%s cost_type=%s", jobID, in.CostType)

	created, err := h.usecase.Create(c.Request.Context(), jobID, in)
	if err != nil {
		log.Printf("[costs][handler] create failed job_id=%s err=%v", jobID, err)
		appErr := mapCostEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[costs][handler] create success job_id=%s cost_id=%s total=%.2f", jobID, created.ID, created.TotalCost)

	c.JSON(http.StatusCreated, response.FromCostEntry(created))
}

// UpdateCostEntry replaces an existing ledger entry.
func (h *CostEntryHandler) UpdateCostEntry(c *gin.Context) {
	jobID := c.Param("job_id")
	costID := c.Param("cost_id")
	in, ok := bindCostEntryInput(c)
	if !ok {
		return
	}
	log.Printf("[costs][handler] update start job_id=%s cost_id=%s", jobID, costID)

	updated, err := h.usecase.Update(c.Request.Context(), jobID, costID, in)
	if err != nil {
		log.Printf("[costs][handler] update failed job_id=%s cost_id=%s err=%v", jobID, costID, err)
		appErr := mapCostEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostEntry(updated))
}

// DeleteCostEntry removes a ledger entry.
func (h *CostEntryHandler) DeleteCostEntry(c *gin.Context) {
	jobID := c.Param("job_id")
	costID := c.Param("cost_id")
	log.Printf("[costs][handler] delete start job_id=%s cost_id=%s", jobID, costID)

	if err := h.usecase.Delete(c.Request.Context(), jobID, costID); err != nil {
		log.Printf("[costs][handler] delete failed job_id=%s cost_id=%s err=%v", jobID, costID, err)
		appErr := mapCostEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCostEntries returns every ledger entry for a job.
func (h *CostEntryHandler) ListCostEntries(c *gin.Context) {
	jobID := c.Param("job_id")

	entries, err := h.usecase.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[costs][handler] list failed job_id=%s err=%v", jobID, err)
		appErr := mapCostEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostEntries(entries))
}

// GetDistribution returns the per-type cost breakdown for a job.
func (h *CostEntryHandler) GetDistribution(c *gin.Context) {
	jobID := c.Param("job_id")

	dist, err := h.usecase.Distribution(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[costs][handler] distribution failed job_id=%s err=%v", jobID, err)
		appErr := mapCostEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDistribution(jobID, dist))
}

func bindCostEntryInput(c *gin.Context) (usecase.CostEntryInput, bool) {
	var payload request.CostEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostEntryPayload.HTTPStatus, errInvalidCostEntryPayload.ToHTTPError())
		return usecase.CostEntryInput{}, false
	}

	costDate, err := payload.ResolveCostDate()
	if err != nil {
		c.JSON(errInvalidCostEntryPayload.HTTPStatus, errInvalidCostEntryPayload.ToHTTPError())
		return usecase.CostEntryInput{}, false
	}

	return usecase.CostEntryInput{
		CostType:    entities.CostType(payload.CostType),
		Subtype:     payload.Subtype,
		Description: payload.Description,
		Quantity:    payload.Quantity,
		UnitCost:    payload.UnitCost,
		CostDate:    costDate,
		Vendor:      payload.Vendor,
		MarkupPct:   payload.MarkupPct,
		MarkupType:  entities.MarkupType(payload.MarkupType),
		ApprovedBy:  payload.ApprovedBy,
	}, true
}

func mapCostEntryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidEntryID),
		errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidUnitCost),
		errors.Is(err, usecase.ErrEmptyDescription), errors.Is(err, usecase.ErrUnknownCostType),
		errors.Is(err, usecase.ErrUnknownMarkupType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCostEntryNotFound), errors.Is(err, usecase.ErrEntryJobMismatch):
		return pkg.NewDomainErrorSimple("COST_ENTRY_NOT_FOUND", "Cost entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
