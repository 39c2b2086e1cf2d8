package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fieldserve_costing/internal/adapter/http/dto/request"
	response "fieldserve_costing/internal/adapter/http/dto/response"
	"fieldserve_costing/internal/usecase"
	"fieldserve_costing/pkg"

	"github.com/gin-gonic/gin"
)

// JobHandler handles HTTP requests for job records owned by the costing core.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// GetJob returns the raw job record.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := h.usecase.GetJob(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateContractPrice sets an explicit contract price on a job.
func (h *JobHandler) UpdateContractPrice(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.ContractPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[jobs][handler] contract price update start job_id=%s price=%.2f", jobID, payload.ContractPrice)

	job, err := h.usecase.UpdateContractPrice(c.Request.Context(), jobID, payload.ContractPrice)
	if err != nil {
		log.Printf("[jobs][handler] contract price update failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// PopulateContractPrices fills missing contract prices from approved
// estimates across all jobs.
func (h *JobHandler) PopulateContractPrices(c *gin.Context) {
	log.Printf("[jobs][handler] contract price populate start")

	res, err := h.usecase.PopulateContractPrices(c.Request.Context())
	if err != nil {
		log.Printf("[jobs][handler] contract price populate failed err=%v", err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[jobs][handler] contract price populate done updated=%d skipped=%d failed=%d", res.Updated, res.Skipped, res.Failed)

	c.JSON(http.StatusOK, res)
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidContractPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
