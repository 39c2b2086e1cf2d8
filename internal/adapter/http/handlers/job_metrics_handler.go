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

// JobMetricsHandler handles HTTP requests for job-cost snapshots.

type JobMetricsHandler struct {
	usecase usecase.IJobMetricsUseCase
}

func NewJobMetricsHandler(uc usecase.IJobMetricsUseCase) *JobMetricsHandler {
	return &JobMetricsHandler{usecase: uc}
}

// GetSnapshot computes and returns the snapshot for one job.
func (h *JobMetricsHandler) GetSnapshot(c *gin.Context) {
	jobID := c.Param("job_id")
	log.Printf("[metrics][handler] snapshot start job_id=%s", jobID)

	snap, err := h.usecase.ComputeSnapshot(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[metrics][handler] snapshot failed job_id=%s err=%v", jobID, err)
		appErr := mapJobMetricsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// BatchSnapshots computes snapshots for a list of jobs. Jobs that fail are
// omitted from the response, so the result may be shorter than the request.
func (h *JobMetricsHandler) BatchSnapshots(c *gin.Context) {
	var payload request.SnapshotBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	jobIDs := payload.ResolveJobIDs()
	log.Printf("[metrics][handler] batch snapshot start jobs=%d", len(jobIDs))

	snaps, err := h.usecase.ComputeSnapshots(c.Request.Context(), jobIDs)
	if err != nil {
		log.Printf("[metrics][handler] batch snapshot failed err=%v", err)
		appErr := mapJobMetricsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshots(snaps))
}

func mapJobMetricsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
