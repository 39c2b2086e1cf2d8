package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldserve_costing/internal/adapter/http/handlers/mocks"
	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobMetricsHandler_GetSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobMetricsUseCase(ctrl)
		h := NewJobMetricsHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/snapshot", h.GetSnapshot)

		now := time.Now().UTC()
		uc.EXPECT().ComputeSnapshot(gomock.Any(), "job-1").Return(entities.JobCostSnapshot{
			JobID:           "job-1",
			Status:          entities.JobStatusInProgress,
			ContractPrice:   10000,
			ActualCost:      7000,
			ProfitMarginPct: 40,
			Grade:           entities.GradeD,
			Alerts:          []entities.Alert{},
			ComputedAt:      now,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/snapshot", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["job_id"] != "job-1" || body["grade"] != "D" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobMetricsUseCase(ctrl)
		h := NewJobMetricsHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/snapshot", h.GetSnapshot)

		uc.EXPECT().ComputeSnapshot(gomock.Any(), "nope").Return(entities.JobCostSnapshot{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/nope/snapshot", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobMetricsUseCase(ctrl)
		h := NewJobMetricsHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/snapshot", h.GetSnapshot)

		uc.EXPECT().ComputeSnapshot(gomock.Any(), "job-1").Return(entities.JobCostSnapshot{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/snapshot", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestJobMetricsHandler_BatchSnapshots(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobMetricsUseCase(ctrl)
		h := NewJobMetricsHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/snapshots", h.BatchSnapshots)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/snapshots", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("failed jobs omitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobMetricsUseCase(ctrl)
		h := NewJobMetricsHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/snapshots", h.BatchSnapshots)

		uc.EXPECT().ComputeSnapshots(gomock.Any(), []string{"job-1", "job-2"}).Return([]entities.JobCostSnapshot{
			{JobID: "job-1", Alerts: []entities.Alert{}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/snapshots", bytes.NewBufferString(`{"job_ids":["job-1"," job-2 "]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["job_id"] != "job-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
