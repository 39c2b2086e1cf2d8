package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldserve_costing/internal/adapter/http/handlers/mocks"
	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCostEntryHandler_CreateCostEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostEntryUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/costs", h.CreateCostEntry)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/costs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid cost date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostEntryUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/costs", h.CreateCostEntry)

		body := `{"cost_type":"labor","description":"Crew time","quantity":2,"unit_cost":50,"cost_date":"02/10/2026"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/costs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown cost type mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostEntryUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/costs", h.CreateCostEntry)

		uc.EXPECT().Create(gomock.Any(), "job-1", gomock.Any()).Return(entities.CostEntry{}, usecase.ErrUnknownCostType)

		body := `{"cost_type":"fuel","description":"Diesel","quantity":1,"unit_cost":80}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/costs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostEntryUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/costs", h.CreateCostEntry)

		uc.EXPECT().Create(gomock.Any(), "nope", gomock.Any()).Return(entities.CostEntry{}, usecase.ErrJobNotFound)

		body := `{"cost_type":"labor","description":"Crew time","quantity":2,"unit_cost":50}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/nope/costs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostEntryUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/costs", h.CreateCostEntry)

		uc.EXPECT().Create(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ any, jobID string, in usecase.CostEntryInput) (entities.CostEntry, error) {
				if in.CostType != entities.CostTypeLabor || in.Quantity != 2 || in.UnitCost != 50 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.CostEntry{ID: "ce-1", JobID: jobID, CostType: in.CostType, Quantity: in.Quantity, UnitCost: in.UnitCost, TotalCost: 100}, nil
			})

		body := `{"cost_type":"labor","description":"Crew time","quantity":2,"unit_cost":50}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/costs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["id"] != "ce-1" || res["total_cost"] != 100.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCostEntryHandler_DeleteCostEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostEntryUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.DELETE("/v1/jobs/:job_id/costs/:cost_id", h.DeleteCostEntry)

		uc.EXPECT().Delete(gomock.Any(), "job-1", "ce-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1/costs/ce-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("entry of another job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostEntryUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.DELETE("/v1/jobs/:job_id/costs/:cost_id", h.DeleteCostEntry)

		uc.EXPECT().Delete(gomock.Any(), "job-1", "ce-9").Return(usecase.ErrEntryJobMismatch)

		req := httptest.NewRequest(http.MethodDelete, "/v1/jobs/job-1/costs/ce-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCostEntryHandler_GetDistribution(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostEntryUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/costs/distribution", h.GetDistribution)

		uc.EXPECT().Distribution(gomock.Any(), "job-1").Return(map[entities.CostType]float64{
			entities.CostTypeLabor:    120,
			entities.CostTypeMaterial: 0,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/costs/distribution", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res struct {
			JobID        string             `json:"job_id"`
			Distribution map[string]float64 `json:"distribution"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.JobID != "job-1" || res.Distribution["labor"] != 120 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapCostEntryError(t *testing.T) {
	if got := mapCostEntryError(usecase.ErrInvalidQuantity); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCostEntryError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCostEntryError(usecase.ErrCostEntryNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCostEntryError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
