package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio_pricing/internal/adapter/http/handlers/mocks"
	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/estimates", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank answers normalize to unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/estimates", h.Create)

		uc.EXPECT().Create(gomock.Any(), entities.BuildSpec{
			Platform:     "web",
			AuthLevel:    entities.Unknown,
			Modules:      []string{"crud-core"},
			Quality:      entities.Unknown,
			Integrations: entities.Unknown,
			Urgency:      entities.Unknown,
			Iteration:    entities.Unknown,
		}).Return(entities.Estimate{ID: "est-1", PriceMid: 9000}, nil)

		req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewBufferString(`{"platform":"Web","modules":["crud-core"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("unknown module", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/estimates", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrUnknownModuleID)

		req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewBufferString(`{"modules":["time-machine"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "UNKNOWN_MODULE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/estimates", h.Create)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{
			ID:         "est-1",
			PriceMin:   9000,
			PriceMid:   11500,
			PriceMax:   14000,
			DaysMin:    12,
			DaysMax:    20,
			Confidence: 0.78,
			Status:     entities.EstimateStatusDraft,
			CreatedAt:  now,
			UpdatedAt:  now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewBufferString(`{"platform":"web","auth_level":"magic-link","modules":["crud-core","ai-chat"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" || body["price_mid"] != float64(11500) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/estimates/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/estimates/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/estimates/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusDraft}, nil)

		req := httptest.NewRequest(http.MethodGet, "/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidEstimateID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrUnknownModuleID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
