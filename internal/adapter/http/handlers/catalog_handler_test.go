package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio_pricing/internal/adapter/http/handlers/mocks"
	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_PutModule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/admin/catalog/modules/:id", h.PutModule)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/catalog/modules/crud-core", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown dependency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/admin/catalog/modules/:id", h.PutModule)

		uc.EXPECT().UpsertModule(gomock.Any(), gomock.Any()).Return(entities.CatalogModule{}, usecase.ErrUnknownDependency)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/catalog/modules/ai-chat", bytes.NewBufferString(`{"name":"AI chat","category":"intelligence","base_hours":30,"dependencies":["time-machine"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("path id wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/admin/catalog/modules/:id", h.PutModule)

		uc.EXPECT().UpsertModule(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, mod entities.CatalogModule) (entities.CatalogModule, error) {
				if mod.ID != "crud-core" {
					t.Fatalf("expected path id crud-core, got %q", mod.ID)
				}
				return mod, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/catalog/modules/crud-core", bytes.NewBufferString(`{"name":"CRUD core","category":"foundation","base_hours":20}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "crud-core" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_ListModules(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/admin/catalog/modules", h.ListModules)

	uc.EXPECT().ListModules(gomock.Any()).Return([]entities.CatalogModule{
		{ID: "crud-core", Name: "CRUD core", Category: "foundation", BaseHours: 20},
		{ID: "ai-chat", Name: "AI assistant / chatbot", Category: "intelligence", BaseHours: 30},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/catalog/modules", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["id"] != "crud-core" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestCatalogHandler_RateCards(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/rate-cards", h.CreateRateCard)

		uc.EXPECT().CreateRateCard(gomock.Any(), entities.RateCard{Name: "2026 standard", HourlyRate: 150}).
			Return(entities.RateCard{ID: "rc-1", Name: "2026 standard", HourlyRate: 150, MarkupFactor: 1.0}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/rate-cards", bytes.NewBufferString(`{"name":"2026 standard","hourly_rate":150}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "rc-1" || body["is_active"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("create invalid rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/rate-cards", h.CreateRateCard)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/rate-cards", bytes.NewBufferString(`{"name":"broken"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("activate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/rate-cards/:id/activate", h.ActivateRateCard)

		uc.EXPECT().ActivateRateCard(gomock.Any(), "missing").Return(entities.RateCard{}, usecase.ErrRateCardNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/rate-cards/missing/activate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("activate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/rate-cards/:id/activate", h.ActivateRateCard)

		uc.EXPECT().ActivateRateCard(gomock.Any(), "rc-1").Return(entities.RateCard{ID: "rc-1", Name: "2026 standard", HourlyRate: 150, IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/rate-cards/rc-1/activate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["is_active"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapCatalogError(t *testing.T) {
	if got := mapCatalogError(usecase.ErrInvalidModuleInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrUnknownDependency); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrInvalidRateCardInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrRateCardNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
