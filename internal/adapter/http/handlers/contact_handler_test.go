package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio_pricing/internal/adapter/http/handlers/mocks"
	"studio_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestContactHandler_Send(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/contact", h.Send)

		req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/contact", h.Send)

		req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(`{"email":"ana@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mailer not configured is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/contact", h.Send)

		uc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(usecase.ContactResult{Success: false, Error: usecase.ErrMailerNotConfigured.Error()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(`{"email":"ana@example.com","message":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false || body["error"] == "" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("delivery failure is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/contact", h.Send)

		uc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(usecase.ContactResult{Success: false, Error: "provider rejected the message"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(`{"email":"ana@example.com","message":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false || body["error"] == "" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/contact", h.Send)

		uc.EXPECT().Send(gomock.Any(), usecase.ContactMessage{
			Name:    "Ana",
			Email:   "ana@example.com",
			Subject: "project idea",
			Message: "hello there",
		}).Return(usecase.ContactResult{Success: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(`{"name":"Ana","email":"ana@example.com","subject":"project idea","message":"hello there"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapContactError(t *testing.T) {
	if got := mapContactError(usecase.ErrInvalidContactInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapContactError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
