package handlers

import (
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

func TestDashboardHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/dashboard", h.Stats)

		uc.EXPECT().Stats(gomock.Any()).Return(usecase.DashboardStats{
			TotalInquiries: 6,
			InquiriesByState: map[entities.InquiryStatus]int{
				entities.InquiryStatusNew:      2,
				entities.InquiryStatusReviewed: 4,
			},
			QuotesByState:    map[entities.QuoteStatus]int{entities.QuoteStatusSent: 1},
			PotentialRevenue: 18000,
			FunnelPercent: map[entities.InquiryStatus]float64{
				entities.InquiryStatusNew:       100,
				entities.InquiryStatusReviewed:  66.7,
				entities.InquiryStatusQuoted:    0,
				entities.InquiryStatusConverted: 0,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_inquiries"] != float64(6) || body["potential_revenue"] != float64(18000) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/dashboard", h.Stats)

		uc.EXPECT().Stats(gomock.Any()).Return(usecase.DashboardStats{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
