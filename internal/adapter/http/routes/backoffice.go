package routes

import (
	"studio_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathDashboard = "/dashboard"
	PathCatalog   = "/catalog"
	PathRateCards = "/rate-cards"
)

// addBackofficeRoutes mounts the admin surface. The caller is expected to
// have attached the admin gate middleware to rg already.
func addBackofficeRoutes(rg *gin.RouterGroup, inquiryHandler *handlers.InquiryHandler, quoteHandler *handlers.QuoteHandler, dashboardHandler *handlers.DashboardHandler, catalogHandler *handlers.CatalogHandler) {
	inquiries := rg.Group(PathInquiries)
	{
		inquiries.GET("", inquiryHandler.List)
		inquiries.GET("/:id", inquiryHandler.GetByID)
		inquiries.PATCH("/:id", inquiryHandler.Update)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.Publish)
		quotes.GET("", quoteHandler.List)
		quotes.GET("/:id", quoteHandler.GetByID)
	}

	rg.GET(PathDashboard, dashboardHandler.Stats)

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/modules", catalogHandler.ListModules)
		catalog.PUT("/modules/:id", catalogHandler.PutModule)
	}

	rateCards := rg.Group(PathRateCards)
	{
		rateCards.GET("", catalogHandler.ListRateCards)
		rateCards.POST("", catalogHandler.CreateRateCard)
		rateCards.POST("/:id/activate", catalogHandler.ActivateRateCard)
	}
}
