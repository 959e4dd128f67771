package routes

import (
	"studio_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInquiries = "/inquiries"
	PathEstimates = "/estimates"
	PathContact   = "/contact"
	PathShare     = "/q"
)

func addEstimatorRoutes(rg *gin.RouterGroup, inquiryHandler *handlers.InquiryHandler, estimateHandler *handlers.EstimateHandler, contactHandler *handlers.ContactHandler) {
	rg.POST(PathInquiries, inquiryHandler.Submit)

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.Create)
		estimates.GET("/:id", estimateHandler.GetByID)
	}

	rg.POST(PathContact, contactHandler.Send)
}

// addShareRoutes mounts the quote share-link surface. Every route keys off
// the share id; there is no listing and no lookup by internal id here.
func addShareRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	rg.GET("/:share_id", quoteHandler.View)
	rg.GET("/:share_id/pdf", quoteHandler.DownloadPDF)
	rg.POST("/:share_id/accept", quoteHandler.Accept)
}
