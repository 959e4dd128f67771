package handlers

import (
	"errors"
	"net/http"

	request "studio_pricing/internal/adapter/http/dto/request"
	response "studio_pricing/internal/adapter/http/dto/response"
	"studio_pricing/internal/usecase"
	"studio_pricing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quotes: publishing from the admin
// side and the public share-link surface (view, accept, PDF).

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) Publish(c *gin.Context) {
	var payload request.PublishQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Publish(c.Request.Context(), payload.EstimateID, payload.RecipientEmail)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(items))
}

func (h *QuoteHandler) GetByID(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// View resolves the public share link. The first view stamps viewedAt as a
// side effect.
func (h *QuoteHandler) View(c *gin.Context) {
	quote, err := h.usecase.ViewByShareID(c.Request.Context(), c.Param("share_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PublicFromQuote(quote))
}

func (h *QuoteHandler) Accept(c *gin.Context) {
	var payload request.AcceptQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Accept(c.Request.Context(), c.Param("share_id"), payload.AssumptionsConfirmed)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PublicFromQuote(quote))
}

func (h *QuoteHandler) DownloadPDF(c *gin.Context) {
	pdf, err := h.usecase.RenderPDF(c.Request.Context(), c.Param("share_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quote-`+c.Param("share_id")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidShareID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidRecipientEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound), errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateAlreadyQuoted):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_QUOTED", "Estimate already has a quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_ACCEPTED", "Quote already accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssumptionsNotConfirmed):
		return pkg.NewDomainErrorSimple("ASSUMPTIONS_NOT_CONFIRMED", "Assumptions must be confirmed to accept", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteRendererUnavailable):
		return pkg.NewDomainErrorSimple("PDF_UNAVAILABLE", "PDF rendering is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
