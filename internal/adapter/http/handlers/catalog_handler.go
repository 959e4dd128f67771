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

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)

// CatalogHandler handles admin edits to the module catalog and rate cards.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListModules(c *gin.Context) {
	items, err := h.usecase.ListModules(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromModules(items))
}

func (h *CatalogHandler) PutModule(c *gin.Context) {
	var payload request.ModuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	module, err := h.usecase.UpsertModule(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromModule(module))
}

func (h *CatalogHandler) ListRateCards(c *gin.Context) {
	items, err := h.usecase.ListRateCards(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRateCards(items))
}

func (h *CatalogHandler) CreateRateCard(c *gin.Context) {
	var payload request.RateCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	card, err := h.usecase.CreateRateCard(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRateCard(card))
}

func (h *CatalogHandler) ActivateRateCard(c *gin.Context) {
	card, err := h.usecase.ActivateRateCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRateCard(card))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidModuleInput),
		errors.Is(err, usecase.ErrInvalidRateCardID),
		errors.Is(err, usecase.ErrInvalidRateCardInput),
		errors.Is(err, usecase.ErrUnknownDependency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRateCardNotFound):
		return pkg.NewDomainErrorSimple("RATE_CARD_NOT_FOUND", "Rate card not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
