package handlers

import (
	"errors"
	"net/http"

	request "studio_pricing/internal/adapter/http/dto/request"
	response "studio_pricing/internal/adapter/http/dto/response"
	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/usecase"
	"studio_pricing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInquiryPayload = pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", "Invalid inquiry payload", http.StatusBadRequest)

// InquiryHandler handles HTTP requests for visitor inquiries: the public
// quick-estimate form plus the admin review flow.

type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

// Submit accepts the public quick-estimate form and returns the persisted
// inquiry including its computed rough range.
func (h *InquiryHandler) Submit(c *gin.Context) {
	var payload request.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	inquiry, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInquiry(inquiry))
}

func (h *InquiryHandler) List(c *gin.Context) {
	status := entities.InquiryStatus(c.Query("status"))

	items, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiries(items))
}

func (h *InquiryHandler) GetByID(c *gin.Context) {
	inquiry, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiry(inquiry))
}

func (h *InquiryHandler) Update(c *gin.Context) {
	var payload request.PatchInquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	inquiry, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiry(inquiry))
}

func mapInquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInquiryID), errors.Is(err, usecase.ErrInvalidInquiryInput), errors.Is(err, usecase.ErrInvalidInquiryStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInquiryNotFound):
		return pkg.NewDomainErrorSimple("INQUIRY_NOT_FOUND", "Inquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInquiryStatusWouldRevert):
		return pkg.NewDomainErrorSimple("INQUIRY_STATUS_CONFLICT", "Inquiry status can only move forward", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
