package handlers

import (
	"errors"
	"net/http"

	request "studio_pricing/internal/adapter/http/dto/request"
	"studio_pricing/internal/usecase"
	"studio_pricing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact payload", http.StatusBadRequest)

// ContactHandler handles the public contact form.

type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// Send relays a contact message. A provider delivery failure or a missing
// provider configuration is a 200 with success=false, not a transport error;
// the form should tell the visitor to try again rather than show an error
// page.
func (h *ContactHandler) Send(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Send(c.Request.Context(), payload.ToMessage())
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContactInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
