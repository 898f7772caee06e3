package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carrental/internal/response"
	"carrental/internal/service"
	"carrental/internal/validation"
)

// respondError maps a service error onto the uniform envelope.
func (h *HandlerSet) respondError(c *gin.Context, err error) {
	var (
		notFound *service.NotFoundError
		conflict *service.ConflictError
		invalid  *service.ValidationError
	)
	switch {
	case errors.As(err, &invalid):
		response.Validation(c, invalid.Fields)
	case errors.As(err, &notFound):
		response.Error(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &conflict):
		response.Error(c, http.StatusConflict, conflict.Message)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	default:
		_ = c.Error(err)
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

type validatable interface {
	Validate() validation.Errors
}

// bindJSON decodes and validates the request body, answering 400 itself
// when either step fails.
func bindJSON(c *gin.Context, dst validatable) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, http.StatusBadRequest, "Malformed JSON request")
		return false
	}
	if errs := dst.Validate(); !errs.Empty() {
		response.Validation(c, errs)
		return false
	}
	return true
}
