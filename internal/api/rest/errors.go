package rest

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/api/shared/errors"
	"github.com/abstrakts/storefront-core/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errors.NewValidationError(message))
}

var errUnauthorizedSubject = errors.NewUnauthorizedError("Authentication failed", "token has no subject account")

// respondError responds with the status of an executor error.
// Errors that are not API errors are logged and answered with a 500,
// carrying the cause only in debug mode.
func (h *handler) respondError(c *gin.Context, err error, message string, fields ...zap.Field) {
	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		if apiErr.StatusCode() >= http.StatusInternalServerError {
			logger.ErrorCtx(c.Request.Context(), err, fields...)
		}
		c.JSON(apiErr.StatusCode(), apiErr)
		return
	}

	logger.ErrorCtx(c.Request.Context(), err, fields...)
	if h.debug {
		c.JSON(http.StatusInternalServerError, errors.NewInternalError(message, err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, errors.NewInternalError(message))
}
