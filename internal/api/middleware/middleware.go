package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/abstrakts/storefront-core/internal/api/shared/errors"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/logger"
)

const (
	REQUEST_ID_HEADER = "X-Request-ID"
	CHAIN_KEY_PARAM   = "chain_key"
	CHAIN_KEY_KEY     = "chain_key"
)

// RequestID tags each request with an ID, reusing the caller's X-Request-ID when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(REQUEST_ID_HEADER, requestID)

		c.Next()
	}
}

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.InfoCtx(c.Request.Context(), "API request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					apierrors.NewInternalError("Internal server error"))
			}
		}()
		c.Next()
	}
}

// ChainKey rejects requests for networks that are not configured
// and stores the chain key in the gin and logger contexts
func ChainKey(chains []domain.ChainKey) gin.HandlerFunc {
	allowed := make(map[domain.ChainKey]bool, len(chains))
	for _, chain := range chains {
		allowed[chain] = true
	}

	return func(c *gin.Context) {
		chainKey := domain.ChainKey(c.Param(CHAIN_KEY_PARAM))
		if !allowed[chainKey] {
			apiErr := apierrors.NewNotFoundError("Unknown chain", string(chainKey))
			c.AbortWithStatusJSON(apiErr.StatusCode(), apiErr)
			return
		}

		c.Set(CHAIN_KEY_KEY, chainKey)
		c.Request = c.Request.WithContext(logger.WithChainKey(c.Request.Context(), string(chainKey)))
		c.Next()
	}
}

// GetChainKey returns the chain key stored by ChainKey
func GetChainKey(c *gin.Context) domain.ChainKey {
	value, _ := c.Get(CHAIN_KEY_KEY)
	chainKey, _ := value.(domain.ChainKey)
	return chainKey
}
