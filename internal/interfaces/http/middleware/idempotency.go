package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader is the header clients send to deduplicate retries
const IdempotencyKeyHeader = "Idempotency-Key"

// MaxIdempotencyKeyLength caps key size to keep store keys bounded
const MaxIdempotencyKeyLength = 255

// Idempotency returns a middleware that rejects replays of mutating
// requests carrying an Idempotency-Key header. The key is scoped to the
// method and path, so the same key can be reused across endpoints.
// Requests without the header pass through untouched. Store failures
// fail open: dropping deduplication is better than dropping traffic.
func Idempotency(store shared.IdempotencyStore, cfg shared.IdempotencyConfig, logger *zap.Logger) gin.HandlerFunc {
	if !cfg.Enabled || store == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > MaxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_IDEMPOTENCY_KEY",
					"message": "Idempotency-Key header is too long",
				},
			})
			return
		}

		scopedKey := fmt.Sprintf("%s:%s:%s", c.Request.Method, c.FullPath(), key)

		isNew, err := store.MarkProcessed(c.Request.Context(), scopedKey, cfg.TTL)
		if err != nil {
			logger.Warn("idempotency store unavailable, skipping deduplication",
				zap.Error(err),
				zap.String("path", c.FullPath()),
			)
			c.Next()
			return
		}

		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DUPLICATE_REQUEST",
					"message": "A request with this Idempotency-Key was already processed",
				},
			})
			return
		}

		c.Next()
	}
}
