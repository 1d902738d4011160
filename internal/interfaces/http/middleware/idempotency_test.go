package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type failingIdempotencyStore struct{}

func (failingIdempotencyStore) MarkProcessed(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("store down")
}

func (failingIdempotencyStore) IsProcessed(context.Context, string) (bool, error) {
	return false, errors.New("store down")
}

func (failingIdempotencyStore) Close() error { return nil }

func newIdempotencyRouter(t *testing.T, store shared.IdempotencyStore, cfg shared.IdempotencyConfig) *gin.Engine {
	t.Helper()

	router := gin.New()
	router.Use(Idempotency(store, cfg, zap.NewNop()))
	handle := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.POST("/carts", handle)
	router.POST("/orders", handle)
	router.GET("/carts", handle)
	return router
}

func doIdempotent(router *gin.Engine, method, path, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	cfg := shared.DefaultIdempotencyConfig()

	t.Run("first request passes, replay is rejected", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		router := newIdempotencyRouter(t, store, cfg)

		w := doIdempotent(router, http.MethodPost, "/carts", "abc-123")
		assert.Equal(t, http.StatusOK, w.Code)

		w = doIdempotent(router, http.MethodPost, "/carts", "abc-123")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "DUPLICATE_REQUEST")
	})

	t.Run("key is scoped per endpoint", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		router := newIdempotencyRouter(t, store, cfg)

		w := doIdempotent(router, http.MethodPost, "/carts", "shared-key")
		assert.Equal(t, http.StatusOK, w.Code)

		w = doIdempotent(router, http.MethodPost, "/orders", "shared-key")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("requests without a key pass through", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		router := newIdempotencyRouter(t, store, cfg)

		for i := 0; i < 3; i++ {
			w := doIdempotent(router, http.MethodPost, "/carts", "")
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("GET requests are not deduplicated", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		router := newIdempotencyRouter(t, store, cfg)

		for i := 0; i < 2; i++ {
			w := doIdempotent(router, http.MethodGet, "/carts", "read-key")
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("oversized key is rejected", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		router := newIdempotencyRouter(t, store, cfg)

		w := doIdempotent(router, http.MethodPost, "/carts", strings.Repeat("x", MaxIdempotencyKeyLength+1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_IDEMPOTENCY_KEY")
	})

	t.Run("store failure fails open", func(t *testing.T) {
		router := newIdempotencyRouter(t, failingIdempotencyStore{}, cfg)

		w := doIdempotent(router, http.MethodPost, "/carts", "abc-123")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("disabled config is a no-op", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		router := newIdempotencyRouter(t, store, shared.IdempotencyConfig{Enabled: false})

		for i := 0; i < 2; i++ {
			w := doIdempotent(router, http.MethodPost, "/carts", "abc-123")
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("key is accepted again after TTL", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		shortCfg := shared.IdempotencyConfig{Enabled: true, TTL: 10 * time.Millisecond}
		router := newIdempotencyRouter(t, store, shortCfg)

		w := doIdempotent(router, http.MethodPost, "/carts", "abc-123")
		assert.Equal(t, http.StatusOK, w.Code)

		time.Sleep(20 * time.Millisecond)

		w = doIdempotent(router, http.MethodPost, "/carts", "abc-123")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
