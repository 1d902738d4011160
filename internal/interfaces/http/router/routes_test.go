package router

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()

	engine := gin.New()
	routes := &StorefrontRoutes{
		System:      handler.NewSystemHandler(nil),
		Products:    handler.NewProductHandler(nil),
		Collections: handler.NewCollectionHandler(nil, nil),
		Reviews:     handler.NewReviewHandler(nil),
		Carts:       handler.NewCartHandler(nil),
		Customers:   handler.NewCustomerHandler(nil),
	}
	NewRouter(engine, WithAPIVersion("v1")).Register(routes).Setup()

	result := make(map[string]bool)
	for _, r := range engine.Routes() {
		result[r.Method+" "+r.Path] = true
	}
	return result
}

func TestStorefrontRoutes_Registration(t *testing.T) {
	routes := registeredRoutes(t)

	expected := []string{
		http.MethodGet + " /api/v1/system/health",
		http.MethodPost + " /api/v1/products",
		http.MethodGet + " /api/v1/products/:id",
		http.MethodPut + " /api/v1/products/:id",
		http.MethodPatch + " /api/v1/products/:id",
		http.MethodDelete + " /api/v1/products/:id",
		http.MethodGet + " /api/v1/products/slug/:slug",
		http.MethodPatch + " /api/v1/products/:id/reviews/:reviewId",
		http.MethodDelete + " /api/v1/products/:id/reviews/:reviewId",
		http.MethodGet + " /api/v1/collections/:id/products",
		http.MethodPost + " /api/v1/carts",
		http.MethodPost + " /api/v1/carts/:id/items",
		http.MethodPatch + " /api/v1/carts/:id/items/:itemId",
		http.MethodDelete + " /api/v1/carts/:id/items/:itemId",
		http.MethodPost + " /api/v1/carts/:id/clear",
		http.MethodGet + " /api/v1/customers/:id/carts",
	}
	for _, route := range expected {
		assert.True(t, routes[route], "missing route %s", route)
	}
}

func TestStorefrontRoutes_NoLegacyReviewUpdate(t *testing.T) {
	routes := registeredRoutes(t)
	assert.False(t, routes[http.MethodPut+" /api/v1/products/:id/reviews/:reviewId"])
}

func TestRouter_VersionPrefix(t *testing.T) {
	engine := gin.New()
	NewRouter(engine, WithAPIVersion("v2")).Register(&StorefrontRoutes{
		System:      handler.NewSystemHandler(nil),
		Products:    handler.NewProductHandler(nil),
		Collections: handler.NewCollectionHandler(nil, nil),
		Reviews:     handler.NewReviewHandler(nil),
		Carts:       handler.NewCartHandler(nil),
		Customers:   handler.NewCustomerHandler(nil),
	}).Setup()

	for _, r := range engine.Routes() {
		assert.Contains(t, r.Path, "/api/v2/")
	}
}
