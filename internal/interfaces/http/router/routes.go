package router

import (
	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/interfaces/http/handler"
)

// StorefrontRoutes wires all storefront API endpoints. Cart mutations
// take the idempotency middleware so client retries are deduplicated.
type StorefrontRoutes struct {
	System      *handler.SystemHandler
	Products    *handler.ProductHandler
	Collections *handler.CollectionHandler
	Reviews     *handler.ReviewHandler
	Carts       *handler.CartHandler
	Customers   *handler.CustomerHandler
	Idempotency gin.HandlerFunc
}

// RegisterRoutes implements RouteRegistrar
func (r *StorefrontRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/health", r.System.Health)
		system.GET("/ready", r.System.Ready)
		system.GET("/info", r.System.GetSystemInfo)
	}

	products := rg.Group("/products")
	{
		products.POST("", r.Products.Create)
		products.GET("", r.Products.List)
		products.GET("/slug/:slug", r.Products.GetBySlug)
		products.GET("/:id", r.Products.GetByID)
		products.PUT("/:id", r.Products.Update)
		products.PATCH("/:id", r.Products.Update)
		products.DELETE("/:id", r.Products.Delete)

		products.POST("/:id/reviews", r.Reviews.Create)
		products.GET("/:id/reviews", r.Reviews.List)
		products.GET("/:id/reviews/:reviewId", r.Reviews.GetByID)
		products.PATCH("/:id/reviews/:reviewId", r.Reviews.Update)
		products.DELETE("/:id/reviews/:reviewId", r.Reviews.Delete)
	}

	collections := rg.Group("/collections")
	{
		collections.POST("", r.Collections.Create)
		collections.GET("", r.Collections.List)
		collections.GET("/:id", r.Collections.GetByID)
		collections.GET("/:id/products", r.Collections.ListProducts)
		collections.PUT("/:id", r.Collections.Update)
		collections.DELETE("/:id", r.Collections.Delete)
	}

	carts := rg.Group("/carts")
	if r.Idempotency != nil {
		carts.Use(r.Idempotency)
	}
	{
		carts.POST("", r.Carts.Create)
		carts.GET("/:id", r.Carts.GetByID)
		carts.DELETE("/:id", r.Carts.Delete)

		carts.POST("/:id/items", r.Carts.AddItem)
		carts.PATCH("/:id/items/:itemId", r.Carts.UpdateItem)
		carts.DELETE("/:id/items/:itemId", r.Carts.RemoveItem)
		carts.POST("/:id/clear", r.Carts.Clear)
	}

	customers := rg.Group("/customers")
	{
		customers.POST("", r.Customers.Create)
		customers.GET("", r.Customers.List)
		customers.GET("/:id", r.Customers.GetByID)
		customers.GET("/:id/carts", r.Carts.ListByCustomer)
		customers.PUT("/:id", r.Customers.Update)
		customers.DELETE("/:id", r.Customers.Delete)
	}
}
