package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// ==================== Product DTOs ====================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Title        string          `json:"title" binding:"required,min=1,max=255"`
	Slug         string          `json:"slug" binding:"omitempty,max=255"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
	Inventory    int             `json:"inventory" binding:"min=0"`
	CollectionID *uuid.UUID      `json:"collection_id"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Title        string           `json:"title" binding:"required,min=1,max=255"`
	Description  string           `json:"description"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Inventory    *int             `json:"inventory"`
	CollectionID *uuid.UUID       `json:"collection_id"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search       string     `form:"search"`
	CollectionID *uuid.UUID `form:"collection_id"`
	Page         int        `form:"page" binding:"omitempty,min=1"`
	PageSize     int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string     `form:"order_by"`
	OrderDir     string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
	Inventory    int             `json:"inventory"`
	CollectionID *uuid.UUID      `json:"collection_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToProductResponse converts a product to its response shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		UnitPrice:    p.UnitPrice,
		PriceWithTax: p.PriceWithTax(),
		Inventory:    p.Inventory,
		CollectionID: p.CollectionID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ==================== Collection DTOs ====================

// CreateCollectionRequest represents a request to create a collection
type CreateCollectionRequest struct {
	Title             string     `json:"title" binding:"required,min=1,max=255"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id"`
}

// UpdateCollectionRequest represents a request to update a collection
type UpdateCollectionRequest struct {
	Title             string     `json:"title" binding:"required,min=1,max=255"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id"`
}

// CollectionResponse represents a collection in API responses
type CollectionResponse struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id,omitempty"`
	ProductsCount     int64      `json:"products_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ToCollectionResponse converts a collection to its response shape
func ToCollectionResponse(c *catalog.Collection, productsCount int64) CollectionResponse {
	return CollectionResponse{
		ID:                c.ID,
		Title:             c.Title,
		FeaturedProductID: c.FeaturedProductID,
		ProductsCount:     productsCount,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// ==================== Review DTOs ====================

// CreateReviewRequest represents a request to review a product
type CreateReviewRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
}

// UpdateReviewRequest represents a request to update a review
type UpdateReviewRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`
	Date        time.Time `json:"date"`
}

// ToReviewResponse converts a review to its response shape
func ToReviewResponse(r *catalog.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		Name:        r.Name,
		Description: r.Description,
		Rating:      r.Rating,
		Date:        r.Date,
	}
}
