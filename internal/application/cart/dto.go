package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// CreateCartRequest represents a request to create a cart
type CreateCartRequest struct {
	CustomerID *uuid.UUID `json:"customer_id"`
}

// AddItemRequest represents a request to add a product to a cart
// When the product is already in the cart the quantity is merged into
// the existing line
// Quantity carries no binding rule: a missing or zero quantity reaches
// the service and fails its guard, so every bad quantity reports the
// same error code
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
}

// UpdateItemRequest represents a request to replace a line's quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// ItemProductResponse is the product snapshot embedded in a cart line
type ItemProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
	Inventory    int             `json:"inventory"`
}

// CartItemResponse represents a cart line in API responses
// TotalPrice is always computed from the product's current unit price
type CartItemResponse struct {
	ID         uuid.UUID           `json:"id"`
	Product    ItemProductResponse `json:"product"`
	Quantity   int                 `json:"quantity"`
	TotalPrice decimal.Decimal     `json:"total_price"`
}

// CartResponse represents a cart with its lines and computed totals
type CartResponse struct {
	ID            uuid.UUID          `json:"id"`
	CustomerID    *uuid.UUID         `json:"customer_id,omitempty"`
	Items         []CartItemResponse `json:"items"`
	TotalQuantity int                `json:"total_quantity"`
	TotalPrice    decimal.Decimal    `json:"total_price"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ItemByProduct returns the cart line holding the given product, or nil
func (r *CartResponse) ItemByProduct(productID uuid.UUID) *CartItemResponse {
	for i := range r.Items {
		if r.Items[i].Product.ID == productID {
			return &r.Items[i]
		}
	}
	return nil
}

// ItemByID returns the cart line with the given ID, or nil
func (r *CartResponse) ItemByID(itemID uuid.UUID) *CartItemResponse {
	for i := range r.Items {
		if r.Items[i].ID == itemID {
			return &r.Items[i]
		}
	}
	return nil
}

// ToCartResponse maps a cart and its products to the response shape
// Lines whose product has been deleted since they were added are priced
// at zero with an empty snapshot rather than dropped, so the cart stays
// visibly inconsistent instead of silently shrinking
func ToCartResponse(c *cart.Cart, products map[uuid.UUID]*catalog.Product) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	total := valueobject.ZeroUSD()

	for i := range c.Items {
		item := &c.Items[i]
		resp := CartItemResponse{
			ID:       item.ID,
			Quantity: item.Quantity,
		}
		lineTotal := valueobject.ZeroUSD()
		if product, ok := products[item.ProductID]; ok {
			resp.Product = ItemProductResponse{
				ID:           product.ID,
				Title:        product.Title,
				Slug:         product.Slug,
				UnitPrice:    product.UnitPrice,
				PriceWithTax: product.PriceWithTax(),
				Inventory:    product.Inventory,
			}
			lineTotal = product.UnitPriceMoney().MultiplyByInt(int64(item.Quantity))
		} else {
			resp.Product = ItemProductResponse{ID: item.ProductID}
		}
		resp.TotalPrice = lineTotal.Amount()
		// every line total is USD, so MustAdd cannot panic here
		total = total.MustAdd(lineTotal)
		items = append(items, resp)
	}

	return CartResponse{
		ID:            c.ID,
		CustomerID:    c.CustomerID,
		Items:         items,
		TotalQuantity: c.TotalQuantity(),
		TotalPrice:    total.Amount(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
