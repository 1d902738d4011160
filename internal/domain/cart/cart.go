package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartItem is a line in a cart, one per distinct product
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product,priority:2"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// Cart is the aggregate root for a shopping cart
// All item mutations go through the cart so the quantity invariants
// (quantity >= 1, quantity <= product inventory, one line per product)
// hold at every commit point
type Cart struct {
	shared.BaseAggregateRoot
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates a new empty cart
func NewCart() *Cart {
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
	}
}

// NewCartForCustomer creates a new empty cart owned by a customer
func NewCartForCustomer(customerID uuid.UUID) *Cart {
	cart := NewCart()
	cart.CustomerID = &customerID
	return cart
}

// FindItem returns the item for a product, or nil if the cart has none
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItem adds a quantity of a product to the cart
// If the product is already in the cart the quantities are merged into
// the existing line; the merged quantity must not exceed the product's
// inventory
func (c *Cart) AddItem(product *catalog.Product, quantity int) error {
	if product == nil {
		return shared.ErrInvalidProduct
	}
	if quantity < 1 {
		return shared.ErrInvalidQuantity
	}

	existing := c.FindItem(product.ID)
	newQuantity := quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}
	if !product.CanFulfill(newQuantity) {
		return shared.ErrInsufficientInventory
	}

	if existing != nil {
		existing.Quantity = newQuantity
		existing.UpdatedAt = time.Now()
	} else {
		c.Items = append(c.Items, CartItem{
			BaseEntity: shared.NewBaseEntity(),
			CartID:     c.ID,
			ProductID:  product.ID,
			Quantity:   quantity,
		})
	}

	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// UpdateItemQuantity replaces the quantity of an existing line
// The quantity is absolute, not a delta
func (c *Cart) UpdateItemQuantity(product *catalog.Product, quantity int) error {
	if product == nil {
		return shared.ErrInvalidProduct
	}
	if quantity < 1 {
		return shared.ErrInvalidQuantity
	}

	existing := c.FindItem(product.ID)
	if existing == nil {
		return shared.ErrNotFound
	}
	if !product.CanFulfill(quantity) {
		return shared.ErrInsufficientInventory
	}

	existing.Quantity = quantity
	existing.UpdatedAt = time.Now()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// RemoveItem removes the line for a product from the cart
func (c *Cart) RemoveItem(productID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}
	return shared.ErrNotFound
}

// Clear removes all lines from the cart
// Clearing an already empty cart is a no-op
func (c *Cart) Clear() {
	if len(c.Items) == 0 {
		return
	}
	c.Items = c.Items[:0]
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalQuantity returns the sum of quantities across all lines
func (c *Cart) TotalQuantity() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}
