package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Collection groups related products for merchandising
type Collection struct {
	shared.BaseAggregateRoot
	Title             string     `gorm:"type:varchar(255);not null"`
	FeaturedProductID *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Collection) TableName() string {
	return "collections"
}

// NewCollection creates a new collection
func NewCollection(title string) (*Collection, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	return &Collection{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
	}, nil
}

// Update updates the collection title
func (c *Collection) Update(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	c.Title = title
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetFeaturedProduct sets the featured product (nil clears it)
func (c *Collection) SetFeaturedProduct(productID *uuid.UUID) {
	c.FeaturedProductID = productID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
