package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CollectionRepository defines the interface for collection persistence
type CollectionRepository interface {
	// FindByID finds a collection by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Collection, error)

	// FindAll finds all collections matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Collection, error)

	// Save creates or updates a collection
	Save(ctx context.Context, collection *Collection) error

	// Delete deletes a collection
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts collections matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// HasProducts checks if a collection has any associated products
	HasProducts(ctx context.Context, collectionID uuid.UUID) (bool, error)
}
