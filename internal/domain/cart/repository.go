package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Repository defines the interface for cart persistence
type Repository interface {
	// FindByID finds a cart with its items by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// FindByIDForUpdate finds a cart by ID with a row lock held for the
	// duration of the surrounding transaction
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Cart, error)

	// FindByCustomer finds all carts owned by a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Cart, error)

	// Save persists the cart and reconciles its items: new lines are
	// inserted, changed lines updated, and lines removed from the
	// aggregate deleted
	Save(ctx context.Context, cart *Cart) error

	// Delete deletes a cart and all of its items
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts carts matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
