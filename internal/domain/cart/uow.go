package cart

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
)

// TxRepositories bundles the repositories bound to a single transaction
type TxRepositories struct {
	Carts    Repository
	Products catalog.ProductRepository
}

// UnitOfWork runs a function against cart and product repositories inside
// one database transaction. The function either commits as a whole or
// rolls back as a whole, so a failed cart mutation leaves no partial state
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(repos TxRepositories) error) error
}
