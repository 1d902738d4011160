package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/cart"
	"gorm.io/gorm"
)

// GormUnitOfWork implements cart.UnitOfWork over a GORM transaction.
// Repositories handed to the callback are bound to the transaction, so
// row locks taken through them are held until the callback returns.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute runs fn inside a single database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(repos cart.TxRepositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(cart.TxRepositories{
			Carts:    NewGormCartRepository(tx),
			Products: NewGormProductRepository(tx),
		})
	})
}

// Ensure GormUnitOfWork implements cart.UnitOfWork
var _ cart.UnitOfWork = (*GormUnitOfWork)(nil)
