package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
)

// CartService handles cart business operations
//
// All mutations run inside a single database transaction that locks the
// cart row and the affected product row, so the inventory check and the
// write are atomic: two concurrent requests against the same cart line
// serialize on the row lock and the second sees the first's quantities
type CartService struct {
	cartRepo    cart.Repository
	productRepo catalog.ProductRepository
	uow         cart.UnitOfWork
}

// NewCartService creates a new CartService
func NewCartService(cartRepo cart.Repository, productRepo catalog.ProductRepository, uow cart.UnitOfWork) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		uow:         uow,
	}
}

// Create creates a new, empty cart
func (s *CartService) Create(ctx context.Context, req CreateCartRequest) (*CartResponse, error) {
	var c *cart.Cart
	if req.CustomerID != nil {
		c = cart.NewCartForCustomer(*req.CustomerID)
	} else {
		c = cart.NewCart()
	}

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCartResponse(c, nil)
	return &response, nil
}

// GetByID retrieves a cart with its lines and totals
// Line totals are computed from each product's current unit price at
// read time, never from a price stored on the line
func (s *CartService) GetByID(ctx context.Context, cartID uuid.UUID) (*CartResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx, s.productRepo, c)
	if err != nil {
		return nil, err
	}

	response := ToCartResponse(c, products)
	return &response, nil
}

// ListByCustomer retrieves all carts owned by a customer, each with its
// lines and totals computed from current prices
func (s *CartService) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]CartResponse, error) {
	carts, err := s.cartRepo.FindByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CartResponse, 0, len(carts))
	for i := range carts {
		products, err := s.loadProducts(ctx, s.productRepo, &carts[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, ToCartResponse(&carts[i], products))
	}
	return responses, nil
}

// Delete deletes a cart and all of its lines
func (s *CartService) Delete(ctx context.Context, cartID uuid.UUID) error {
	if _, err := s.cartRepo.FindByID(ctx, cartID); err != nil {
		return err
	}
	return s.cartRepo.Delete(ctx, cartID)
}

// AddItem adds a quantity of a product to the cart, merging into an
// existing line when the product is already present
func (s *CartService) AddItem(ctx context.Context, cartID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "add_item")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCartID, cartID.String(),
		telemetry.SpanAttrProductID, req.ProductID.String(),
		telemetry.SpanAttrQuantity, req.Quantity,
	)

	if req.Quantity < 1 {
		telemetry.RecordError(span, shared.ErrInvalidQuantity)
		return nil, shared.ErrInvalidQuantity
	}

	var response CartResponse
	err := s.uow.Execute(ctx, func(repos cart.TxRepositories) error {
		c, err := repos.Carts.FindByIDForUpdate(ctx, cartID)
		if err != nil {
			return err
		}

		product, err := repos.Products.FindByIDForUpdate(ctx, req.ProductID)
		if err != nil {
			// a missing product on an add is a bad reference, not a 404
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrInvalidProduct
			}
			return err
		}

		if err := c.AddItem(product, req.Quantity); err != nil {
			return err
		}
		if err := repos.Carts.Save(ctx, c); err != nil {
			return err
		}

		products, err := s.loadProducts(ctx, repos.Products, c)
		if err != nil {
			return err
		}
		response = ToCartResponse(c, products)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return &response, nil
}

// UpdateItem replaces the quantity of a cart line
// The quantity is absolute: updating a line holding 2 to 5 yields 5,
// and is valid whenever 5 is within the product's inventory
func (s *CartService) UpdateItem(ctx context.Context, cartID, itemID uuid.UUID, req UpdateItemRequest) (*CartResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "update_item")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCartID, cartID.String(),
		telemetry.SpanAttrItemID, itemID.String(),
		telemetry.SpanAttrQuantity, req.Quantity,
	)

	if req.Quantity < 1 {
		telemetry.RecordError(span, shared.ErrInvalidQuantity)
		return nil, shared.ErrInvalidQuantity
	}

	var response CartResponse
	err := s.uow.Execute(ctx, func(repos cart.TxRepositories) error {
		c, err := repos.Carts.FindByIDForUpdate(ctx, cartID)
		if err != nil {
			return err
		}

		item := findItemByID(c, itemID)
		if item == nil {
			return shared.ErrNotFound
		}

		product, err := repos.Products.FindByIDForUpdate(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrInvalidProduct
			}
			return err
		}

		if err := c.UpdateItemQuantity(product, req.Quantity); err != nil {
			return err
		}
		if err := repos.Carts.Save(ctx, c); err != nil {
			return err
		}

		products, err := s.loadProducts(ctx, repos.Products, c)
		if err != nil {
			return err
		}
		response = ToCartResponse(c, products)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return &response, nil
}

// RemoveItem removes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "remove_item")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCartID, cartID.String(),
		telemetry.SpanAttrItemID, itemID.String(),
	)

	return s.uow.Execute(ctx, func(repos cart.TxRepositories) error {
		c, err := repos.Carts.FindByIDForUpdate(ctx, cartID)
		if err != nil {
			return err
		}

		item := findItemByID(c, itemID)
		if item == nil {
			return shared.ErrNotFound
		}
		if err := c.RemoveItem(item.ProductID); err != nil {
			return err
		}
		return repos.Carts.Save(ctx, c)
	})
}

// Clear removes all lines from the cart
// Clearing an already empty cart succeeds without error
func (s *CartService) Clear(ctx context.Context, cartID uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "clear")
	defer span.End()

	telemetry.SetAttribute(span, telemetry.SpanAttrCartID, cartID.String())

	return s.uow.Execute(ctx, func(repos cart.TxRepositories) error {
		c, err := repos.Carts.FindByIDForUpdate(ctx, cartID)
		if err != nil {
			return err
		}
		if c.IsEmpty() {
			return nil
		}
		c.Clear()
		return repos.Carts.Save(ctx, c)
	})
}

// loadProducts fetches the current products for every line in the cart
func (s *CartService) loadProducts(ctx context.Context, repo catalog.ProductRepository, c *cart.Cart) (map[uuid.UUID]*catalog.Product, error) {
	if len(c.Items) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(c.Items))
	for i := range c.Items {
		ids = append(ids, c.Items[i].ProductID)
	}

	products, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return byID, nil
}

func findItemByID(c *cart.Cart, itemID uuid.UUID) *cart.CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}
