package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCollection(ctx context.Context, collectionID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, collectionID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByCollection(ctx context.Context, collectionID uuid.UUID) (int64, error) {
	args := m.Called(ctx, collectionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCollectionRepository is a mock implementation of catalog.CollectionRepository
type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Collection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Collection), args.Error(1)
}

func (m *MockCollectionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Collection, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Collection), args.Error(1)
}

func (m *MockCollectionRepository) Save(ctx context.Context, collection *catalog.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *MockCollectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCollectionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollectionRepository) HasProducts(ctx context.Context, collectionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, collectionID)
	return args.Bool(0), args.Error(1)
}

// MockReviewRepository is a mock implementation of catalog.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]catalog.Review, error) {
	args := m.Called(ctx, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) Save(ctx context.Context, review *catalog.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func TestProductServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product and derives slug", func(t *testing.T) {
		products := new(MockProductRepository)
		collections := new(MockCollectionRepository)
		service := NewProductService(products, collections)

		products.On("ExistsBySlug", ctx, "organic-honey").Return(false, nil)
		products.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(ctx, CreateProductRequest{
			Title:     "Organic Honey",
			UnitPrice: decimal.NewFromFloat(12.50),
			Inventory: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, "organic-honey", resp.Slug)
		assert.Equal(t, "13.75", resp.PriceWithTax.StringFixed(2))
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		products := new(MockProductRepository)
		collections := new(MockCollectionRepository)
		service := NewProductService(products, collections)

		products.On("ExistsBySlug", ctx, "widget").Return(true, nil)

		_, err := service.Create(ctx, CreateProductRequest{
			Title:     "Widget",
			Slug:      "widget",
			UnitPrice: decimal.NewFromInt(1),
		})
		require.Error(t, err)
		products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown collection", func(t *testing.T) {
		products := new(MockProductRepository)
		collections := new(MockCollectionRepository)
		service := NewProductService(products, collections)

		collectionID := uuid.New()
		collections.On("FindByID", ctx, collectionID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateProductRequest{
			Title:        "Widget",
			UnitPrice:    decimal.NewFromInt(1),
			CollectionID: &collectionID,
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_COLLECTION", domainErr.Code)
	})
}

func TestProductServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses deletion while referenced by cart items", func(t *testing.T) {
		products := new(MockProductRepository)
		service := NewProductService(products, new(MockCollectionRepository))

		product, err := catalog.NewProduct("Widget", "widget", decimal.NewFromInt(1), 1)
		require.NoError(t, err)

		products.On("FindByID", ctx, product.ID).Return(product, nil)
		products.On("IsReferenced", ctx, product.ID).Return(true, nil)

		err = service.Delete(ctx, product.ID)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RESOURCE_IN_USE", domainErr.Code)
		products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes unreferenced product", func(t *testing.T) {
		products := new(MockProductRepository)
		service := NewProductService(products, new(MockCollectionRepository))

		product, err := catalog.NewProduct("Widget", "widget", decimal.NewFromInt(1), 1)
		require.NoError(t, err)

		products.On("FindByID", ctx, product.ID).Return(product, nil)
		products.On("IsReferenced", ctx, product.ID).Return(false, nil)
		products.On("Delete", ctx, product.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, product.ID))
		products.AssertExpectations(t)
	})
}

func TestCollectionServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses deletion while collection has products", func(t *testing.T) {
		collections := new(MockCollectionRepository)
		service := NewCollectionService(collections, new(MockProductRepository))

		collection, err := catalog.NewCollection("Pantry")
		require.NoError(t, err)

		collections.On("FindByID", ctx, collection.ID).Return(collection, nil)
		collections.On("HasProducts", ctx, collection.ID).Return(true, nil)

		err = service.Delete(ctx, collection.ID)
		require.Error(t, err)
		collections.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCollectionServiceGetByID(t *testing.T) {
	ctx := context.Background()
	collections := new(MockCollectionRepository)
	products := new(MockProductRepository)
	service := NewCollectionService(collections, products)

	collection, err := catalog.NewCollection("Pantry")
	require.NoError(t, err)

	collections.On("FindByID", ctx, collection.ID).Return(collection, nil)
	products.On("CountByCollection", ctx, collection.ID).Return(int64(7), nil)

	resp, err := service.GetByID(ctx, collection.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ProductsCount)
}

func TestReviewService(t *testing.T) {
	ctx := context.Background()

	t.Run("creates review for existing product", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		products := new(MockProductRepository)
		service := NewReviewService(reviews, products)

		product, err := catalog.NewProduct("Widget", "widget", decimal.NewFromInt(1), 1)
		require.NoError(t, err)

		products.On("FindByID", ctx, product.ID).Return(product, nil)
		reviews.On("Save", ctx, mock.AnythingOfType("*catalog.Review")).Return(nil)

		resp, err := service.Create(ctx, product.ID, CreateReviewRequest{
			Name:        "Alex",
			Description: "Solid widget",
			Rating:      4,
		})
		require.NoError(t, err)
		assert.Equal(t, product.ID, resp.ProductID)
	})

	t.Run("rejects review for missing product", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		products := new(MockProductRepository)
		service := NewReviewService(reviews, products)

		productID := uuid.New()
		products.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, productID, CreateReviewRequest{
			Name:        "Alex",
			Description: "Solid widget",
			Rating:      4,
		})
		assert.ErrorIs(t, err, shared.ErrInvalidProduct)
	})

	t.Run("hides review reached through the wrong product", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		products := new(MockProductRepository)
		service := NewReviewService(reviews, products)

		review, err := catalog.NewReview(uuid.New(), "Alex", "Solid", 4)
		require.NoError(t, err)

		reviews.On("FindByID", ctx, review.ID).Return(review, nil)

		_, err = service.GetByID(ctx, uuid.New(), review.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
