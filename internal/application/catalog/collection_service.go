package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// CollectionService handles collection business operations
type CollectionService struct {
	collectionRepo catalog.CollectionRepository
	productRepo    catalog.ProductRepository
}

// NewCollectionService creates a new CollectionService
func NewCollectionService(collectionRepo catalog.CollectionRepository, productRepo catalog.ProductRepository) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		productRepo:    productRepo,
	}
}

// Create creates a new collection
func (s *CollectionService) Create(ctx context.Context, req CreateCollectionRequest) (*CollectionResponse, error) {
	collection, err := catalog.NewCollection(req.Title)
	if err != nil {
		return nil, err
	}

	if req.FeaturedProductID != nil {
		if err := s.checkFeaturedProduct(ctx, *req.FeaturedProductID); err != nil {
			return nil, err
		}
		collection.SetFeaturedProduct(req.FeaturedProductID)
	}

	if err := s.collectionRepo.Save(ctx, collection); err != nil {
		return nil, err
	}

	response := ToCollectionResponse(collection, 0)
	return &response, nil
}

// GetByID retrieves a collection by ID with its product count
func (s *CollectionService) GetByID(ctx context.Context, id uuid.UUID) (*CollectionResponse, error) {
	collection, err := s.collectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.productRepo.CountByCollection(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCollectionResponse(collection, count)
	return &response, nil
}

// List retrieves collections with pagination, each with its product count
func (s *CollectionService) List(ctx context.Context, filter shared.Filter) ([]CollectionResponse, int64, error) {
	collections, err := s.collectionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.collectionRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CollectionResponse, 0, len(collections))
	for i := range collections {
		count, err := s.productRepo.CountByCollection(ctx, collections[i].ID)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, ToCollectionResponse(&collections[i], count))
	}
	return responses, total, nil
}

// Update updates a collection
func (s *CollectionService) Update(ctx context.Context, id uuid.UUID, req UpdateCollectionRequest) (*CollectionResponse, error) {
	collection, err := s.collectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := collection.Update(req.Title); err != nil {
		return nil, err
	}
	if req.FeaturedProductID != nil {
		if err := s.checkFeaturedProduct(ctx, *req.FeaturedProductID); err != nil {
			return nil, err
		}
	}
	collection.SetFeaturedProduct(req.FeaturedProductID)

	if err := s.collectionRepo.Save(ctx, collection); err != nil {
		return nil, err
	}

	count, err := s.productRepo.CountByCollection(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCollectionResponse(collection, count)
	return &response, nil
}

// Delete deletes a collection
// Deletion is refused while the collection still has products
func (s *CollectionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.collectionRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasProducts, err := s.collectionRepo.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if hasProducts {
		return shared.NewDomainError("RESOURCE_IN_USE", "Collection still contains products")
	}

	return s.collectionRepo.Delete(ctx, id)
}

func (s *CollectionService) checkFeaturedProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrInvalidProduct
		}
		return err
	}
	return nil
}
