package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// ReviewService handles product review operations
type ReviewService struct {
	reviewRepo  catalog.ReviewRepository
	productRepo catalog.ProductRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo catalog.ReviewRepository, productRepo catalog.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// Create creates a review for a product
func (s *ReviewService) Create(ctx context.Context, productID uuid.UUID, req CreateReviewRequest) (*ReviewResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidProduct
		}
		return nil, err
	}

	review, err := catalog.NewReview(productID, req.Name, req.Description, req.Rating)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	response := ToReviewResponse(review)
	return &response, nil
}

// GetByID retrieves a review scoped to a product
// A review reached through the wrong product's URL is treated as missing
func (s *ReviewService) GetByID(ctx context.Context, productID, reviewID uuid.UUID) (*ReviewResponse, error) {
	review, err := s.findForProduct(ctx, productID, reviewID)
	if err != nil {
		return nil, err
	}
	response := ToReviewResponse(review)
	return &response, nil
}

// ListByProduct retrieves reviews for a product with pagination
func (s *ReviewService) ListByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]ReviewResponse, int64, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, 0, err
	}

	reviews, err := s.reviewRepo.FindByProduct(ctx, productID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.reviewRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, ToReviewResponse(&reviews[i]))
	}
	return responses, total, nil
}

// Update updates a review scoped to a product
func (s *ReviewService) Update(ctx context.Context, productID, reviewID uuid.UUID, req UpdateReviewRequest) (*ReviewResponse, error) {
	review, err := s.findForProduct(ctx, productID, reviewID)
	if err != nil {
		return nil, err
	}

	if err := review.Update(req.Name, req.Description, req.Rating); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	response := ToReviewResponse(review)
	return &response, nil
}

// Delete deletes a review scoped to a product
func (s *ReviewService) Delete(ctx context.Context, productID, reviewID uuid.UUID) error {
	review, err := s.findForProduct(ctx, productID, reviewID)
	if err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, review.ID)
}

func (s *ReviewService) findForProduct(ctx context.Context, productID, reviewID uuid.UUID) (*catalog.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.ProductID != productID {
		return nil, shared.ErrNotFound
	}
	return review, nil
}
