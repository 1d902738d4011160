package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

const (
	// MinRating is the lowest allowed review rating
	MinRating = 1
	// MaxRating is the highest allowed review rating
	MaxRating = 5
)

// Review is a customer review attached to a product
type Review struct {
	shared.BaseAggregateRoot
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Rating      int       `gorm:"not null"`
	Date        time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a new review for a product
func NewReview(productID uuid.UUID, name, description string, rating int) (*Review, error) {
	if productID == uuid.Nil {
		return nil, shared.ErrInvalidProduct
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Reviewer name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_NAME", "Reviewer name cannot exceed 255 characters")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Review description cannot be empty")
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	return &Review{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		Name:              name,
		Description:       description,
		Rating:            rating,
		Date:              time.Now(),
	}, nil
}

// Update updates the review content
func (r *Review) Update(name, description string, rating int) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Reviewer name cannot be empty")
	}
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Review description cannot be empty")
	}
	if err := validateRating(rating); err != nil {
		return err
	}

	r.Name = name
	r.Description = description
	r.Rating = rating
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// validateRating validates the review rating
func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	return nil
}
