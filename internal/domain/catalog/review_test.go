package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	productID := uuid.New()

	t.Run("creates review with valid inputs", func(t *testing.T) {
		review, err := NewReview(productID, "Alex", "Great product, arrived on time", 5)
		require.NoError(t, err)
		require.NotNil(t, review)

		assert.Equal(t, productID, review.ProductID)
		assert.Equal(t, "Alex", review.Name)
		assert.Equal(t, 5, review.Rating)
		assert.False(t, review.Date.IsZero())
	})

	t.Run("fails with nil product", func(t *testing.T) {
		_, err := NewReview(uuid.Nil, "Alex", "desc", 3)
		require.Error(t, err)
	})

	t.Run("fails when rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := NewReview(productID, "Alex", "desc", rating)
			require.Error(t, err, "rating %d", rating)
			assert.Contains(t, err.Error(), "between 1 and 5")
		}
	})

	t.Run("accepts boundary ratings", func(t *testing.T) {
		for _, rating := range []int{1, 5} {
			_, err := NewReview(productID, "Alex", "desc", rating)
			require.NoError(t, err)
		}
	})
}

func TestReviewUpdate(t *testing.T) {
	review, err := NewReview(uuid.New(), "Alex", "Okay", 3)
	require.NoError(t, err)

	require.NoError(t, review.Update("Alex", "Changed my mind, it broke", 1))
	assert.Equal(t, 1, review.Rating)
	assert.Equal(t, 2, review.GetVersion())

	require.Error(t, review.Update("Alex", "", 2))
}
