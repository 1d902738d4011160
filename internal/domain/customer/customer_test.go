package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with bronze membership", func(t *testing.T) {
		c, err := NewCustomer("Ada", "Lovelace", "ada@example.com", "+1 555-0100")
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.Equal(t, "Ada", c.FirstName)
		assert.Equal(t, "ada@example.com", c.Email)
		assert.Equal(t, MembershipBronze, c.Membership)
		assert.Equal(t, "Ada Lovelace", c.FullName())
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "missing@tld"} {
			_, err := NewCustomer("Ada", "Lovelace", email, "")
			require.Error(t, err, "email %q", email)
		}
	})

	t.Run("fails with invalid phone", func(t *testing.T) {
		_, err := NewCustomer("Ada", "Lovelace", "ada@example.com", "call me maybe")
		require.Error(t, err)
	})

	t.Run("allows empty phone", func(t *testing.T) {
		_, err := NewCustomer("Ada", "Lovelace", "ada@example.com", "")
		require.NoError(t, err)
	})
}

func TestCustomerMembership(t *testing.T) {
	c, err := NewCustomer("Ada", "Lovelace", "ada@example.com", "")
	require.NoError(t, err)

	require.NoError(t, c.SetMembership(MembershipGold))
	assert.Equal(t, MembershipGold, c.Membership)

	err = c.SetMembership("platinum")
	require.Error(t, err)
	assert.Equal(t, MembershipGold, c.Membership)
}

func TestCustomerBirthDate(t *testing.T) {
	c, err := NewCustomer("Ada", "Lovelace", "ada@example.com", "")
	require.NoError(t, err)

	past := time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, c.SetBirthDate(&past))
	assert.Equal(t, &past, c.BirthDate)

	future := time.Now().Add(24 * time.Hour)
	require.Error(t, c.SetBirthDate(&future))

	require.NoError(t, c.SetBirthDate(nil))
	assert.Nil(t, c.BirthDate)
}
