package kernel_test

import (
	"testing"

	"medledger/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create valid address", func(t *testing.T) {
		addr, err := kernel.NewAddress("One Post Street", "San Francisco", "CA", "USA", "94104")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "One Post Street", addr.Street())
		assert.Equal(t, "San Francisco", addr.City())
		assert.Equal(t, "CA", addr.State())
		assert.Equal(t, "USA", addr.Country())
		assert.Equal(t, "94104", addr.Zip())
	})

	t.Run("state is optional", func(t *testing.T) {
		addr, err := kernel.NewAddress("Miesian Plaza 50", "Dublin", "", "Ireland", "D02 Y754")

		require.NoError(t, err)
		assert.Empty(t, addr.State())
		assert.Equal(t, "Miesian Plaza 50, Dublin, Ireland D02 Y754", addr.String())
	})

	t.Run("should fail with missing required fields", func(t *testing.T) {
		_, err := kernel.NewAddress("", "", "CA", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "country")
		assert.Contains(t, err.Error(), "zip")
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var addr kernel.Address

		require.Error(t, addr.Validate())
	})
}

func TestAddress_IsEqual(t *testing.T) {
	addr1, _ := kernel.NewAddress("One CVS Drive", "Woonsocket", "RI", "USA", "02895")
	addr2, _ := kernel.NewAddress("One CVS Drive", "Woonsocket", "RI", "USA", "02895")
	addr3, _ := kernel.NewAddress("One Post Street", "San Francisco", "CA", "USA", "94104")

	t.Run("equal addresses", func(t *testing.T) {
		equal, err := addr1.IsEqual(addr2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different addresses", func(t *testing.T) {
		equal, err := addr1.IsEqual(addr3)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed operand fails", func(t *testing.T) {
		var zero kernel.Address

		_, err := addr1.IsEqual(zero)

		require.Error(t, err)
	})
}
