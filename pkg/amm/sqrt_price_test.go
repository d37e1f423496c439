package amm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrtPriceFromPrice(t *testing.T) {
	t.Run("Default Seeding Terms", func(t *testing.T) {
		// sqrt(100e9 / 200e12) in Q64.64
		price, err := SqrtPriceFromPrice(100*1_000_000_000, 200_000_000*1_000_000)
		require.NoError(t, err)

		expected, _ := new(big.Int).SetString("412481737123559485", 10)
		diff := new(big.Int).Abs(new(big.Int).Sub(price, expected))
		assert.True(t, diff.Cmp(big.NewInt(1)) <= 0, "got %s, want %s ±1", price, expected)
	})

	t.Run("Unit Price", func(t *testing.T) {
		price, err := SqrtPriceFromPrice(1, 1)
		require.NoError(t, err)

		one := new(big.Int).Lsh(big.NewInt(1), 64)
		assert.Zero(t, price.Cmp(one))
	})

	t.Run("Squares Back To The Ratio", func(t *testing.T) {
		price, err := SqrtPriceFromPrice(400, 100)
		require.NoError(t, err)

		// sqrt(4) = 2 in Q64.64
		two := new(big.Int).Lsh(big.NewInt(2), 64)
		assert.Zero(t, price.Cmp(two))
	})

	t.Run("Zero Base", func(t *testing.T) {
		_, err := SqrtPriceFromPrice(1, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestParseSqrtPrice(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		price, err := ParseSqrtPrice("412481737123559485")
		require.NoError(t, err)
		assert.Equal(t, "412481737123559485", price.String())
	})

	t.Run("Not A Number", func(t *testing.T) {
		_, err := ParseSqrtPrice("not-a-number")
		assert.Error(t, err)
	})

	t.Run("Wider Than 128 Bits", func(t *testing.T) {
		over := new(big.Int).Lsh(big.NewInt(1), 129)
		_, err := ParseSqrtPrice(over.String())
		assert.Error(t, err)
	})
}
