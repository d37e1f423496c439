package business

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTokenAllocations(t *testing.T) {
	t.Run("Standard Supply", func(t *testing.T) {
		creator, sale, liquidity, err := CalculateTokenAllocations(TotalSupply)
		require.NoError(t, err)

		assert.Equal(t, uint64(300_000_000*1_000_000), creator)
		assert.Equal(t, uint64(500_000_000*1_000_000), sale)
		assert.Equal(t, uint64(200_000_000*1_000_000), liquidity)
		assert.Equal(t, uint64(TotalSupply), creator+sale+liquidity)
	})

	t.Run("Supply With Rounding Dust", func(t *testing.T) {
		// 30%/50%/20% of 999 floors to 299+499+199 = 997
		_, _, _, err := CalculateTokenAllocations(999)
		assert.ErrorIs(t, err, ErrInvalidTokenAllocation)
	})
}

func TestCalculateCapitalAllowance(t *testing.T) {
	t.Run("Exact Conversion", func(t *testing.T) {
		// 1000 points at 1000 points per unit buys exactly one quote unit
		amount, err := CalculateCapitalAllowance(1000, DefaultPointsPerUnit)
		require.NoError(t, err)
		assert.Equal(t, uint64(UnitsPerQuote), amount)
	})

	t.Run("Floors Partial Units", func(t *testing.T) {
		amount, err := CalculateCapitalAllowance(1, 3)
		require.NoError(t, err)
		assert.Equal(t, uint64(333_333_333), amount)
	})

	t.Run("Zero Rate", func(t *testing.T) {
		_, err := CalculateCapitalAllowance(1000, 0)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestCalculateUserTokenShare(t *testing.T) {
	saleAllocation := uint64(500_000_000 * 1_000_000)

	t.Run("Half Of Raise", func(t *testing.T) {
		share, err := CalculateUserTokenShare(50*UnitsPerQuote, saleAllocation, 100*UnitsPerQuote)
		require.NoError(t, err)
		assert.Equal(t, saleAllocation/2, share)
	})

	t.Run("Floors", func(t *testing.T) {
		share, err := CalculateUserTokenShare(1, 10, 3)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), share)
	})

	t.Run("Zero Raise", func(t *testing.T) {
		share, err := CalculateUserTokenShare(1, saleAllocation, 0)
		require.NoError(t, err)
		assert.Zero(t, share)
	})

	t.Run("Large Values Do Not Overflow", func(t *testing.T) {
		share, err := CalculateUserTokenShare(math.MaxUint64/2, math.MaxUint64, math.MaxUint64)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64/2), share)
	})
}

func TestCalculateUserExcessShare(t *testing.T) {
	// raised 150, target 100, so 50 excess; a 30-unit contributor gets 10 back
	share, err := CalculateUserExcessShare(30*UnitsPerQuote, 50*UnitsPerQuote, 150*UnitsPerQuote)
	require.NoError(t, err)
	assert.Equal(t, uint64(10*UnitsPerQuote), share)
}

func TestValidatePointsAmount(t *testing.T) {
	t.Run("Valid Spend", func(t *testing.T) {
		assert.NoError(t, validatePointsAmount(500, 1000, 300))
	})

	t.Run("Zero Spend", func(t *testing.T) {
		assert.ErrorIs(t, validatePointsAmount(0, 1000, 0), ErrInvalidPointsAmount)
	})

	t.Run("Spend Above Signed Total", func(t *testing.T) {
		assert.ErrorIs(t, validatePointsAmount(1001, 1000, 0), ErrInsufficientPoints)
	})

	t.Run("Lifetime Ceiling", func(t *testing.T) {
		// 300 already consumed, spending 701 would exceed the signed 1000
		assert.ErrorIs(t, validatePointsAmount(701, 1000, 300), ErrInsufficientPoints)
		assert.NoError(t, validatePointsAmount(700, 1000, 300))
	})
}

func TestValidateContributionAmount(t *testing.T) {
	t.Run("Below Minimum", func(t *testing.T) {
		assert.ErrorIs(t, validateContributionAmount(MinContributionPerUser-1, 0), ErrInvalidContribution)
	})

	t.Run("At Bounds", func(t *testing.T) {
		assert.NoError(t, validateContributionAmount(MinContributionPerUser, 0))
		assert.NoError(t, validateContributionAmount(MaxContributionPerUser, 0))
	})

	t.Run("Cumulative Above Maximum", func(t *testing.T) {
		assert.ErrorIs(t, validateContributionAmount(UnitsPerQuote, 2*UnitsPerQuote+UnitsPerQuote/2), ErrInvalidContribution)
	})
}

func TestCheckedMath(t *testing.T) {
	t.Run("Add Overflow", func(t *testing.T) {
		_, err := checkedAdd(math.MaxUint64, 1)
		assert.ErrorIs(t, err, ErrMathOverflow)
	})

	t.Run("Sub Underflow", func(t *testing.T) {
		_, err := checkedSub(0, 1)
		assert.ErrorIs(t, err, ErrMathOverflow)
	})

	t.Run("MulDiv Quotient Overflow", func(t *testing.T) {
		_, err := mulDivU64(math.MaxUint64, math.MaxUint64, 1)
		assert.ErrorIs(t, err, ErrMathOverflow)
	})

	t.Run("MulDiv Wide Intermediate", func(t *testing.T) {
		// a*b overflows u64 but the quotient fits
		got, err := mulDivU64(math.MaxUint64, 100, 200)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64/2), got)
	})
}
