package amm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default seeding terms: 200M tokens (6 decimals) against 100 SOL.
const (
	seedBaseAmount  = uint64(200_000_000 * 1_000_000)
	seedQuoteAmount = uint64(100 * 1_000_000_000)
)

func seedSqrtPrice(t *testing.T) *big.Int {
	t.Helper()
	price, err := SqrtPriceFromPrice(seedQuoteAmount, seedBaseAmount)
	require.NoError(t, err)
	return price
}

func TestGetLiquidityForAddingLiquidity(t *testing.T) {
	t.Run("Default Seeding", func(t *testing.T) {
		liquidity, err := GetLiquidityForAddingLiquidity(
			seedBaseAmount, seedQuoteAmount, seedSqrtPrice(t), MinSqrtPrice, MaxSqrtPrice)
		require.NoError(t, err)
		assert.Positive(t, liquidity.Sign())

		// the chosen liquidity never demands more than either offered side
		base, err := GetBaseAmountFromLiquidity(liquidity, seedSqrtPrice(t), MaxSqrtPrice, false)
		require.NoError(t, err)
		assert.LessOrEqual(t, base, seedBaseAmount)

		quote, err := GetQuoteAmountFromLiquidity(liquidity, seedSqrtPrice(t), MinSqrtPrice, false)
		require.NoError(t, err)
		assert.LessOrEqual(t, quote, seedQuoteAmount)
	})

	t.Run("Takes The Scarcer Side", func(t *testing.T) {
		price := seedSqrtPrice(t)

		full, err := GetLiquidityForAddingLiquidity(seedBaseAmount, seedQuoteAmount, price, MinSqrtPrice, MaxSqrtPrice)
		require.NoError(t, err)

		starved, err := GetLiquidityForAddingLiquidity(seedBaseAmount, seedQuoteAmount/10, price, MinSqrtPrice, MaxSqrtPrice)
		require.NoError(t, err)
		assert.Negative(t, starved.Cmp(full))
	})

	t.Run("Price Outside Range", func(t *testing.T) {
		outOfRange := new(big.Int).Sub(MinSqrtPrice, big.NewInt(1))
		_, err := GetLiquidityForAddingLiquidity(seedBaseAmount, seedQuoteAmount, outOfRange, MinSqrtPrice, MaxSqrtPrice)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Price At Max Bound", func(t *testing.T) {
		_, err := GetLiquidityForAddingLiquidity(seedBaseAmount, seedQuoteAmount, MaxSqrtPrice, MinSqrtPrice, MaxSqrtPrice)
		assert.ErrorIs(t, err, ErrMathOverflow)
	})
}

func TestAmountsFromLiquidityRounding(t *testing.T) {
	price := seedSqrtPrice(t)
	liquidity, err := GetLiquidityForAddingLiquidity(seedBaseAmount, seedQuoteAmount, price, MinSqrtPrice, MaxSqrtPrice)
	require.NoError(t, err)

	baseDown, err := GetBaseAmountFromLiquidity(liquidity, price, MaxSqrtPrice, false)
	require.NoError(t, err)
	baseUp, err := GetBaseAmountFromLiquidity(liquidity, price, MaxSqrtPrice, true)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, baseUp, baseDown)
	assert.LessOrEqual(t, baseUp-baseDown, uint64(1))

	quoteDown, err := GetQuoteAmountFromLiquidity(liquidity, price, MinSqrtPrice, false)
	require.NoError(t, err)
	quoteUp, err := GetQuoteAmountFromLiquidity(liquidity, price, MinSqrtPrice, true)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, quoteUp, quoteDown)
	assert.LessOrEqual(t, quoteUp-quoteDown, uint64(1))
}

func TestSimulatedVenue(t *testing.T) {
	t.Run("Initialize Pool Never Pulls More Than Offered", func(t *testing.T) {
		venue := NewSimulatedVenue()
		seed, err := venue.InitializePool(InitializePoolParams{
			BaseMint:    "base-mint",
			QuoteMint:   "quote-mint",
			BaseAmount:  seedBaseAmount,
			QuoteAmount: seedQuoteAmount,
			SqrtPrice:   seedSqrtPrice(t),
		})
		require.NoError(t, err)

		assert.LessOrEqual(t, seed.BaseConsumed, seedBaseAmount)
		assert.LessOrEqual(t, seed.QuoteConsumed, seedQuoteAmount)
		assert.Positive(t, seed.Liquidity.Sign())
		assert.NotEmpty(t, seed.Position)
	})

	t.Run("Fee Claim Drains The Position", func(t *testing.T) {
		venue := NewSimulatedVenue()
		venue.AccrueFees("pos", 1000, 2000)

		base, quote, err := venue.ClaimPositionFees("pool", "pos")
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), base)
		assert.Equal(t, uint64(2000), quote)

		base, quote, err = venue.ClaimPositionFees("pool", "pos")
		require.NoError(t, err)
		assert.Zero(t, base)
		assert.Zero(t, quote)
	})

	t.Run("Swap Enforces Slippage", func(t *testing.T) {
		venue := NewSimulatedVenue()
		_, err := venue.Swap(SwapParams{Pair: "pair", AmountIn: 100, MinAmountOut: 200})
		assert.ErrorIs(t, err, ErrSlippageExceeded)

		out, err := venue.Swap(SwapParams{Pair: "pair", AmountIn: 100, MinAmountOut: 100})
		require.NoError(t, err)
		assert.Equal(t, uint64(100), out)
	})
}
