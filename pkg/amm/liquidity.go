package amm

import (
	"errors"
	"math/big"
)

var (
	ErrMathOverflow  = errors.New("math overflow")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Prices are Q64.64 square roots of the base/quote exchange rate, passed as
// big.Int because they occupy the full u128 range. All intermediates stay in
// big.Int so the double multiplication in the base branch (u64 * u128 * u128)
// never truncates.

// liquidityFromBase computes L = Δbase * sqrtP * sqrtPmax / (sqrtPmax - sqrtP).
func liquidityFromBase(baseAmount uint64, sqrtMaxPrice, sqrtPrice *big.Int) (*big.Int, error) {
	delta := new(big.Int).Sub(sqrtMaxPrice, sqrtPrice)
	if delta.Sign() <= 0 {
		return nil, ErrMathOverflow
	}

	prod := new(big.Int).SetUint64(baseAmount)
	prod.Mul(prod, sqrtPrice)
	prod.Mul(prod, sqrtMaxPrice)

	return prod.Div(prod, delta), nil
}

// liquidityFromQuote computes L = (Δquote << 128) / (sqrtP - sqrtPmin).
func liquidityFromQuote(quoteAmount uint64, sqrtMinPrice, sqrtPrice *big.Int) (*big.Int, error) {
	delta := new(big.Int).Sub(sqrtPrice, sqrtMinPrice)
	if delta.Sign() <= 0 {
		return nil, ErrMathOverflow
	}

	shifted := new(big.Int).Lsh(new(big.Int).SetUint64(quoteAmount), 128)
	return shifted.Div(shifted, delta), nil
}

// GetLiquidityForAddingLiquidity returns the initial pool liquidity supported
// by depositing baseAmount and quoteAmount at sqrtPrice inside the
// [sqrtMinPrice, sqrtMaxPrice] range: the minimum of the two single-sided
// liquidities, constrained by whichever side of the pair is scarcer.
func GetLiquidityForAddingLiquidity(
	baseAmount, quoteAmount uint64,
	sqrtPrice, sqrtMinPrice, sqrtMaxPrice *big.Int,
) (*big.Int, error) {
	if sqrtPrice.Cmp(sqrtMinPrice) < 0 || sqrtPrice.Cmp(sqrtMaxPrice) > 0 {
		return nil, ErrInvalidAmount
	}

	fromBase, err := liquidityFromBase(baseAmount, sqrtMaxPrice, sqrtPrice)
	if err != nil {
		return nil, err
	}
	fromQuote, err := liquidityFromQuote(quoteAmount, sqrtMinPrice, sqrtPrice)
	if err != nil {
		return nil, err
	}

	if fromBase.Cmp(fromQuote) > 0 {
		return fromQuote, nil
	}
	return fromBase, nil
}

// GetBaseAmountFromLiquidity is the base-side reserve a pool pulls for the
// given liquidity: Δbase = L * (sqrtPmax - sqrtP) / (sqrtP * sqrtPmax),
// rounded up when roundUp is set (pools round deposits against the payer).
func GetBaseAmountFromLiquidity(liquidity, sqrtPrice, sqrtMaxPrice *big.Int, roundUp bool) (uint64, error) {
	denominator := new(big.Int).Mul(sqrtPrice, sqrtMaxPrice)
	if denominator.Sign() == 0 {
		return 0, ErrMathOverflow
	}

	prod := new(big.Int).Mul(liquidity, new(big.Int).Sub(sqrtMaxPrice, sqrtPrice))
	if roundUp {
		prod.Add(prod, new(big.Int).Sub(denominator, big.NewInt(1)))
	}
	prod.Div(prod, denominator)
	if !prod.IsUint64() {
		return 0, ErrMathOverflow
	}
	return prod.Uint64(), nil
}

// GetQuoteAmountFromLiquidity is the quote-side reserve for the given
// liquidity: Δquote = L * (sqrtP - sqrtPmin) >> 128.
func GetQuoteAmountFromLiquidity(liquidity, sqrtPrice, sqrtMinPrice *big.Int, roundUp bool) (uint64, error) {
	prod := new(big.Int).Mul(liquidity, new(big.Int).Sub(sqrtPrice, sqrtMinPrice))
	if roundUp {
		one := new(big.Int).Lsh(big.NewInt(1), 128)
		prod.Add(prod, new(big.Int).Sub(one, big.NewInt(1)))
	}
	prod.Rsh(prod, 128)
	if !prod.IsUint64() {
		return 0, ErrMathOverflow
	}
	return prod.Uint64(), nil
}
