package amm

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// MinSqrtPrice and MaxSqrtPrice are the Q64.64 full-range pool bounds
// (sqrt(2^-128) and sqrt(2^128) scaled by 2^64).
var (
	MinSqrtPrice, _ = new(big.Int).SetString("4295048016", 10)
	MaxSqrtPrice, _ = new(big.Int).SetString("79226673521066979257578248091", 10)
)

// SqrtPriceFromPrice converts a base/quote price ratio into a Q64.64
// sqrt-price: floor(sqrt(quote/base) * 2^64). Decimal carries the ratio so
// small prices (a 1e15-lamport pool against a 1e9-lamport raise) keep their
// precision before the square root.
func SqrtPriceFromPrice(quoteAmount, baseAmount uint64) (*big.Int, error) {
	if baseAmount == 0 {
		return nil, ErrInvalidAmount
	}

	ratio := decimal.NewFromUint64(quoteAmount).Div(decimal.NewFromUint64(baseAmount))

	f, _ := new(big.Float).SetPrec(200).SetString(ratio.String())
	root := new(big.Float).SetPrec(200).Sqrt(f)
	root.Mul(root, new(big.Float).SetPrec(200).SetInt(new(big.Int).Lsh(big.NewInt(1), 64)))

	out, _ := root.Int(nil)
	if out.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	return out, nil
}

// ParseSqrtPrice parses a decimal-string u128 sqrt-price.
func ParseSqrtPrice(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() <= 0 || v.BitLen() > 128 {
		return nil, ErrInvalidAmount
	}
	return v, nil
}
