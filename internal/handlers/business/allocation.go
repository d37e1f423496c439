package business

import (
	"math/big"
	"math/bits"
)

// checkedAdd returns a+b or ErrMathOverflow. All ledger mutations go through
// checked arithmetic; nothing wraps silently.
func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrMathOverflow
	}
	return sum, nil
}

func checkedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrMathOverflow
	}
	return diff, nil
}

// mulDivU64 computes floor(a * b / den) with a 128-bit intermediate.
func mulDivU64(a, b, den uint64) (uint64, error) {
	if den == 0 {
		return 0, ErrDivisionByZero
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= den {
		// quotient would not fit in 64 bits
		return 0, ErrMathOverflow
	}
	quo, _ := bits.Div64(hi, lo, den)
	return quo, nil
}

// CalculateTokenAllocations splits the total supply into the creator, sale and
// liquidity buckets. The percentages are required to split the supply exactly;
// a remainder means the chosen supply loses dust to floor rounding and the
// launch must not be created.
func CalculateTokenAllocations(totalSupply uint64) (creator, sale, liquidity uint64, err error) {
	if creator, err = mulDivU64(totalSupply, CreatorAllocationPercent, 100); err != nil {
		return 0, 0, 0, err
	}
	if sale, err = mulDivU64(totalSupply, SaleAllocationPercent, 100); err != nil {
		return 0, 0, 0, err
	}
	if liquidity, err = mulDivU64(totalSupply, LiquidityAllocationPercent, 100); err != nil {
		return 0, 0, 0, err
	}

	total, err := checkedAdd(creator, sale)
	if err != nil {
		return 0, 0, 0, err
	}
	total, err = checkedAdd(total, liquidity)
	if err != nil {
		return 0, 0, 0, err
	}
	if total != totalSupply {
		return 0, 0, 0, ErrInvalidTokenAllocation
	}
	return creator, sale, liquidity, nil
}

// CalculateCapitalAllowance converts points into a quote-unit contribution at
// the pool's configured rate: floor(points * UnitsPerQuote / pointsPerUnit).
func CalculateCapitalAllowance(points, pointsPerUnit uint64) (uint64, error) {
	if pointsPerUnit == 0 {
		return 0, ErrDivisionByZero
	}
	return mulDivU64(points, UnitsPerQuote, pointsPerUnit)
}

// CalculateUserTokenShare is the buyer's pro-rata slice of the sale
// allocation: floor(contributed * saleAllocation / raised). A pool that
// raised nothing owes nothing.
func CalculateUserTokenShare(contributed, saleAllocation, raised uint64) (uint64, error) {
	if raised == 0 {
		return 0, nil
	}
	share := new(big.Int).Mul(
		new(big.Int).SetUint64(contributed),
		new(big.Int).SetUint64(saleAllocation),
	)
	share.Div(share, new(big.Int).SetUint64(raised))
	if !share.IsUint64() {
		return 0, ErrMathOverflow
	}
	return share.Uint64(), nil
}

// CalculateUserExcessShare is the buyer's pro-rata slice of the capital raised
// beyond the target: floor(contributed * excess / raised).
func CalculateUserExcessShare(contributed, excess, raised uint64) (uint64, error) {
	if raised == 0 {
		return 0, nil
	}
	share := new(big.Int).Mul(
		new(big.Int).SetUint64(contributed),
		new(big.Int).SetUint64(excess),
	)
	share.Div(share, new(big.Int).SetUint64(raised))
	if !share.IsUint64() {
		return 0, ErrMathOverflow
	}
	return share.Uint64(), nil
}

// validatePointsAmount enforces the oracle-signed ceiling: the spend must be
// positive, within the signed total, and the lifetime consumption after this
// spend must not exceed the signed total (replay protection).
func validatePointsAmount(pointsToUse, totalPoints, pointsConsumed uint64) error {
	if pointsToUse == 0 {
		return ErrInvalidPointsAmount
	}
	if pointsToUse > totalPoints {
		return ErrInsufficientPoints
	}
	consumed, err := checkedAdd(pointsToUse, pointsConsumed)
	if err != nil {
		return err
	}
	if consumed > totalPoints {
		return ErrInsufficientPoints
	}
	return nil
}

// validateContributionAmount enforces the per-user min/max bounds.
func validateContributionAmount(amount, userCurrent uint64) error {
	if amount < MinContributionPerUser {
		return ErrInvalidContribution
	}
	total, err := checkedAdd(userCurrent, amount)
	if err != nil {
		return err
	}
	if total > MaxContributionPerUser {
		return ErrInvalidContribution
	}
	return nil
}
