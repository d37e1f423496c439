package amm

import (
	"errors"
	"math/big"
)

var ErrSlippageExceeded = errors.New("swap output below minimum")

// InitializePoolParams is the seed request handed to the external AMM.
type InitializePoolParams struct {
	BaseMint    string
	QuoteMint   string
	BaseAmount  uint64
	QuoteAmount uint64
	SqrtPrice   *big.Int
}

// SeedResult reports what the AMM actually consumed. Callers reconcile their
// own ledgers against these measured amounts, not the requested ones.
type SeedResult struct {
	Pool               string
	Position           string
	PositionNftAccount string
	Liquidity          *big.Int
	BaseConsumed       uint64
	QuoteConsumed      uint64
}

// SwapParams describes a swap on the external venue, net of platform fees.
type SwapParams struct {
	Pair         string
	User         string
	AmountIn     uint64
	MinAmountOut uint64
}

// Venue is the external AMM/swap collaborator. The production implementation
// submits transactions to the on-chain programs; SimulatedVenue mirrors their
// rounding for development and tests.
type Venue interface {
	InitializePool(params InitializePoolParams) (*SeedResult, error)
	ClaimPositionFees(pool, position string) (baseFees, quoteFees uint64, err error)
	Swap(params SwapParams) (amountOut uint64, err error)
}

// SimulatedVenue prices deposits exactly like a constant-product pool with
// full-range liquidity: it computes the pool liquidity from the offered
// amounts and pulls back the reserves that liquidity actually needs, rounding
// against the depositor. The consumed amounts can come in under the offer,
// which is precisely the rounding gap the settlement layer must absorb.
type SimulatedVenue struct {
	feeBaseReserve  map[string]uint64
	feeQuoteReserve map[string]uint64
}

func NewSimulatedVenue() *SimulatedVenue {
	return &SimulatedVenue{
		feeBaseReserve:  make(map[string]uint64),
		feeQuoteReserve: make(map[string]uint64),
	}
}

func (v *SimulatedVenue) InitializePool(params InitializePoolParams) (*SeedResult, error) {
	liquidity, err := GetLiquidityForAddingLiquidity(
		params.BaseAmount,
		params.QuoteAmount,
		params.SqrtPrice,
		MinSqrtPrice,
		MaxSqrtPrice,
	)
	if err != nil {
		return nil, err
	}

	baseUsed, err := GetBaseAmountFromLiquidity(liquidity, params.SqrtPrice, MaxSqrtPrice, true)
	if err != nil {
		return nil, err
	}
	quoteUsed, err := GetQuoteAmountFromLiquidity(liquidity, params.SqrtPrice, MinSqrtPrice, true)
	if err != nil {
		return nil, err
	}

	// round-up can land one unit over the offer; the pool never pulls more
	// than it was given
	if baseUsed > params.BaseAmount {
		baseUsed = params.BaseAmount
	}
	if quoteUsed > params.QuoteAmount {
		quoteUsed = params.QuoteAmount
	}

	pool := "sim-pool-" + params.BaseMint
	return &SeedResult{
		Pool:               pool,
		Position:           "sim-position-" + params.BaseMint,
		PositionNftAccount: "sim-position-nft-" + params.BaseMint,
		Liquidity:          liquidity,
		BaseConsumed:       baseUsed,
		QuoteConsumed:      quoteUsed,
	}, nil
}

func (v *SimulatedVenue) ClaimPositionFees(pool, position string) (uint64, uint64, error) {
	base := v.feeBaseReserve[position]
	quote := v.feeQuoteReserve[position]
	v.feeBaseReserve[position] = 0
	v.feeQuoteReserve[position] = 0
	return base, quote, nil
}

// AccrueFees credits pending position fees, used by tests to stage fee income.
func (v *SimulatedVenue) AccrueFees(position string, base, quote uint64) {
	v.feeBaseReserve[position] += base
	v.feeQuoteReserve[position] += quote
}

func (v *SimulatedVenue) Swap(params SwapParams) (uint64, error) {
	// flat 1:1 venue; slippage still enforced so the wrapper's error path is
	// exercised
	if params.AmountIn < params.MinAmountOut {
		return 0, ErrSlippageExceeded
	}
	return params.AmountIn, nil
}
