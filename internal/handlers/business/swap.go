package business

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/pkg/amm"
)

// SwapParams routes a swap through the configured venue pair. The platform
// fee comes off the input before the venue sees it.
type SwapParams struct {
	User         string
	QuoteMint    string
	AmountIn     uint64
	MinAmountOut uint64
}

// SwapResult reports the fee taken and the venue output.
type SwapResult struct {
	FeeAmount uint64
	AmountOut uint64
}

// Swap charges the flat platform fee, forwards the remainder to the venue's
// fixed pair and enforces the caller's slippage bound on the venue output.
func (s *Service) Swap(params SwapParams) (*SwapResult, error) {
	now := s.now()

	if params.AmountIn == 0 {
		return nil, ErrInvalidAmount
	}

	var (
		result SwapResult
		event  SwapFeeChargedEvent
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		config, err := lockConfig(tx)
		if err != nil {
			return err
		}
		if config.Paused {
			return ErrPlatformPaused
		}

		fee, err := mulDivU64(params.AmountIn, SwapFeeBps, 10_000)
		if err != nil {
			return err
		}
		netIn := params.AmountIn - fee

		if err := vaultCredit(tx, config.Admin, params.QuoteMint, fee); err != nil {
			return err
		}

		amountOut, err := s.venue.Swap(amm.SwapParams{
			Pair:         config.SwapPair,
			User:         params.User,
			AmountIn:     netIn,
			MinAmountOut: params.MinAmountOut,
		})
		if err != nil {
			return err
		}

		result = SwapResult{FeeAmount: fee, AmountOut: amountOut}
		event = SwapFeeChargedEvent{
			User:      params.User,
			AmountIn:  params.AmountIn,
			FeeAmount: fee,
			AmountOut: amountOut,
			Timestamp: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("Swap: user %s, in %d (fee %d), out %d",
		params.User, params.AmountIn, result.FeeAmount, result.AmountOut)

	s.emit(EventSwapFeeCharged, event)
	return &result, nil
}
