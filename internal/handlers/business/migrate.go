package business

import (
	"fmt"
	"math/big"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/internal/models"
	"github.com/OramaLabs/launchpad-program/pkg/amm"
)

// MigrateLaunch seeds the AMM pool for a successful launch. Permissionless.
// sqrtPriceOverride, when non-empty, is a decimal Q64.64 sqrt-price the caller
// wants the pool opened at; otherwise the price is derived from the pool's own
// quote/base ratio. The liquidity allocation and the liquidity portion of the
// raise move to the venue; whatever the venue's rounding leaves behind is
// reconciled back into the pool's ledger, so claims always settle against
// measured amounts:
//
//	excess        = raised - quote actually consumed
//	sale bucket   = supply - creator allocation - base actually consumed
func (s *Service) MigrateLaunch(poolID uint, sqrtPriceOverride string) (*models.LaunchPool, error) {
	now := s.now()

	var (
		migrated models.LaunchPool
		event    LaunchMigratedEvent
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		pool, err := lockPool(tx, poolID)
		if err != nil {
			return err
		}
		if !pool.IsSuccess() {
			return ErrInvalidStatus
		}
		if pool.LiquidityAllocation == 0 || pool.LiquidityAmount == 0 {
			return ErrInsufficientLiquidity
		}

		var sqrtPrice *big.Int
		if sqrtPriceOverride != "" {
			sqrtPrice, err = amm.ParseSqrtPrice(sqrtPriceOverride)
			if err != nil {
				return fmt.Errorf("%w: sqrt price %q", ErrInvalidAmount, sqrtPriceOverride)
			}
		} else {
			sqrtPrice, err = amm.SqrtPriceFromPrice(pool.LiquidityAmount, pool.LiquidityAllocation)
			if err != nil {
				return err
			}
		}

		seed, err := s.venue.InitializePool(amm.InitializePoolParams{
			BaseMint:    pool.TokenMint,
			QuoteMint:   pool.QuoteMint,
			BaseAmount:  pool.LiquidityAllocation,
			QuoteAmount: pool.LiquidityAmount,
			SqrtPrice:   sqrtPrice,
		})
		if err != nil {
			return err
		}
		if seed.BaseConsumed > pool.LiquidityAllocation || seed.QuoteConsumed > pool.LiquidityAmount {
			return ErrMathOverflow
		}

		if err := vaultDebit(tx, VaultAuthority, pool.TokenMint, seed.BaseConsumed); err != nil {
			return err
		}
		if err := vaultDebit(tx, VaultAuthority, pool.QuoteMint, seed.QuoteConsumed); err != nil {
			return err
		}

		// reconcile against what the venue measured, not what was offered
		pool.ExcessAmount, err = checkedSub(pool.RaisedAmount, seed.QuoteConsumed)
		if err != nil {
			return err
		}
		saleBucket, err := checkedSub(pool.TotalSupply, pool.CreatorAllocation)
		if err != nil {
			return err
		}
		pool.SaleAllocation, err = checkedSub(saleBucket, seed.BaseConsumed)
		if err != nil {
			return err
		}
		pool.LiquidityAmount = seed.QuoteConsumed
		pool.LiquidityAllocation = seed.BaseConsumed

		pool.Status = models.StatusMigrated
		pool.CreatorUnlockStartTime = now
		ammPool := seed.Pool
		position := seed.Position
		nftAccount := seed.PositionNftAccount
		pool.AmmPool = &ammPool
		pool.AmmPosition = &position
		pool.AmmPositionNftAccount = &nftAccount

		if err := tx.Save(pool).Error; err != nil {
			return err
		}

		migrated = *pool
		event = LaunchMigratedEvent{
			PoolID:        pool.ID,
			AmmPool:       seed.Pool,
			Position:      seed.Position,
			Liquidity:     seed.Liquidity.String(),
			BaseConsumed:  seed.BaseConsumed,
			QuoteConsumed: seed.QuoteConsumed,
			ExcessAmount:  pool.ExcessAmount,
			Timestamp:     now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("Launch %d migrated: position %s, base %d, quote %d",
		migrated.ID, event.Position, event.BaseConsumed, event.QuoteConsumed)

	s.emit(EventLaunchMigrated, event)
	return &migrated, nil
}
