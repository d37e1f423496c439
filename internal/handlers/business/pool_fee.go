package business

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PoolFeeClaim reports the fee split from one claim run.
type PoolFeeClaim struct {
	TreasuryBase  uint64
	TreasuryQuote uint64
	CreatorBase   uint64
	CreatorQuote  uint64
}

// ClaimPoolFees collects the trading fees accrued by a migrated pool's AMM
// position and splits them 50/50 between the treasury (the config admin) and
// the pool creator. Odd units round toward the treasury. Permissionless.
func (s *Service) ClaimPoolFees(poolID uint) (*PoolFeeClaim, error) {
	now := s.now()

	var (
		claim PoolFeeClaim
		event PoolFeesClaimedEvent
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		config, err := lockConfig(tx)
		if err != nil {
			return err
		}

		pool, err := lockPool(tx, poolID)
		if err != nil {
			return err
		}
		if !pool.IsMigrated() || pool.AmmPool == nil || pool.AmmPosition == nil {
			return ErrNotMigrated
		}

		baseFees, quoteFees, err := s.venue.ClaimPositionFees(*pool.AmmPool, *pool.AmmPosition)
		if err != nil {
			return err
		}
		if baseFees == 0 && quoteFees == 0 {
			return ErrNoClaimableAmount
		}

		claim = PoolFeeClaim{
			CreatorBase:   baseFees / 2,
			CreatorQuote:  quoteFees / 2,
			TreasuryBase:  baseFees - baseFees/2,
			TreasuryQuote: quoteFees - quoteFees/2,
		}

		if err := vaultCredit(tx, config.Admin, pool.TokenMint, claim.TreasuryBase); err != nil {
			return err
		}
		if err := vaultCredit(tx, config.Admin, pool.QuoteMint, claim.TreasuryQuote); err != nil {
			return err
		}
		if err := vaultCredit(tx, pool.Creator, pool.TokenMint, claim.CreatorBase); err != nil {
			return err
		}
		if err := vaultCredit(tx, pool.Creator, pool.QuoteMint, claim.CreatorQuote); err != nil {
			return err
		}

		event = PoolFeesClaimedEvent{
			PoolID:        pool.ID,
			TreasuryBase:  claim.TreasuryBase,
			TreasuryQuote: claim.TreasuryQuote,
			CreatorBase:   claim.CreatorBase,
			CreatorQuote:  claim.CreatorQuote,
			Timestamp:     now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("Pool fees claimed: pool %d, treasury (%d, %d), creator (%d, %d)",
		event.PoolID, claim.TreasuryBase, claim.TreasuryQuote, claim.CreatorBase, claim.CreatorQuote)

	s.emit(EventPoolFeesClaimed, event)
	return &claim, nil
}
