package business

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/internal/models"
)

// ClaimUserRewardsResult reports what a buyer claim settled.
type ClaimUserRewardsResult struct {
	Tokens uint64
	Excess uint64
	Refund uint64
}

// ClaimUserRewards settles a buyer's position after finalization. On a
// migrated pool the buyer takes a pro-rata slice of the sale bucket plus their
// slice of any over-target excess; on a failed pool the whole contribution is
// refunded. One shot per position per outcome.
func (s *Service) ClaimUserRewards(poolID uint, user string) (*ClaimUserRewardsResult, error) {
	now := s.now()

	var (
		result ClaimUserRewardsResult
		event  UserRewardsClaimedEvent
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		pool, err := lockPool(tx, poolID)
		if err != nil {
			return err
		}
		if !pool.Claimable() {
			return ErrInvalidStatus
		}

		var position models.UserPosition
		err = forUpdate(tx).
			Where("pool_id = ? AND \"user\" = ?", poolID, user).
			First(&position).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNothingToClaim
		}
		if err != nil {
			return err
		}
		if position.ContributedAmount == 0 {
			return ErrNothingToClaim
		}

		if pool.Status == models.StatusFailed {
			if position.Refunded {
				return ErrAlreadyClaimed
			}
			if err := vaultTransfer(tx, VaultAuthority, user, pool.QuoteMint, position.ContributedAmount); err != nil {
				return err
			}
			position.Refunded = true
			position.LastUpdated = now
			if err := tx.Save(&position).Error; err != nil {
				return err
			}
			result.Refund = position.ContributedAmount
		} else {
			if position.TokensClaimed {
				return ErrAlreadyClaimed
			}

			tokens, err := CalculateUserTokenShare(position.ContributedAmount, pool.SaleAllocation, pool.RaisedAmount)
			if err != nil {
				return err
			}
			var excess uint64
			if position.CanClaimExcess() {
				excess, err = CalculateUserExcessShare(position.ContributedAmount, pool.ExcessAmount, pool.RaisedAmount)
				if err != nil {
					return err
				}
			}

			if err := vaultTransfer(tx, VaultAuthority, user, pool.TokenMint, tokens); err != nil {
				return err
			}
			if err := vaultTransfer(tx, VaultAuthority, user, pool.QuoteMint, excess); err != nil {
				return err
			}

			position.TokensClaimed = true
			position.ExcessClaimed = true
			position.LastUpdated = now
			if err := tx.Save(&position).Error; err != nil {
				return err
			}
			result.Tokens = tokens
			result.Excess = excess
		}

		event = UserRewardsClaimedEvent{
			PoolID:           pool.ID,
			User:             user,
			TokenMint:        pool.TokenMint,
			TokensClaimed:    result.Tokens,
			ExcessClaimed:    result.Excess + result.Refund,
			UserContribution: position.ContributedAmount,
			PoolTotalRaised:  pool.RaisedAmount,
			Timestamp:        now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("User rewards claimed: pool %d, user %s, tokens %d, quote %d",
		event.PoolID, user, result.Tokens, result.Excess+result.Refund)

	s.emit(EventUserRewardsClaimed, event)
	return &result, nil
}

// ClaimCreatorTokens pays out the creator's vested allocation on a migrated
// pool. Claimable is cumulative-unlocked minus already-claimed, so repeated
// calls only ever pay the delta.
func (s *Service) ClaimCreatorTokens(poolID uint, creator string) (uint64, error) {
	now := s.now()

	var (
		claimed uint64
		event   CreatorTokensClaimedEvent
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		pool, err := lockPool(tx, poolID)
		if err != nil {
			return err
		}
		if pool.Creator != creator {
			return ErrNotCreator
		}
		if !pool.IsMigrated() {
			return ErrNotMigrated
		}

		claimable := pool.CreatorClaimable(now)
		if claimable == 0 {
			return ErrNothingToClaim
		}

		if err := vaultTransfer(tx, VaultAuthority, creator, pool.TokenMint, claimable); err != nil {
			return err
		}

		pool.CreatorClaimedTokens, err = checkedAdd(pool.CreatorClaimedTokens, claimable)
		if err != nil {
			return err
		}
		if err := tx.Save(pool).Error; err != nil {
			return err
		}

		claimed = claimable
		event = CreatorTokensClaimedEvent{
			PoolID:             pool.ID,
			Creator:            creator,
			TokenMint:          pool.TokenMint,
			ClaimedAmount:      claimable,
			TotalClaimed:       pool.CreatorClaimedTokens,
			TotalAllocation:    pool.CreatorAllocation,
			RemainingClaimable: pool.CreatorAllocation - pool.CreatorClaimedTokens,
			FullyUnlocked:      pool.CreatorClaimedTokens == pool.CreatorAllocation,
			Timestamp:          now,
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Infof("Creator tokens claimed: pool %d, creator %s, amount %d (total %d/%d)",
		event.PoolID, creator, claimed, event.TotalClaimed, event.TotalAllocation)

	s.emit(EventCreatorTokensClaimed, event)
	return claimed, nil
}
