package business

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/internal/models"
)

// StakeParams locks tokens for a fixed duration. A top-up on an existing
// position adds to the staked amount and leaves the original unlock time
// alone, so later stakes never extend the lock.
type StakeParams struct {
	User         string
	TokenMint    string
	Amount       uint64
	LockDuration int64
}

func (s *Service) Stake(params StakeParams) (*models.StakingPosition, error) {
	now := s.now()

	if params.Amount == 0 {
		return nil, ErrCannotStakeZero
	}

	var (
		position models.StakingPosition
		event    TokensStakedEvent
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		config, err := lockConfig(tx)
		if err != nil {
			return err
		}
		if err := validateStakeParams(config, params.LockDuration); err != nil {
			return err
		}

		if err := vaultCredit(tx, VaultAuthority, params.TokenMint, params.Amount); err != nil {
			return err
		}

		err = forUpdate(tx).
			Where(models.StakingPosition{User: params.User, TokenMint: params.TokenMint}).
			First(&position).Error
		isNew := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !isNew {
			return err
		}

		if isNew {
			position = models.StakingPosition{
				User:         params.User,
				TokenMint:    params.TokenMint,
				StakedAmount: params.Amount,
				LockDuration: params.LockDuration,
				StakeTime:    now,
				UnlockTime:   now + params.LockDuration,
			}
			if err := tx.Create(&position).Error; err != nil {
				return err
			}
		} else {
			position.StakedAmount, err = checkedAdd(position.StakedAmount, params.Amount)
			if err != nil {
				return err
			}
			if err := tx.Save(&position).Error; err != nil {
				return err
			}
		}

		event = TokensStakedEvent{
			User:              params.User,
			TokenMint:         params.TokenMint,
			Amount:            params.Amount,
			TotalStaked:       position.StakedAmount,
			LockDuration:      position.LockDuration,
			UnlockTime:        position.UnlockTime,
			StakeTime:         position.StakeTime,
			IsAdditionalStake: !isNew,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("Stake: user %s, mint %s, amount %d (total %d, unlock %d)",
		params.User, params.TokenMint, params.Amount, event.TotalStaked, event.UnlockTime)

	s.emit(EventTokensStaked, event)
	return &position, nil
}

// Unstake returns the whole position once the lock has expired and deletes
// the row. Partial withdrawals are not supported.
func (s *Service) Unstake(user, tokenMint string) (uint64, error) {
	now := s.now()

	var (
		returned uint64
		event    TokensUnstakedEvent
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var position models.StakingPosition
		err := forUpdate(tx).
			Where(models.StakingPosition{User: user, TokenMint: tokenMint}).
			First(&position).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoStakeFound
		}
		if err != nil {
			return err
		}
		if !position.CanUnstake(now) {
			return ErrStakeNotUnlocked
		}

		if err := vaultTransfer(tx, VaultAuthority, user, tokenMint, position.StakedAmount); err != nil {
			return err
		}
		if err := tx.Delete(&position).Error; err != nil {
			return err
		}

		returned = position.StakedAmount
		event = TokensUnstakedEvent{
			User:           user,
			TokenMint:      tokenMint,
			StakedAmount:   position.StakedAmount,
			DurationStaked: now - position.StakeTime,
			UnstakeTime:    now,
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Infof("Unstake: user %s, mint %s, amount %d", user, tokenMint, returned)

	s.emit(EventTokensUnstaked, event)
	return returned, nil
}

// GetStakingPosition returns the stake row for (user, mint), if any.
func (s *Service) GetStakingPosition(user, mint string) (*models.StakingPosition, error) {
	var position models.StakingPosition
	err := s.db.Where("\"user\" = ? AND token_mint = ?", user, mint).First(&position).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}
