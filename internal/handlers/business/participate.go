package business

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/internal/models"
	"github.com/OramaLabs/launchpad-program/pkg/oracle"
)

// ParticipateParams spends oracle-signed points to contribute to an active
// launch. TotalPoints and Signature come from the points oracle; the signed
// message binds the user, the spend, the signed total and the pool index.
type ParticipateParams struct {
	PoolID      uint
	User        string
	PointsToUse uint64
	TotalPoints uint64
	Signature   []byte
}

// Participate converts points into quote capital and records the contribution.
func (s *Service) Participate(params ParticipateParams) (*models.UserPosition, error) {
	now := s.now()

	var (
		position models.UserPosition
		event    ParticipationEvent
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		config, err := lockConfig(tx)
		if err != nil {
			return err
		}
		if config.Paused {
			return ErrPlatformPaused
		}

		pool, err := lockPool(tx, params.PoolID)
		if err != nil {
			return err
		}
		if !pool.IsActive() {
			return ErrLaunchNotActive
		}
		if now < pool.StartTime {
			return ErrNotStarted
		}
		if now > pool.EndTime {
			return ErrTimeWindowExpired
		}

		message := oracle.FormatPointsMessage(params.User, params.PointsToUse, params.TotalPoints, pool.PoolIndex)
		if err := s.verifier.Verify(config.PointsSigner, message, params.Signature); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}

		var userPoint models.UserPoint
		err = forUpdate(tx).
			Where(models.UserPoint{User: params.User}).
			FirstOrCreate(&userPoint).Error
		if err != nil {
			return err
		}
		if err := validatePointsAmount(params.PointsToUse, params.TotalPoints, userPoint.PointsConsumed); err != nil {
			return err
		}

		amount, err := CalculateCapitalAllowance(params.PointsToUse, pool.PointsPerUnit)
		if err != nil {
			return err
		}

		err = forUpdate(tx).
			Where(models.UserPosition{User: params.User, PoolID: pool.ID}).
			FirstOrCreate(&position).Error
		if err != nil {
			return err
		}
		isFirst := position.ContributedAmount == 0

		if err := validateContributionAmount(amount, position.ContributedAmount); err != nil {
			return err
		}

		// capital moves into custody before any state is updated
		if err := vaultCredit(tx, VaultAuthority, pool.QuoteMint, amount); err != nil {
			return err
		}

		position.ContributedAmount, err = checkedAdd(position.ContributedAmount, amount)
		if err != nil {
			return err
		}
		position.PointsConsumed, err = checkedAdd(position.PointsConsumed, params.PointsToUse)
		if err != nil {
			return err
		}
		if isFirst {
			position.ParticipatedAt = now
		}
		position.LastUpdated = now
		if err := tx.Save(&position).Error; err != nil {
			return err
		}

		userPoint.PointsConsumed, err = checkedAdd(userPoint.PointsConsumed, params.PointsToUse)
		if err != nil {
			return err
		}
		if err := tx.Save(&userPoint).Error; err != nil {
			return err
		}

		pool.RaisedAmount, err = checkedAdd(pool.RaisedAmount, amount)
		if err != nil {
			return err
		}
		pool.TotalPointsConsumed, err = checkedAdd(pool.TotalPointsConsumed, params.PointsToUse)
		if err != nil {
			return err
		}
		if isFirst {
			pool.ParticipantsCount++
		}
		pool.RecomputeSplit()
		if err := tx.Save(pool).Error; err != nil {
			return err
		}

		event = ParticipationEvent{
			PoolID:               pool.ID,
			User:                 params.User,
			Amount:               amount,
			PointsUsed:           params.PointsToUse,
			TotalContribution:    position.ContributedAmount,
			PoolRaisedTotal:      pool.RaisedAmount,
			IsFirstParticipation: isFirst,
			ParticipantsCount:    pool.ParticipantsCount,
			Timestamp:            now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("Participation: pool %d, user %s, amount %d, points %d",
		event.PoolID, event.User, event.Amount, event.PointsUsed)

	s.emit(EventParticipation, event)
	return &position, nil
}
