package business

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/internal/models"
)

// FinalizeLaunch closes an active pool. Permissionless: anyone may call it
// once the window is over, and hitting the target ends the raise early. The
// outcome is Success when the raise covered the target, Failed otherwise.
func (s *Service) FinalizeLaunch(poolID uint) (*models.LaunchPool, error) {
	now := s.now()

	var (
		finalized models.LaunchPool
		event     LaunchFinalizedEvent
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		pool, err := lockPool(tx, poolID)
		if err != nil {
			return err
		}
		if !pool.IsActive() {
			return ErrLaunchNotActive
		}

		windowOver := now > pool.EndTime
		targetReached := pool.RaisedAmount >= pool.TargetAmount
		if !windowOver && !targetReached {
			return ErrTooEarlyToFinalize
		}

		if targetReached {
			pool.Status = models.StatusSuccess
		} else {
			pool.Status = models.StatusFailed
		}
		pool.FinalizedTime = now
		pool.RecomputeSplit()

		if err := tx.Save(pool).Error; err != nil {
			return err
		}

		finalized = *pool
		event = LaunchFinalizedEvent{
			PoolID:              pool.ID,
			Creator:             pool.Creator,
			Success:             targetReached,
			RaisedAmount:        pool.RaisedAmount,
			TargetAmount:        pool.TargetAmount,
			LiquidityAmount:     pool.LiquidityAmount,
			ExcessAmount:        pool.ExcessAmount,
			ParticipantsCount:   pool.ParticipantsCount,
			TotalPointsConsumed: pool.TotalPointsConsumed,
			Timestamp:           now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("Launch %d finalized: success=%t, raised %d / target %d",
		finalized.ID, event.Success, finalized.RaisedAmount, finalized.TargetAmount)

	s.emit(EventLaunchFinalized, event)
	return &finalized, nil
}
