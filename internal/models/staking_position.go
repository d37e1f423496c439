package models

import (
	"time"
)

// StakingPosition is a fixed-lock stake for one (user, mint) pair. Deleted on
// unstake; topping up an existing position adds to the amount without
// extending the original unlock time.
type StakingPosition struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	User      string `gorm:"size:44;not null;uniqueIndex:idx_stake_user_mint" json:"user"`
	TokenMint string `gorm:"size:44;not null;uniqueIndex:idx_stake_user_mint" json:"token_mint"`

	StakedAmount uint64 `gorm:"not null" json:"staked_amount"`
	LockDuration int64  `gorm:"not null" json:"lock_duration"`
	StakeTime    int64  `gorm:"not null" json:"stake_time"`
	UnlockTime   int64  `gorm:"not null" json:"unlock_time"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (StakingPosition) TableName() string {
	return "staking_position"
}

func (sp *StakingPosition) CanUnstake(currentTime int64) bool {
	return currentTime >= sp.UnlockTime
}
