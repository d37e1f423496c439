package models

import (
	"time"
)

// GlobalConfig is the singleton platform configuration row.
// It is created once by initialize-config and only mutated by the admin.
type GlobalConfig struct {
	ID               uint   `gorm:"primarykey" json:"id"`
	Admin            string `gorm:"size:44;not null" json:"admin"`
	PointsSigner     string `gorm:"size:44;not null" json:"points_signer"`
	PointsPerUnit    uint64 `gorm:"not null;default:1000" json:"points_per_unit"`
	MinTargetAmount  uint64 `gorm:"not null" json:"min_target_amount"`
	MaxTargetAmount  uint64 `gorm:"not null" json:"max_target_amount"`
	MinDuration      int64  `gorm:"not null" json:"min_duration"`
	MaxDuration      int64  `gorm:"not null" json:"max_duration"`
	Paused           bool   `gorm:"default:false" json:"paused"`
	MinStakeDuration int64  `gorm:"not null" json:"min_stake_duration"`
	PoolCount        uint64 `gorm:"not null;default:0" json:"pool_count"`
	// Fixed pair address on the external swap venue
	SwapPair  string    `gorm:"size:44;not null" json:"swap_pair"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (GlobalConfig) TableName() string {
	return "global_config"
}
