package models

import (
	"time"
)

// UserPosition is one user's contribution record in one launch pool. Created
// on first participation and kept forever so claim flags survive.
type UserPosition struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	User   string `gorm:"size:44;not null;uniqueIndex:idx_user_pool" json:"user"`
	PoolID uint   `gorm:"not null;uniqueIndex:idx_user_pool" json:"pool_id"`

	ContributedAmount uint64 `gorm:"not null;default:0" json:"contributed_amount"`
	PointsConsumed    uint64 `gorm:"not null;default:0" json:"points_consumed"`

	ExcessClaimed bool `gorm:"default:false" json:"excess_claimed"`
	TokensClaimed bool `gorm:"default:false" json:"tokens_claimed"`
	Refunded      bool `gorm:"default:false" json:"refunded"`

	ParticipatedAt int64 `gorm:"default:0" json:"participated_at"`
	LastUpdated    int64 `gorm:"default:0" json:"last_updated"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (UserPosition) TableName() string {
	return "user_position"
}

// CanClaimExcess reports whether the position still has an excess refund owed.
func (up *UserPosition) CanClaimExcess() bool {
	return up.ContributedAmount > 0 && !up.ExcessClaimed && !up.Refunded
}

// UserPoint is the lifetime points-consumed counter, one row per user across
// all pools. Monotonic non-decreasing.
type UserPoint struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	User           string    `gorm:"size:44;not null;uniqueIndex" json:"user"`
	PointsConsumed uint64    `gorm:"not null;default:0" json:"points_consumed"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (UserPoint) TableName() string {
	return "user_point"
}
