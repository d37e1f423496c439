package models

import (
	"time"
)

// UserDividendRecord is the monotonic dividend watermark for one (user, mint)
// pair. TotalClaimed only ever grows; a signed total below it is rejected.
type UserDividendRecord struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	User      string `gorm:"size:44;not null;uniqueIndex:idx_user_mint" json:"user"`
	TokenMint string `gorm:"size:44;not null;uniqueIndex:idx_user_mint" json:"token_mint"`

	TotalClaimed uint64 `gorm:"not null;default:0" json:"total_claimed"`

	FirstClaimedAt int64 `gorm:"default:0" json:"first_claimed_at"`
	LastClaimedAt  int64 `gorm:"default:0" json:"last_claimed_at"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (UserDividendRecord) TableName() string {
	return "user_dividend_record"
}
