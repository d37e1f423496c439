package models

import (
	"math/big"
	"time"
)

// LaunchStatus is the lifecycle state of a launch pool.
type LaunchStatus string

const (
	StatusInitialized LaunchStatus = "initialized" // created, vaults funded, not yet open
	StatusActive      LaunchStatus = "active"      // fundraising in progress
	StatusSuccess     LaunchStatus = "success"     // target reached, waiting for pool migration
	StatusFailed      LaunchStatus = "failed"      // target missed, refunds only
	StatusMigrated    LaunchStatus = "migrated"    // liquidity seeded on the AMM
)

// LaunchPool is one fundraising campaign with its own token, target and timeline.
type LaunchPool struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Creator string `gorm:"size:44;not null" json:"creator"`

	TokenMint  string `gorm:"size:44;not null" json:"token_mint"`
	TokenVault string `gorm:"size:44;not null" json:"token_vault"`
	QuoteMint  string `gorm:"size:44;not null" json:"quote_mint"`
	QuoteVault string `gorm:"size:44;not null" json:"quote_vault"`

	TokenName   string `gorm:"size:64;not null" json:"token_name"`
	TokenSymbol string `gorm:"size:16;not null" json:"token_symbol"`
	TokenURI    string `gorm:"size:256" json:"token_uri"`

	Status LaunchStatus `gorm:"size:20;not null;default:'initialized'" json:"status"`

	// Token allocation (creator + sale + liquidity == total supply)
	TotalSupply         uint64 `gorm:"not null" json:"total_supply"`
	CreatorAllocation   uint64 `gorm:"not null" json:"creator_allocation"`
	SaleAllocation      uint64 `gorm:"not null" json:"sale_allocation"`
	LiquidityAllocation uint64 `gorm:"not null" json:"liquidity_allocation"`

	// Fundraising progress, all in quote units
	TargetAmount    uint64 `gorm:"not null" json:"target_amount"`
	RaisedAmount    uint64 `gorm:"not null;default:0" json:"raised_amount"`
	LiquidityAmount uint64 `gorm:"not null;default:0" json:"liquidity_amount"`
	ExcessAmount    uint64 `gorm:"not null;default:0" json:"excess_amount"`

	StartTime     int64 `gorm:"not null" json:"start_time"`
	EndTime       int64 `gorm:"not null" json:"end_time"`
	FinalizedTime int64 `gorm:"default:0" json:"finalized_time"`

	PointsPerUnit       uint64 `gorm:"not null" json:"points_per_unit"`
	TotalPointsConsumed uint64 `gorm:"not null;default:0" json:"total_points_consumed"`
	ParticipantsCount   uint32 `gorm:"not null;default:0" json:"participants_count"`

	// Creator vesting: cliff then linear unlock, anchored at migration time
	CreatorLockDuration         int64  `gorm:"not null" json:"creator_lock_duration"`
	CreatorLinearUnlockDuration int64  `gorm:"not null" json:"creator_linear_unlock_duration"`
	CreatorUnlockStartTime      int64  `gorm:"default:0" json:"creator_unlock_start_time"`
	CreatorClaimedTokens        uint64 `gorm:"not null;default:0" json:"creator_claimed_tokens"`

	PoolIndex uint64 `gorm:"not null" json:"pool_index"`

	// AMM references, set only after migration
	AmmPool               *string `gorm:"size:44" json:"amm_pool,omitempty"`
	AmmPosition           *string `gorm:"size:44" json:"amm_position,omitempty"`
	AmmPositionNftAccount *string `gorm:"size:44" json:"amm_position_nft_account,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (LaunchPool) TableName() string {
	return "launch_pool"
}

func (p *LaunchPool) IsActive() bool {
	return p.Status == StatusActive
}

func (p *LaunchPool) IsSuccess() bool {
	return p.Status == StatusSuccess
}

func (p *LaunchPool) IsMigrated() bool {
	return p.Status == StatusMigrated
}

// Claimable reports whether post-finalization claims may run against the pool.
func (p *LaunchPool) Claimable() bool {
	return p.Status == StatusFailed || p.Status == StatusMigrated
}

// RecomputeSplit refreshes LiquidityAmount/ExcessAmount from RaisedAmount,
// keeping liquidity + excess == min(raised, target).
func (p *LaunchPool) RecomputeSplit() {
	if p.RaisedAmount > p.TargetAmount {
		p.LiquidityAmount = p.TargetAmount
		p.ExcessAmount = p.RaisedAmount - p.TargetAmount
	} else {
		p.LiquidityAmount = p.RaisedAmount
		p.ExcessAmount = 0
	}
}

// TotalUnlockedCreatorTokens returns the cumulative creator amount unlocked at
// currentTime. Zero until migration sets CreatorUnlockStartTime, zero through
// the cliff, then linear up to the full allocation. The linear step multiplies
// before dividing in big.Int so a u64 allocation times a u64 elapsed window
// cannot overflow.
func (p *LaunchPool) TotalUnlockedCreatorTokens(currentTime int64) uint64 {
	if p.CreatorUnlockStartTime == 0 {
		return 0
	}

	lockEnd := p.CreatorUnlockStartTime + p.CreatorLockDuration
	if currentTime < lockEnd {
		return 0
	}

	if p.CreatorLinearUnlockDuration == 0 {
		return p.CreatorAllocation
	}

	unlockEnd := lockEnd + p.CreatorLinearUnlockDuration
	if currentTime >= unlockEnd {
		return p.CreatorAllocation
	}

	elapsed := new(big.Int).SetInt64(currentTime - lockEnd)
	total := new(big.Int).SetUint64(p.CreatorAllocation)
	window := new(big.Int).SetInt64(p.CreatorLinearUnlockDuration)

	unlocked := new(big.Int).Mul(elapsed, total)
	unlocked.Div(unlocked, window)
	if unlocked.Cmp(total) > 0 {
		return p.CreatorAllocation
	}
	return unlocked.Uint64()
}

// CreatorClaimable is the portion unlocked at currentTime that the creator has
// not claimed yet.
func (p *LaunchPool) CreatorClaimable(currentTime int64) uint64 {
	unlocked := p.TotalUnlockedCreatorTokens(currentTime)
	if unlocked <= p.CreatorClaimedTokens {
		return 0
	}
	return unlocked - p.CreatorClaimedTokens
}

// CreatorTokensLocked reports whether the creator allocation is still inside
// the cliff window.
func (p *LaunchPool) CreatorTokensLocked(currentTime int64) bool {
	if p.CreatorUnlockStartTime == 0 {
		return true
	}
	return currentTime < p.CreatorUnlockStartTime+p.CreatorLockDuration
}

// CreatorUnlockInfo summarizes the vesting schedule for API responses.
type CreatorUnlockInfo struct {
	LockEndTime     int64  `json:"lock_end_time"`
	UnlockEndTime   int64  `json:"unlock_end_time"`
	ClaimableAmount uint64 `json:"claimable_amount"`
	IsLocked        bool   `json:"is_locked"`
}

func (p *LaunchPool) UnlockInfo(currentTime int64) CreatorUnlockInfo {
	lockEnd := p.CreatorUnlockStartTime + p.CreatorLockDuration
	return CreatorUnlockInfo{
		LockEndTime:     lockEnd,
		UnlockEndTime:   lockEnd + p.CreatorLinearUnlockDuration,
		ClaimableAmount: p.CreatorClaimable(currentTime),
		IsLocked:        p.CreatorTokensLocked(currentTime),
	}
}
