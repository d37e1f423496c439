package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	day = int64(24 * 60 * 60)

	creatorAllocation = uint64(300_000_000 * 1_000_000)
)

func vestingPool() *LaunchPool {
	return &LaunchPool{
		Status:                      StatusMigrated,
		CreatorAllocation:           creatorAllocation,
		CreatorLockDuration:         30 * day,
		CreatorLinearUnlockDuration: 90 * day,
		CreatorUnlockStartTime:      1_000_000,
	}
}

func TestTotalUnlockedCreatorTokens(t *testing.T) {
	t.Run("Before Migration", func(t *testing.T) {
		p := vestingPool()
		p.CreatorUnlockStartTime = 0
		assert.Zero(t, p.TotalUnlockedCreatorTokens(1_000_000+365*day))
	})

	t.Run("Inside Cliff", func(t *testing.T) {
		p := vestingPool()
		assert.Zero(t, p.TotalUnlockedCreatorTokens(1_000_000+30*day-1))
	})

	t.Run("At Cliff End", func(t *testing.T) {
		p := vestingPool()
		assert.Zero(t, p.TotalUnlockedCreatorTokens(1_000_000+30*day))
	})

	t.Run("Halfway Through Linear", func(t *testing.T) {
		p := vestingPool()
		unlocked := p.TotalUnlockedCreatorTokens(1_000_000 + 30*day + 45*day)
		assert.Equal(t, creatorAllocation/2, unlocked)
	})

	t.Run("After Linear Window", func(t *testing.T) {
		p := vestingPool()
		assert.Equal(t, creatorAllocation, p.TotalUnlockedCreatorTokens(1_000_000+30*day+90*day))
		assert.Equal(t, creatorAllocation, p.TotalUnlockedCreatorTokens(1_000_000+365*day))
	})

	t.Run("Zero Linear Duration Unlocks Everything At Cliff", func(t *testing.T) {
		p := vestingPool()
		p.CreatorLinearUnlockDuration = 0
		assert.Equal(t, creatorAllocation, p.TotalUnlockedCreatorTokens(1_000_000+30*day))
	})
}

func TestCreatorClaimable(t *testing.T) {
	p := vestingPool()
	halfway := int64(1_000_000) + 30*day + 45*day

	t.Run("Full Delta When Nothing Claimed", func(t *testing.T) {
		assert.Equal(t, creatorAllocation/2, p.CreatorClaimable(halfway))
	})

	t.Run("Only The Delta After Prior Claims", func(t *testing.T) {
		p := vestingPool()
		p.CreatorClaimedTokens = creatorAllocation / 4
		assert.Equal(t, creatorAllocation/4, p.CreatorClaimable(halfway))
	})

	t.Run("Zero When Claims Caught Up", func(t *testing.T) {
		p := vestingPool()
		p.CreatorClaimedTokens = creatorAllocation / 2
		assert.Zero(t, p.CreatorClaimable(halfway))
	})
}

func TestRecomputeSplit(t *testing.T) {
	t.Run("Under Target", func(t *testing.T) {
		p := &LaunchPool{TargetAmount: 100, RaisedAmount: 60}
		p.RecomputeSplit()
		assert.Equal(t, uint64(60), p.LiquidityAmount)
		assert.Zero(t, p.ExcessAmount)
	})

	t.Run("Over Target", func(t *testing.T) {
		p := &LaunchPool{TargetAmount: 100, RaisedAmount: 150}
		p.RecomputeSplit()
		assert.Equal(t, uint64(100), p.LiquidityAmount)
		assert.Equal(t, uint64(50), p.ExcessAmount)
	})
}

func TestClaimable(t *testing.T) {
	assert.False(t, (&LaunchPool{Status: StatusActive}).Claimable())
	assert.False(t, (&LaunchPool{Status: StatusSuccess}).Claimable())
	assert.True(t, (&LaunchPool{Status: StatusFailed}).Claimable())
	assert.True(t, (&LaunchPool{Status: StatusMigrated}).Claimable())
}

func TestUnlockInfo(t *testing.T) {
	p := vestingPool()
	info := p.UnlockInfo(1_000_000 + 30*day + 45*day)

	assert.Equal(t, int64(1_000_000)+30*day, info.LockEndTime)
	assert.Equal(t, int64(1_000_000)+120*day, info.UnlockEndTime)
	assert.Equal(t, creatorAllocation/2, info.ClaimableAmount)
	assert.False(t, info.IsLocked)
}
