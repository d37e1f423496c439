package business

import (
	"errors"
)

// Typed errors for every validation failure. Operations abort on the first
// failure with no partial state mutation; handlers map these onto HTTP codes.
var (
	// Permission
	ErrUnauthorized = errors.New("unauthorized: only admin can perform this action")
	ErrNotCreator   = errors.New("not the creator of this launch pool")

	// State
	ErrInvalidStatus   = errors.New("invalid status for this operation")
	ErrLaunchNotActive = errors.New("launch pool is not active")
	ErrNotMigrated     = errors.New("launch pool not migrated")
	ErrLaunchFailed    = errors.New("launch pool has failed")
	ErrPlatformPaused  = errors.New("platform is currently paused")
	ErrConfigExists    = errors.New("global config already initialized")
	ErrConfigMissing   = errors.New("global config not initialized")

	// Time
	ErrNotStarted         = errors.New("launch has not started yet")
	ErrTimeWindowExpired  = errors.New("launch time window has expired")
	ErrTooEarlyToFinalize = errors.New("too early to finalize")
	ErrInvalidStartTime   = errors.New("start time must be in the future")

	// Parameter
	ErrInvalidTargetAmount    = errors.New("invalid target amount")
	ErrInvalidDuration        = errors.New("invalid duration")
	ErrInvalidTokenAllocation = errors.New("invalid token allocation")
	ErrInvalidPointsAmount    = errors.New("invalid points amount")
	ErrInsufficientPoints     = errors.New("insufficient points balance")
	ErrInvalidContribution    = errors.New("invalid contribution amount")
	ErrInvalidAmount          = errors.New("invalid amount")

	// Signature
	ErrInvalidSignature = errors.New("invalid signature")

	// Arithmetic
	ErrMathOverflow   = errors.New("math overflow")
	ErrDivisionByZero = errors.New("division by zero")

	// Claim
	ErrNothingToClaim           = errors.New("nothing to claim")
	ErrAlreadyClaimed           = errors.New("already claimed")
	ErrNoClaimableAmount        = errors.New("no claimable amount available")
	ErrInsufficientVaultBalance = errors.New("insufficient vault balance")

	// Liquidity
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// Staking
	ErrInvalidStakeDuration = errors.New("invalid stake duration")
	ErrStakeNotUnlocked     = errors.New("stake not unlocked yet")
	ErrNoStakeFound         = errors.New("no stake position found")
	ErrCannotStakeZero      = errors.New("cannot stake zero tokens")
)
