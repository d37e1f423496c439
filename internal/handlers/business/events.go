package business

// Event names published to the launch_events queue and the websocket stream.
const (
	EventLaunchInitialized    = "launch_pool_initialized"
	EventParticipation        = "participation"
	EventLaunchFinalized      = "launch_finalized"
	EventLaunchMigrated       = "launch_migrated"
	EventUserRewardsClaimed   = "user_rewards_claimed"
	EventCreatorTokensClaimed = "creator_tokens_claimed"
	EventDividendClaimed      = "dividend_claimed"
	EventTokensStaked         = "tokens_staked"
	EventTokensUnstaked       = "tokens_unstaked"
	EventPoolFeesClaimed      = "pool_fees_claimed"
	EventSwapFeeCharged       = "swap_fee_charged"
)

type LaunchInitializedEvent struct {
	PoolID              uint   `json:"pool_id"`
	Creator             string `json:"creator"`
	TokenMint           string `json:"token_mint"`
	TokenName           string `json:"token_name"`
	TokenSymbol         string `json:"token_symbol"`
	TotalSupply         uint64 `json:"total_supply"`
	TargetAmount        uint64 `json:"target_amount"`
	PointsPerUnit       uint64 `json:"points_per_unit"`
	CreatorLockDuration int64  `json:"creator_lock_duration"`
	StartTime           int64  `json:"start_time"`
	EndTime             int64  `json:"end_time"`
}

type ParticipationEvent struct {
	PoolID               uint   `json:"pool_id"`
	User                 string `json:"user"`
	Amount               uint64 `json:"amount"`
	PointsUsed           uint64 `json:"points_used"`
	TotalContribution    uint64 `json:"total_contribution"`
	PoolRaisedTotal      uint64 `json:"pool_raised_total"`
	IsFirstParticipation bool   `json:"is_first_participation"`
	ParticipantsCount    uint32 `json:"participants_count"`
	Timestamp            int64  `json:"timestamp"`
}

type LaunchFinalizedEvent struct {
	PoolID              uint   `json:"pool_id"`
	Creator             string `json:"creator"`
	Success             bool   `json:"success"`
	RaisedAmount        uint64 `json:"raised_amount"`
	TargetAmount        uint64 `json:"target_amount"`
	LiquidityAmount     uint64 `json:"liquidity_amount"`
	ExcessAmount        uint64 `json:"excess_amount"`
	ParticipantsCount   uint32 `json:"participants_count"`
	TotalPointsConsumed uint64 `json:"total_points_consumed"`
	Timestamp           int64  `json:"timestamp"`
}

type LaunchMigratedEvent struct {
	PoolID        uint   `json:"pool_id"`
	AmmPool       string `json:"amm_pool"`
	Position      string `json:"position"`
	Liquidity     string `json:"liquidity"`
	BaseConsumed  uint64 `json:"base_consumed"`
	QuoteConsumed uint64 `json:"quote_consumed"`
	ExcessAmount  uint64 `json:"excess_amount"`
	Timestamp     int64  `json:"timestamp"`
}

type UserRewardsClaimedEvent struct {
	PoolID           uint   `json:"pool_id"`
	User             string `json:"user"`
	TokenMint        string `json:"token_mint"`
	TokensClaimed    uint64 `json:"tokens_claimed"`
	ExcessClaimed    uint64 `json:"excess_claimed"`
	UserContribution uint64 `json:"user_contribution"`
	PoolTotalRaised  uint64 `json:"pool_total_raised"`
	Timestamp        int64  `json:"timestamp"`
}

type CreatorTokensClaimedEvent struct {
	PoolID             uint   `json:"pool_id"`
	Creator            string `json:"creator"`
	TokenMint          string `json:"token_mint"`
	ClaimedAmount      uint64 `json:"claimed_amount"`
	TotalClaimed       uint64 `json:"total_claimed"`
	TotalAllocation    uint64 `json:"total_allocation"`
	RemainingClaimable uint64 `json:"remaining_claimable"`
	FullyUnlocked      bool   `json:"fully_unlocked"`
	Timestamp          int64  `json:"timestamp"`
}

type DividendClaimedEvent struct {
	User                string `json:"user"`
	TokenMint           string `json:"token_mint"`
	ClaimedAmount       uint64 `json:"claimed_amount"`
	TotalClaimed        uint64 `json:"total_claimed"`
	SignedTotalDividend uint64 `json:"signed_total_dividend"`
	Timestamp           int64  `json:"timestamp"`
}

type TokensStakedEvent struct {
	User              string `json:"user"`
	TokenMint         string `json:"token_mint"`
	Amount            uint64 `json:"amount"`
	TotalStaked       uint64 `json:"total_staked"`
	LockDuration      int64  `json:"lock_duration"`
	UnlockTime        int64  `json:"unlock_time"`
	StakeTime         int64  `json:"stake_time"`
	IsAdditionalStake bool   `json:"is_additional_stake"`
}

type TokensUnstakedEvent struct {
	User           string `json:"user"`
	TokenMint      string `json:"token_mint"`
	StakedAmount   uint64 `json:"staked_amount"`
	DurationStaked int64  `json:"duration_staked"`
	UnstakeTime    int64  `json:"unstake_time"`
}

type PoolFeesClaimedEvent struct {
	PoolID        uint   `json:"pool_id"`
	TreasuryBase  uint64 `json:"treasury_base"`
	TreasuryQuote uint64 `json:"treasury_quote"`
	CreatorBase   uint64 `json:"creator_base"`
	CreatorQuote  uint64 `json:"creator_quote"`
	Timestamp     int64  `json:"timestamp"`
}

type SwapFeeChargedEvent struct {
	User      string `json:"user"`
	AmountIn  uint64 `json:"amount_in"`
	FeeAmount uint64 `json:"fee_amount"`
	AmountOut uint64 `json:"amount_out"`
	Timestamp int64  `json:"timestamp"`
}
