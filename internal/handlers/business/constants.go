package business

// Quote amounts are denominated in the smallest unit of the quote token
// (lamports for a SOL quote).
const UnitsPerQuote = 1_000_000_000

const TokenDecimals = 6

// TotalSupply is fixed at 1 billion tokens for every launch.
const TotalSupply = 1_000_000_000 * 1_000_000

// Token allocation percentages. Must split the supply exactly.
const (
	CreatorAllocationPercent   = 30
	SaleAllocationPercent      = 50
	LiquidityAllocationPercent = 20
)

// Launch defaults, overridable per launch within the config bounds.
const (
	DefaultTargetAmount   = 100 * UnitsPerQuote
	DefaultLaunchDuration = 12 * 60 * 60

	DefaultCreatorLockDuration         = 30 * 24 * 60 * 60
	DefaultCreatorLinearUnlockDuration = 90 * 24 * 60 * 60
)

// Per-user contribution bounds, anti-monopolization.
const (
	MinContributionPerUser = UnitsPerQuote / 10
	MaxContributionPerUser = 3 * UnitsPerQuote
)

// Config defaults applied by initialize-config.
const (
	DefaultPointsPerUnit    = 1000
	DefaultMinTargetAmount  = 50 * UnitsPerQuote
	DefaultMaxTargetAmount  = 500 * UnitsPerQuote
	DefaultMinDuration      = 60 * 60
	DefaultMaxDuration      = 7 * 24 * 60 * 60
	DefaultMinStakeDuration = 24 * 60 * 60
)

// SwapFeeBps is the platform fee charged on venue swaps (0.05%).
const SwapFeeBps = 5

// VaultAuthority is the ledger owner key for platform-held reserves.
const VaultAuthority = "vault_authority"
