package business

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/OramaLabs/launchpad-program/internal/models"
	"github.com/OramaLabs/launchpad-program/pkg/amm"
	"github.com/OramaLabs/launchpad-program/pkg/oracle"
)

// testHarness drives the settlement operations end to end against an
// in-memory database, with a controllable clock and a real oracle signer.
type testHarness struct {
	svc    *Service
	venue  *amm.SimulatedVenue
	signer solana.PrivateKey
	now    int64
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// one connection, so every session sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.GlobalConfig{},
		&models.LaunchPool{},
		&models.UserPosition{},
		&models.UserPoint{},
		&models.UserDividendRecord{},
		&models.StakingPosition{},
		&models.VaultAccount{},
	))

	h := &testHarness{
		venue:  amm.NewSimulatedVenue(),
		signer: solana.NewWallet().PrivateKey,
		now:    1_700_000_000,
	}
	h.svc = NewService(db, oracle.NewEd25519Verifier(), h.venue, nil).
		WithClock(func() int64 { return h.now })
	return h
}

func (h *testHarness) initConfig(t *testing.T) *models.GlobalConfig {
	t.Helper()
	minTarget := uint64(1 * UnitsPerQuote)
	config, err := h.svc.InitializeConfig(InitializeConfigParams{
		Admin:           "admin",
		PointsSigner:    h.signer.PublicKey().String(),
		SwapPair:        "test-pair",
		MinTargetAmount: &minTarget,
	})
	require.NoError(t, err)
	return config
}

func (h *testHarness) launch(t *testing.T, target uint64) *models.LaunchPool {
	t.Helper()
	pool, err := h.svc.InitializeLaunch(InitializeLaunchParams{
		Creator:      "creator",
		TokenName:    "Launch Token",
		TokenSymbol:  "LT",
		TargetAmount: &target,
	})
	require.NoError(t, err)
	return pool
}

func (h *testHarness) participate(t *testing.T, poolID uint, user string, points, totalPoints uint64) *models.UserPosition {
	t.Helper()
	pool, err := h.svc.GetPool(poolID)
	require.NoError(t, err)
	sig, err := oracle.Sign(h.signer, oracle.FormatPointsMessage(user, points, totalPoints, pool.PoolIndex))
	require.NoError(t, err)
	position, err := h.svc.Participate(ParticipateParams{
		PoolID:      poolID,
		User:        user,
		PointsToUse: points,
		TotalPoints: totalPoints,
		Signature:   sig,
	})
	require.NoError(t, err)
	return position
}

func (h *testHarness) fund(t *testing.T, owner, mint string, amount uint64) {
	t.Helper()
	require.NoError(t, h.svc.DB().Transaction(func(tx *gorm.DB) error {
		return vaultCredit(tx, owner, mint, amount)
	}))
}

func (h *testHarness) balance(t *testing.T, owner, mint string) uint64 {
	t.Helper()
	var out uint64
	require.NoError(t, h.svc.DB().Transaction(func(tx *gorm.DB) error {
		b, err := vaultBalance(tx, owner, mint)
		out = b
		return err
	}))
	return out
}

func TestLaunchSettlementSuccess(t *testing.T) {
	h := newHarness(t)
	h.initConfig(t)
	pool := h.launch(t, 6*UnitsPerQuote)

	// alice and bob max out, carol tops the raise past the target
	h.participate(t, pool.ID, "alice", 3000, 3000)
	h.participate(t, pool.ID, "bob", 3000, 5000)
	h.participate(t, pool.ID, "carol", 1000, 1000)

	raised := uint64(7 * UnitsPerQuote)

	_, err := h.svc.ClaimUserRewards(pool.ID, "alice")
	assert.ErrorIs(t, err, ErrInvalidStatus, "claims must wait for finalization")

	finalized, err := h.svc.FinalizeLaunch(pool.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, finalized.Status)
	assert.Equal(t, raised, finalized.RaisedAmount)
	// liquidity is capped at the target, the rest is excess
	assert.Equal(t, finalized.TargetAmount, finalized.LiquidityAmount)
	assert.Equal(t, raised, finalized.LiquidityAmount+finalized.ExcessAmount)

	migrated, err := h.svc.MigrateLaunch(pool.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusMigrated, migrated.Status)
	require.NotNil(t, migrated.AmmPool)
	require.NotNil(t, migrated.AmmPosition)

	// the venue never consumes more than it was offered, and the excess
	// absorbs whatever rounding left behind
	assert.LessOrEqual(t, migrated.LiquidityAmount, finalized.LiquidityAmount)
	assert.Equal(t, raised, migrated.LiquidityAmount+migrated.ExcessAmount)
	assert.Equal(t,
		migrated.TotalSupply-migrated.CreatorAllocation-migrated.LiquidityAllocation,
		migrated.SaleAllocation)

	// custody holds exactly what migration did not move to the venue
	assert.Equal(t, migrated.TotalSupply-migrated.LiquidityAllocation,
		h.balance(t, VaultAuthority, migrated.TokenMint))
	assert.Equal(t, migrated.ExcessAmount,
		h.balance(t, VaultAuthority, migrated.QuoteMint))

	contributions := map[string]uint64{
		"alice": 3 * UnitsPerQuote,
		"bob":   3 * UnitsPerQuote,
		"carol": 1 * UnitsPerQuote,
	}
	var totalTokens, totalExcess uint64
	for user, contributed := range contributions {
		claim, err := h.svc.ClaimUserRewards(pool.ID, user)
		require.NoError(t, err)

		wantTokens, err := CalculateUserTokenShare(contributed, migrated.SaleAllocation, raised)
		require.NoError(t, err)
		wantExcess, err := CalculateUserExcessShare(contributed, migrated.ExcessAmount, raised)
		require.NoError(t, err)
		assert.Equal(t, wantTokens, claim.Tokens)
		assert.Equal(t, wantExcess, claim.Excess)
		assert.Zero(t, claim.Refund)

		assert.Equal(t, claim.Tokens, h.balance(t, user, migrated.TokenMint))
		assert.Equal(t, claim.Excess, h.balance(t, user, migrated.QuoteMint))

		totalTokens += claim.Tokens
		totalExcess += claim.Excess
	}

	// floors never overdraw the buckets, dust stays below one unit per buyer
	assert.LessOrEqual(t, totalTokens, migrated.SaleAllocation)
	assert.Less(t, migrated.SaleAllocation-totalTokens, uint64(len(contributions)))
	assert.LessOrEqual(t, totalExcess, migrated.ExcessAmount)

	_, err = h.svc.ClaimUserRewards(pool.ID, "alice")
	assert.ErrorIs(t, err, ErrAlreadyClaimed)

	_, err = h.svc.ClaimUserRewards(pool.ID, "stranger")
	assert.ErrorIs(t, err, ErrNothingToClaim)
}

func TestLaunchSettlementFailed(t *testing.T) {
	h := newHarness(t)
	h.initConfig(t)
	pool := h.launch(t, 6*UnitsPerQuote)

	h.participate(t, pool.ID, "dave", 1000, 1000)

	_, err := h.svc.FinalizeLaunch(pool.ID)
	assert.ErrorIs(t, err, ErrTooEarlyToFinalize)

	h.now += DefaultLaunchDuration + 1

	finalized, err := h.svc.FinalizeLaunch(pool.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, finalized.Status)

	_, err = h.svc.MigrateLaunch(pool.ID, "")
	assert.ErrorIs(t, err, ErrInvalidStatus, "failed pools never migrate")

	claim, err := h.svc.ClaimUserRewards(pool.ID, "dave")
	require.NoError(t, err)
	assert.Equal(t, uint64(1*UnitsPerQuote), claim.Refund)
	assert.Zero(t, claim.Tokens)
	assert.Zero(t, claim.Excess)
	assert.Equal(t, uint64(1*UnitsPerQuote), h.balance(t, "dave", finalized.QuoteMint))
	assert.Zero(t, h.balance(t, VaultAuthority, finalized.QuoteMint))

	_, err = h.svc.ClaimUserRewards(pool.ID, "dave")
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
}

// migrateSuccessfulPool raises exactly the target with two buyers and walks
// the pool through finalize and migrate.
func (h *testHarness) migrateSuccessfulPool(t *testing.T) *models.LaunchPool {
	t.Helper()
	pool := h.launch(t, 6*UnitsPerQuote)
	h.participate(t, pool.ID, "alice", 3000, 3000)
	h.participate(t, pool.ID, "bob", 3000, 3000)

	_, err := h.svc.FinalizeLaunch(pool.ID)
	require.NoError(t, err)
	migrated, err := h.svc.MigrateLaunch(pool.ID, "")
	require.NoError(t, err)
	return migrated
}

func TestCreatorVestingClaims(t *testing.T) {
	h := newHarness(t)
	h.initConfig(t)
	pool := h.migrateSuccessfulPool(t)

	_, err := h.svc.ClaimCreatorTokens(pool.ID, "mallory")
	assert.ErrorIs(t, err, ErrNotCreator)

	_, err = h.svc.ClaimCreatorTokens(pool.ID, "creator")
	assert.ErrorIs(t, err, ErrNothingToClaim, "nothing unlocks inside the cliff")

	// halfway through the linear window exactly half the allocation is out
	h.now += DefaultCreatorLockDuration + DefaultCreatorLinearUnlockDuration/2
	claimed, err := h.svc.ClaimCreatorTokens(pool.ID, "creator")
	require.NoError(t, err)
	assert.Equal(t, pool.CreatorAllocation/2, claimed)

	_, err = h.svc.ClaimCreatorTokens(pool.ID, "creator")
	assert.ErrorIs(t, err, ErrNothingToClaim, "repeat claim with no new unlock pays nothing")

	h.now += DefaultCreatorLinearUnlockDuration
	remainder, err := h.svc.ClaimCreatorTokens(pool.ID, "creator")
	require.NoError(t, err)
	assert.Equal(t, pool.CreatorAllocation, claimed+remainder)
	assert.Equal(t, pool.CreatorAllocation, h.balance(t, "creator", pool.TokenMint))

	_, err = h.svc.ClaimCreatorTokens(pool.ID, "creator")
	assert.ErrorIs(t, err, ErrNothingToClaim)
}

func TestMigrateSqrtPriceOverride(t *testing.T) {
	h := newHarness(t)
	h.initConfig(t)
	pool := h.launch(t, 6*UnitsPerQuote)
	h.participate(t, pool.ID, "alice", 3000, 3000)
	h.participate(t, pool.ID, "bob", 3000, 3000)
	_, err := h.svc.FinalizeLaunch(pool.ID)
	require.NoError(t, err)

	_, err = h.svc.MigrateLaunch(pool.ID, "not-a-price")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	finalized, err := h.svc.GetPool(pool.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, finalized.Status, "rejected override leaves the pool untouched")

	price, err := amm.SqrtPriceFromPrice(finalized.LiquidityAmount, finalized.LiquidityAllocation)
	require.NoError(t, err)
	migrated, err := h.svc.MigrateLaunch(pool.ID, price.String())
	require.NoError(t, err)
	assert.Equal(t, models.StatusMigrated, migrated.Status)
}

func (h *testHarness) signDividend(t *testing.T, key solana.PrivateKey, user, mint string, total uint64) []byte {
	t.Helper()
	sig, err := oracle.Sign(key, oracle.FormatDividendMessage(user, mint, total))
	require.NoError(t, err)
	return sig
}

func TestDividendWatermark(t *testing.T) {
	h := newHarness(t)
	h.initConfig(t)

	const mint = "DividendMint11111111111111111111111111111111"
	h.fund(t, VaultAuthority, mint, 1000)

	claimed, err := h.svc.ClaimDividend(ClaimDividendParams{
		User:        "erin",
		TokenMint:   mint,
		TotalAmount: 500,
		Signature:   h.signDividend(t, h.signer, "erin", mint, 500),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(500), claimed)

	// replaying the same signed total finds the watermark already there
	_, err = h.svc.ClaimDividend(ClaimDividendParams{
		User:        "erin",
		TokenMint:   mint,
		TotalAmount: 500,
		Signature:   h.signDividend(t, h.signer, "erin", mint, 500),
	})
	assert.ErrorIs(t, err, ErrNoClaimableAmount)

	// a signed total below the watermark is a regression, not a no-op
	_, err = h.svc.ClaimDividend(ClaimDividendParams{
		User:        "erin",
		TokenMint:   mint,
		TotalAmount: 400,
		Signature:   h.signDividend(t, h.signer, "erin", mint, 400),
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// a higher total pays only the delta
	claimed, err = h.svc.ClaimDividend(ClaimDividendParams{
		User:        "erin",
		TokenMint:   mint,
		TotalAmount: 800,
		Signature:   h.signDividend(t, h.signer, "erin", mint, 800),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(300), claimed)
	assert.Equal(t, uint64(800), h.balance(t, "erin", mint))
	assert.Equal(t, uint64(200), h.balance(t, VaultAuthority, mint))

	forger := solana.NewWallet().PrivateKey
	_, err = h.svc.ClaimDividend(ClaimDividendParams{
		User:        "erin",
		TokenMint:   mint,
		TotalAmount: 900,
		Signature:   h.signDividend(t, forger, "erin", mint, 900),
	})
	assert.ErrorIs(t, err, ErrInvalidSignature)

	record, err := h.svc.GetDividendRecord("erin", mint)
	require.NoError(t, err)
	assert.Equal(t, uint64(800), record.TotalClaimed)
}

func TestStakeLifecycle(t *testing.T) {
	h := newHarness(t)
	h.initConfig(t)

	const mint = "StakeMint1111111111111111111111111111111111"
	lock := int64(2 * 24 * 60 * 60)

	position, err := h.svc.Stake(StakeParams{User: "frank", TokenMint: mint, Amount: 200, LockDuration: lock})
	require.NoError(t, err)
	unlockAt := position.UnlockTime

	// a top-up grows the stake without extending the original lock
	h.now += 60
	position, err = h.svc.Stake(StakeParams{User: "frank", TokenMint: mint, Amount: 100, LockDuration: lock})
	require.NoError(t, err)
	assert.Equal(t, uint64(300), position.StakedAmount)
	assert.Equal(t, unlockAt, position.UnlockTime)

	_, err = h.svc.Unstake("frank", mint)
	assert.ErrorIs(t, err, ErrStakeNotUnlocked)

	h.now = unlockAt
	returned, err := h.svc.Unstake("frank", mint)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), returned)
	assert.Equal(t, uint64(300), h.balance(t, "frank", mint))
	assert.Zero(t, h.balance(t, VaultAuthority, mint))

	_, err = h.svc.Unstake("frank", mint)
	assert.ErrorIs(t, err, ErrNoStakeFound)
}
