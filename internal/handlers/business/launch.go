package business

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/internal/models"
)

// QuoteMint is the wrapped-SOL mint every launch raises against.
const QuoteMint = "So11111111111111111111111111111111111111112"

// InitializeLaunchParams creates a new launch pool. Optional fields fall back
// to the platform defaults, bounded by the global config.
type InitializeLaunchParams struct {
	Creator              string
	TokenName            string
	TokenSymbol          string
	TokenURI             string
	TargetAmount         *uint64
	Duration             *int64
	LockDuration         *int64
	LinearUnlockDuration *int64
	StartTime            *int64
}

// InitializeLaunch creates the pool, mints the full supply into the custodial
// vault and opens the fundraising window. Minting authority is revoked at the
// source once the supply is in the vault, so the pool goes straight to Active.
func (s *Service) InitializeLaunch(params InitializeLaunchParams) (*models.LaunchPool, error) {
	now := s.now()

	targetAmount := uint64(DefaultTargetAmount)
	if params.TargetAmount != nil {
		targetAmount = *params.TargetAmount
	}
	duration := int64(DefaultLaunchDuration)
	if params.Duration != nil {
		duration = *params.Duration
	}
	lockDuration := int64(DefaultCreatorLockDuration)
	if params.LockDuration != nil {
		lockDuration = *params.LockDuration
	}
	linearUnlockDuration := int64(DefaultCreatorLinearUnlockDuration)
	if params.LinearUnlockDuration != nil {
		linearUnlockDuration = *params.LinearUnlockDuration
	}
	startTime := now
	if params.StartTime != nil {
		if *params.StartTime < now {
			return nil, ErrInvalidStartTime
		}
		startTime = *params.StartTime
	}

	creatorAllocation, saleAllocation, liquidityAllocation, err := CalculateTokenAllocations(TotalSupply)
	if err != nil {
		return nil, err
	}

	var created models.LaunchPool

	err = s.db.Transaction(func(tx *gorm.DB) error {
		config, err := lockConfig(tx)
		if err != nil {
			return err
		}
		if err := validateLaunchParams(config, targetAmount, duration); err != nil {
			return err
		}

		tokenMint := solana.NewWallet().PublicKey().String()

		pool := models.LaunchPool{
			Creator:     params.Creator,
			TokenMint:   tokenMint,
			TokenVault:  VaultAuthority,
			QuoteMint:   QuoteMint,
			QuoteVault:  VaultAuthority,
			TokenName:   params.TokenName,
			TokenSymbol: params.TokenSymbol,
			TokenURI:    params.TokenURI,
			Status:      models.StatusActive,

			TotalSupply:         TotalSupply,
			CreatorAllocation:   creatorAllocation,
			SaleAllocation:      saleAllocation,
			LiquidityAllocation: liquidityAllocation,

			TargetAmount: targetAmount,
			StartTime:    startTime,
			EndTime:      startTime + duration,

			PointsPerUnit: config.PointsPerUnit,

			CreatorLockDuration:         lockDuration,
			CreatorLinearUnlockDuration: linearUnlockDuration,

			PoolIndex: config.PoolCount,
		}

		if err := tx.Create(&pool).Error; err != nil {
			return err
		}

		// full supply minted into custody before the window opens
		if err := vaultCredit(tx, VaultAuthority, tokenMint, TotalSupply); err != nil {
			return err
		}

		if err := tx.Model(config).Update("pool_count", config.PoolCount+1).Error; err != nil {
			return err
		}

		created = pool
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("Launch pool %d initialized: token %s, target %d, window [%d, %d]",
		created.ID, created.TokenMint, created.TargetAmount, created.StartTime, created.EndTime)

	s.emit(EventLaunchInitialized, LaunchInitializedEvent{
		PoolID:              created.ID,
		Creator:             created.Creator,
		TokenMint:           created.TokenMint,
		TokenName:           created.TokenName,
		TokenSymbol:         created.TokenSymbol,
		TotalSupply:         created.TotalSupply,
		TargetAmount:        created.TargetAmount,
		PointsPerUnit:       created.PointsPerUnit,
		CreatorLockDuration: created.CreatorLockDuration,
		StartTime:           created.StartTime,
		EndTime:             created.EndTime,
	})

	return &created, nil
}

func lockPool(tx *gorm.DB, poolID uint) (*models.LaunchPool, error) {
	var pool models.LaunchPool
	err := forUpdate(tx).First(&pool, poolID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

// GetPool returns one launch pool.
func (s *Service) GetPool(poolID uint) (*models.LaunchPool, error) {
	var pool models.LaunchPool
	if err := s.db.First(&pool, poolID).Error; err != nil {
		return nil, err
	}
	return &pool, nil
}

// ListPools returns all pools, newest first.
func (s *Service) ListPools() ([]models.LaunchPool, error) {
	var pools []models.LaunchPool
	if err := s.db.Order("id desc").Find(&pools).Error; err != nil {
		return nil, err
	}
	return pools, nil
}

// GetUserPosition returns the contribution record for (pool, user).
func (s *Service) GetUserPosition(poolID uint, user string) (*models.UserPosition, error) {
	var position models.UserPosition
	err := s.db.Where("pool_id = ? AND \"user\" = ?", poolID, user).First(&position).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}
