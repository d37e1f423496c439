package business

import (
	"errors"

	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/internal/models"
)

// InitializeConfigParams creates the singleton config. Optional fields fall
// back to platform defaults.
type InitializeConfigParams struct {
	Admin            string
	PointsSigner     string
	SwapPair         string
	PointsPerUnit    *uint64
	MinTargetAmount  *uint64
	MaxTargetAmount  *uint64
	MinDuration      *int64
	MaxDuration      *int64
	MinStakeDuration *int64
}

// UpdateConfigParams is an admin-only field patch; nil fields are untouched.
type UpdateConfigParams struct {
	Admin            string
	PointsSigner     *string
	PointsPerUnit    *uint64
	MinTargetAmount  *uint64
	MaxTargetAmount  *uint64
	MinDuration      *int64
	MaxDuration      *int64
	Paused           *bool
	MinStakeDuration *int64
	SwapPair         *string
}

func lockConfig(tx *gorm.DB) (*models.GlobalConfig, error) {
	var config models.GlobalConfig
	err := forUpdate(tx).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConfigMissing
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func validateConfigBounds(config *models.GlobalConfig) error {
	if config.MinTargetAmount > config.MaxTargetAmount {
		return ErrInvalidTargetAmount
	}
	if config.MinDuration > config.MaxDuration {
		return ErrInvalidDuration
	}
	return nil
}

// InitializeConfig creates the global configuration exactly once.
func (s *Service) InitializeConfig(params InitializeConfigParams) (*models.GlobalConfig, error) {
	var created models.GlobalConfig

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.GlobalConfig{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConfigExists
		}

		config := models.GlobalConfig{
			Admin:            params.Admin,
			PointsSigner:     params.PointsSigner,
			SwapPair:         params.SwapPair,
			PointsPerUnit:    DefaultPointsPerUnit,
			MinTargetAmount:  DefaultMinTargetAmount,
			MaxTargetAmount:  DefaultMaxTargetAmount,
			MinDuration:      DefaultMinDuration,
			MaxDuration:      DefaultMaxDuration,
			MinStakeDuration: DefaultMinStakeDuration,
		}

		if params.PointsPerUnit != nil {
			config.PointsPerUnit = *params.PointsPerUnit
		}
		if params.MinTargetAmount != nil {
			config.MinTargetAmount = *params.MinTargetAmount
		}
		if params.MaxTargetAmount != nil {
			config.MaxTargetAmount = *params.MaxTargetAmount
		}
		if params.MinDuration != nil {
			config.MinDuration = *params.MinDuration
		}
		if params.MaxDuration != nil {
			config.MaxDuration = *params.MaxDuration
		}
		if params.MinStakeDuration != nil {
			config.MinStakeDuration = *params.MinStakeDuration
		}

		if err := validateConfigBounds(&config); err != nil {
			return err
		}

		if err := tx.Create(&config).Error; err != nil {
			return err
		}
		created = config
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateConfig applies an admin-only partial update to the config.
func (s *Service) UpdateConfig(params UpdateConfigParams) (*models.GlobalConfig, error) {
	var updated models.GlobalConfig

	err := s.db.Transaction(func(tx *gorm.DB) error {
		config, err := lockConfig(tx)
		if err != nil {
			return err
		}
		if config.Admin != params.Admin {
			return ErrUnauthorized
		}

		if params.PointsSigner != nil {
			config.PointsSigner = *params.PointsSigner
		}
		if params.PointsPerUnit != nil {
			config.PointsPerUnit = *params.PointsPerUnit
		}
		if params.MinTargetAmount != nil {
			config.MinTargetAmount = *params.MinTargetAmount
		}
		if params.MaxTargetAmount != nil {
			config.MaxTargetAmount = *params.MaxTargetAmount
		}
		if params.MinDuration != nil {
			config.MinDuration = *params.MinDuration
		}
		if params.MaxDuration != nil {
			config.MaxDuration = *params.MaxDuration
		}
		if params.Paused != nil {
			config.Paused = *params.Paused
		}
		if params.MinStakeDuration != nil {
			config.MinStakeDuration = *params.MinStakeDuration
		}
		if params.SwapPair != nil {
			config.SwapPair = *params.SwapPair
		}

		if err := validateConfigBounds(config); err != nil {
			return err
		}

		if err := tx.Save(config).Error; err != nil {
			return err
		}
		updated = *config
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetConfig returns the singleton config.
func (s *Service) GetConfig() (*models.GlobalConfig, error) {
	var config models.GlobalConfig
	err := s.db.First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConfigMissing
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func validateLaunchParams(config *models.GlobalConfig, targetAmount uint64, duration int64) error {
	if config.Paused {
		return ErrPlatformPaused
	}
	if targetAmount < config.MinTargetAmount || targetAmount > config.MaxTargetAmount {
		return ErrInvalidTargetAmount
	}
	if duration < config.MinDuration || duration > config.MaxDuration {
		return ErrInvalidDuration
	}
	return nil
}

func validateStakeParams(config *models.GlobalConfig, duration int64) error {
	if config.Paused {
		return ErrPlatformPaused
	}
	if duration < config.MinStakeDuration {
		return ErrInvalidStakeDuration
	}
	return nil
}
