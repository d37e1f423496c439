package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers/business"
)

// GlobalConfigRequest is the request body for creating the platform config.
type GlobalConfigRequest struct {
	Admin            string  `json:"admin" binding:"required"`
	PointsSigner     string  `json:"points_signer" binding:"required"`
	SwapPair         string  `json:"swap_pair" binding:"required"`
	PointsPerUnit    *uint64 `json:"points_per_unit"`
	MinTargetAmount  *uint64 `json:"min_target_amount"`
	MaxTargetAmount  *uint64 `json:"max_target_amount"`
	MinDuration      *int64  `json:"min_duration"`
	MaxDuration      *int64  `json:"max_duration"`
	MinStakeDuration *int64  `json:"min_stake_duration"`
}

// GlobalConfigUpdateRequest is the admin-only partial update body.
type GlobalConfigUpdateRequest struct {
	Admin            string  `json:"admin" binding:"required"`
	PointsSigner     *string `json:"points_signer"`
	PointsPerUnit    *uint64 `json:"points_per_unit"`
	MinTargetAmount  *uint64 `json:"min_target_amount"`
	MaxTargetAmount  *uint64 `json:"max_target_amount"`
	MinDuration      *int64  `json:"min_duration"`
	MaxDuration      *int64  `json:"max_duration"`
	Paused           *bool   `json:"paused"`
	MinStakeDuration *int64  `json:"min_stake_duration"`
	SwapPair         *string `json:"swap_pair"`
}

// CreateGlobalConfig initializes the singleton platform configuration
func CreateGlobalConfig(c *gin.Context) {
	var request GlobalConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	config, err := Svc.InitializeConfig(business.InitializeConfigParams{
		Admin:            request.Admin,
		PointsSigner:     request.PointsSigner,
		SwapPair:         request.SwapPair,
		PointsPerUnit:    request.PointsPerUnit,
		MinTargetAmount:  request.MinTargetAmount,
		MaxTargetAmount:  request.MaxTargetAmount,
		MinDuration:      request.MinDuration,
		MaxDuration:      request.MaxDuration,
		MinStakeDuration: request.MinStakeDuration,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, config)
}

// UpdateGlobalConfig applies an admin patch to the configuration
func UpdateGlobalConfig(c *gin.Context) {
	var request GlobalConfigUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	config, err := Svc.UpdateConfig(business.UpdateConfigParams{
		Admin:            request.Admin,
		PointsSigner:     request.PointsSigner,
		PointsPerUnit:    request.PointsPerUnit,
		MinTargetAmount:  request.MinTargetAmount,
		MaxTargetAmount:  request.MaxTargetAmount,
		MinDuration:      request.MinDuration,
		MaxDuration:      request.MaxDuration,
		Paused:           request.Paused,
		MinStakeDuration: request.MinStakeDuration,
		SwapPair:         request.SwapPair,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

// GetGlobalConfig returns the platform configuration
func GetGlobalConfig(c *gin.Context) {
	config, err := Svc.GetConfig()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}
