package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers/business"
)

// LaunchPoolRequest is the request body for creating a launch pool
type LaunchPoolRequest struct {
	Creator              string  `json:"creator" binding:"required"`
	TokenName            string  `json:"token_name" binding:"required"`
	TokenSymbol          string  `json:"token_symbol" binding:"required"`
	TokenURI             string  `json:"token_uri"`
	TargetAmount         *uint64 `json:"target_amount"`
	Duration             *int64  `json:"duration"`
	LockDuration         *int64  `json:"lock_duration"`
	LinearUnlockDuration *int64  `json:"linear_unlock_duration"`
	StartTime            *int64  `json:"start_time"`
}

func poolIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return 0, false
	}
	return uint(id), true
}

// CreateLaunchPool creates a new launch pool and opens the fundraising window
func CreateLaunchPool(c *gin.Context) {
	var request LaunchPoolRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	pool, err := Svc.InitializeLaunch(business.InitializeLaunchParams{
		Creator:              request.Creator,
		TokenName:            request.TokenName,
		TokenSymbol:          request.TokenSymbol,
		TokenURI:             request.TokenURI,
		TargetAmount:         request.TargetAmount,
		Duration:             request.Duration,
		LockDuration:         request.LockDuration,
		LinearUnlockDuration: request.LinearUnlockDuration,
		StartTime:            request.StartTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pool)
}

// ListLaunchPools returns all launch pools
func ListLaunchPools(c *gin.Context) {
	pools, err := Svc.ListPools()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pools)
}

// GetLaunchPool returns a specific launch pool by ID
func GetLaunchPool(c *gin.Context) {
	id, ok := poolIDParam(c)
	if !ok {
		return
	}
	pool, err := Svc.GetPool(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

// FinalizeLaunchPool closes the fundraising window and settles the outcome
func FinalizeLaunchPool(c *gin.Context) {
	id, ok := poolIDParam(c)
	if !ok {
		return
	}
	pool, err := Svc.FinalizeLaunch(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

// MigrateRequest optionally pins the AMM opening price instead of deriving it
// from the pool ratio
type MigrateRequest struct {
	SqrtPrice string `json:"sqrt_price"`
}

// MigrateLaunchPool seeds AMM liquidity for a successful launch
func MigrateLaunchPool(c *gin.Context) {
	id, ok := poolIDParam(c)
	if !ok {
		return
	}
	var req MigrateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}
	pool, err := Svc.MigrateLaunch(id, req.SqrtPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

// GetCreatorUnlockInfo returns the creator vesting schedule for a pool
func GetCreatorUnlockInfo(c *gin.Context) {
	id, ok := poolIDParam(c)
	if !ok {
		return
	}
	pool, err := Svc.GetPool(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pool.UnlockInfo(Svc.Now()))
}

// CreatorClaimRequest identifies the claiming creator
type CreatorClaimRequest struct {
	Creator string `json:"creator" binding:"required"`
}

// ClaimCreatorTokens pays out the creator's vested tokens
func ClaimCreatorTokens(c *gin.Context) {
	id, ok := poolIDParam(c)
	if !ok {
		return
	}
	var request CreatorClaimRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	claimed, err := Svc.ClaimCreatorTokens(id, request.Creator)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claimed_amount": claimed})
}

// ClaimPoolFees collects and splits the accrued AMM position fees
func ClaimPoolFees(c *gin.Context) {
	id, ok := poolIDParam(c)
	if !ok {
		return
	}
	claim, err := Svc.ClaimPoolFees(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}
