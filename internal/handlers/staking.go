package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers/business"
)

// StakeRequest locks tokens for a fixed duration
type StakeRequest struct {
	User         string `json:"user" binding:"required"`
	TokenMint    string `json:"token_mint" binding:"required"`
	Amount       uint64 `json:"amount" binding:"required"`
	LockDuration int64  `json:"lock_duration" binding:"required"`
}

// UnstakeRequest withdraws a whole unlocked position
type UnstakeRequest struct {
	User      string `json:"user" binding:"required"`
	TokenMint string `json:"token_mint" binding:"required"`
}

// Stake creates or tops up a staking position
func Stake(c *gin.Context) {
	var request StakeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	position, err := Svc.Stake(business.StakeParams{
		User:         request.User,
		TokenMint:    request.TokenMint,
		Amount:       request.Amount,
		LockDuration: request.LockDuration,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}

// Unstake returns an unlocked position to the user
func Unstake(c *gin.Context) {
	var request UnstakeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	returned, err := Svc.Unstake(request.User, request.TokenMint)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"returned_amount": returned})
}

// GetStakingPosition returns the stake for a (user, mint) pair
func GetStakingPosition(c *gin.Context) {
	position, err := Svc.GetStakingPosition(c.Param("user"), c.Param("mint"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}
