package handlers

import (
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers/business"
)

// ParticipationRequest spends oracle-signed points on an active launch. The
// signature is the base58 Ed25519 signature over the points message.
type ParticipationRequest struct {
	User        string `json:"user" binding:"required"`
	PointsToUse uint64 `json:"points_to_use" binding:"required"`
	TotalPoints uint64 `json:"total_points" binding:"required"`
	Signature   string `json:"signature" binding:"required"`
}

func decodeSignature(c *gin.Context, encoded string) ([]byte, bool) {
	sig, err := solana.SignatureFromBase58(encoded)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature encoding"})
		return nil, false
	}
	return sig[:], true
}

// Participate contributes to an active launch pool
func Participate(c *gin.Context) {
	id, ok := poolIDParam(c)
	if !ok {
		return
	}
	var request ParticipationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	signature, ok := decodeSignature(c, request.Signature)
	if !ok {
		return
	}

	position, err := Svc.Participate(business.ParticipateParams{
		PoolID:      id,
		User:        request.User,
		PointsToUse: request.PointsToUse,
		TotalPoints: request.TotalPoints,
		Signature:   signature,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}

// GetUserPosition returns a user's contribution record in a pool
func GetUserPosition(c *gin.Context) {
	id, ok := poolIDParam(c)
	if !ok {
		return
	}
	user := c.Param("user")
	position, err := Svc.GetUserPosition(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}

// UserClaimRequest identifies the claiming user
type UserClaimRequest struct {
	User string `json:"user" binding:"required"`
}

// ClaimUserRewards settles a buyer's tokens, excess refund or full refund
func ClaimUserRewards(c *gin.Context) {
	id, ok := poolIDParam(c)
	if !ok {
		return
	}
	var request UserClaimRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := Svc.ClaimUserRewards(id, request.User)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tokens_claimed": result.Tokens,
		"excess_claimed": result.Excess,
		"refund_amount":  result.Refund,
	})
}
