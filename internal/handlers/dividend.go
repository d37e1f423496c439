package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers/business"
)

// DividendClaimRequest claims dividends up to an oracle-signed lifetime total
type DividendClaimRequest struct {
	User        string `json:"user" binding:"required"`
	TokenMint   string `json:"token_mint" binding:"required"`
	TotalAmount uint64 `json:"total_amount" binding:"required"`
	Signature   string `json:"signature" binding:"required"`
}

// ClaimDividend pays the gap between the signed total and the user's watermark
func ClaimDividend(c *gin.Context) {
	var request DividendClaimRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	signature, ok := decodeSignature(c, request.Signature)
	if !ok {
		return
	}

	claimed, err := Svc.ClaimDividend(business.ClaimDividendParams{
		User:        request.User,
		TokenMint:   request.TokenMint,
		TotalAmount: request.TotalAmount,
		Signature:   signature,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claimed_amount": claimed})
}

// GetDividendRecord returns the dividend watermark for a (user, mint) pair
func GetDividendRecord(c *gin.Context) {
	record, err := Svc.GetDividendRecord(c.Param("user"), c.Param("mint"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
