package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers/business"
)

// SwapRequest routes a swap through the configured venue pair
type SwapRequest struct {
	User         string `json:"user" binding:"required"`
	QuoteMint    string `json:"quote_mint" binding:"required"`
	AmountIn     uint64 `json:"amount_in" binding:"required"`
	MinAmountOut uint64 `json:"min_amount_out"`
}

// Swap charges the platform fee and executes the swap on the venue
func Swap(c *gin.Context) {
	var request SwapRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := Svc.Swap(business.SwapParams{
		User:         request.User,
		QuoteMint:    request.QuoteMint,
		AmountIn:     request.AmountIn,
		MinAmountOut: request.MinAmountOut,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fee_amount": result.FeeAmount,
		"amount_out": result.AmountOut,
	})
}
