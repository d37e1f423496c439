package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers"
)

// SetupStakingRoutes sets up all routes related to token staking
func SetupStakingRoutes(r *gin.Engine) {
	staking := r.Group("/staking")
	{
		staking.GET("/:user/:mint", handlers.GetStakingPosition)
		staking.POST("/stake", handlers.Stake)
		staking.POST("/unstake", handlers.Unstake)
	}
}
