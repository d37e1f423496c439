package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers"
)

// SetupLaunchPoolRoutes sets up all routes related to launch pool lifecycle and claims
func SetupLaunchPoolRoutes(r *gin.Engine) {
	pools := r.Group("/launch-pools")
	{
		pools.GET("", handlers.ListLaunchPools)
		pools.GET("/:id", handlers.GetLaunchPool)
		pools.POST("", handlers.CreateLaunchPool)

		pools.POST("/:id/participate", handlers.Participate)
		pools.POST("/:id/finalize", handlers.FinalizeLaunchPool)
		pools.POST("/:id/migrate", handlers.MigrateLaunchPool)

		pools.GET("/:id/positions/:user", handlers.GetUserPosition)
		pools.POST("/:id/claim-rewards", handlers.ClaimUserRewards)

		pools.GET("/:id/creator-unlock", handlers.GetCreatorUnlockInfo)
		pools.POST("/:id/claim-creator-tokens", handlers.ClaimCreatorTokens)
		pools.POST("/:id/claim-fees", handlers.ClaimPoolFees)
	}
}
