package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers"
)

// SetupDividendRoutes sets up all routes related to dividend claims
func SetupDividendRoutes(r *gin.Engine) {
	dividends := r.Group("/dividends")
	{
		dividends.GET("/:user/:mint", handlers.GetDividendRecord)
		dividends.POST("/claim", handlers.ClaimDividend)
	}
}
