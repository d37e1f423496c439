package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers"
)

// SetupSwapRoutes sets up the venue swap route
func SetupSwapRoutes(r *gin.Engine) {
	r.POST("/swap", handlers.Swap)
}
