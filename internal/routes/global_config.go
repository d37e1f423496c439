package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/OramaLabs/launchpad-program/internal/handlers"
)

// SetupGlobalConfigRoutes sets up all routes related to the platform configuration
func SetupGlobalConfigRoutes(r *gin.Engine) {
	config := r.Group("/global-config")
	{
		config.GET("", handlers.GetGlobalConfig)
		config.POST("", handlers.CreateGlobalConfig)
		config.PUT("", handlers.UpdateGlobalConfig)
	}
}
