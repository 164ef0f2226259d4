package routes

import (
	"github.com/gin-gonic/gin"

	"inkwell/internal/interfaces/http/handlers/common"
)

type HealthRouteConfig struct {
	HealthHandler *common.HealthHandler
}

func SetupHealthRoutes(engine *gin.Engine, config *HealthRouteConfig) {
	engine.GET("/healthz", config.HealthHandler.Check)
}
