package routes

import (
	"github.com/gin-gonic/gin"

	feedbackhandlers "inkwell/internal/interfaces/http/handlers/feedback"
)

type FeedbackRouteConfig struct {
	FeedbackHandler *feedbackhandlers.FeedbackHandler
}

func SetupFeedbackRoutes(engine *gin.Engine, config *FeedbackRouteConfig) {
	engine.POST("/feedback", config.FeedbackHandler.Submit)
}
