package routes

import (
	"github.com/gin-gonic/gin"

	articlehandlers "inkwell/internal/interfaces/http/handlers/article"
)

type ArticleRouteConfig struct {
	ArticleHandler *articlehandlers.ArticleHandler
}

func SetupArticleRoutes(engine *gin.Engine, config *ArticleRouteConfig) {
	engine.GET("/search", config.ArticleHandler.Search)

	posts := engine.Group("/posts")
	{
		posts.POST("", config.ArticleHandler.Create)
		posts.GET("/:id", config.ArticleHandler.GetByID)
	}
}
