package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	articleusecases "inkwell/internal/application/article/usecases"
	ticketusecases "inkwell/internal/application/ticket/usecases"
	"inkwell/internal/infrastructure/config"
	"inkwell/internal/infrastructure/repository"
	"inkwell/internal/infrastructure/webhook"
	articlehandlers "inkwell/internal/interfaces/http/handlers/article"
	"inkwell/internal/interfaces/http/handlers/common"
	feedbackhandlers "inkwell/internal/interfaces/http/handlers/feedback"
	"inkwell/internal/interfaces/http/middleware"
	"inkwell/internal/interfaces/http/routes"
	"inkwell/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	articleHandler  *articlehandlers.ArticleHandler
	feedbackHandler *feedbackhandlers.FeedbackHandler
	healthHandler   *common.HealthHandler
	config          *config.Config
	logger          logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	articleRepo := repository.NewArticleRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	forwarder := webhook.NewN8NForwarder(&cfg.Webhook, log.Named("webhook"))

	searchArticlesUC := articleusecases.NewSearchArticlesUseCase(articleRepo, log)
	getArticleUC := articleusecases.NewGetArticleUseCase(articleRepo, log)
	createArticleUC := articleusecases.NewCreateArticleUseCase(articleRepo, log)
	submitFeedbackUC := ticketusecases.NewSubmitFeedbackUseCase(ticketRepo, forwarder, log)

	articleHandler := articlehandlers.NewArticleHandler(searchArticlesUC, getArticleUC, createArticleUC, log)
	feedbackHandler := feedbackhandlers.NewFeedbackHandler(submitFeedbackUC, log)
	healthHandler := common.NewHealthHandler()

	return &Router{
		engine:          engine,
		articleHandler:  articleHandler,
		feedbackHandler: feedbackHandler,
		healthHandler:   healthHandler,
		config:          cfg,
		logger:          log,
	}
}

// SetupRoutes configures middleware and registers all routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.CORS(r.config.Server.AllowedOrigins))

	routes.SetupHealthRoutes(r.engine, &routes.HealthRouteConfig{
		HealthHandler: r.healthHandler,
	})

	routes.SetupArticleRoutes(r.engine, &routes.ArticleRouteConfig{
		ArticleHandler: r.articleHandler,
	})

	routes.SetupFeedbackRoutes(r.engine, &routes.FeedbackRouteConfig{
		FeedbackHandler: r.feedbackHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
