package article

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkwell/internal/application/article/usecases"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/utils"
)

type ArticleHandler struct {
	searchArticlesUC usecases.SearchArticlesExecutor
	getArticleUC     usecases.GetArticleExecutor
	createArticleUC  usecases.CreateArticleExecutor
	logger           logger.Interface
}

func NewArticleHandler(
	searchArticlesUC usecases.SearchArticlesExecutor,
	getArticleUC usecases.GetArticleExecutor,
	createArticleUC usecases.CreateArticleExecutor,
	logger logger.Interface,
) *ArticleHandler {
	return &ArticleHandler{
		searchArticlesUC: searchArticlesUC,
		getArticleUC:     getArticleUC,
		createArticleUC:  createArticleUC,
		logger:           logger,
	}
}

// Search handles GET /search
func (h *ArticleHandler) Search(c *gin.Context) {
	query := usecases.SearchArticlesQuery{
		Keyword: c.Query("q"),
	}

	result, err := h.searchArticlesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result.Articles)
}

// GetByID handles GET /posts/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetArticleQuery{
		ArticleID: articleID,
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Create handles POST /posts
func (h *ArticleHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create article", "error", err)
		utils.ErrorResponseWithError(c, errors.NewUnprocessableEntityError("title and content are required"))
		return
	}

	result, err := h.createArticleUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func parseArticleID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid article ID")
	}
	return uint(id), nil
}
