package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/application/ticket/usecases"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
	"inkwell/internal/shared/utils"
)

type FeedbackHandler struct {
	submitFeedbackUC usecases.SubmitFeedbackExecutor
	logger           logger.Interface
}

func NewFeedbackHandler(
	submitFeedbackUC usecases.SubmitFeedbackExecutor,
	logger logger.Interface,
) *FeedbackHandler {
	return &FeedbackHandler{
		submitFeedbackUC: submitFeedbackUC,
		logger:           logger,
	}
}

// Submit handles POST /feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit feedback", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid feedback payload"))
		return
	}

	result, err := h.submitFeedbackUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newSubmitFeedbackResponse(result))
}
