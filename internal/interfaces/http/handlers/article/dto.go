package article

import (
	"inkwell/internal/application/article/usecases"
)

// CreateArticleRequest is the request body for POST /posts.
type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (r *CreateArticleRequest) ToCommand() usecases.CreateArticleCommand {
	return usecases.CreateArticleCommand{
		Title:   r.Title,
		Content: r.Content,
	}
}
