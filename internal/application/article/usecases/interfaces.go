package usecases

import (
	"context"

	"inkwell/internal/application/article/dto"
)

type SearchArticlesExecutor interface {
	Execute(ctx context.Context, query SearchArticlesQuery) (*SearchArticlesResult, error)
}

type GetArticleExecutor interface {
	Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error)
}

type CreateArticleExecutor interface {
	Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error)
}
