package usecases

import (
	"context"

	"inkwell/internal/application/article/dto"
	"inkwell/internal/domain/article"
	"inkwell/internal/shared/logger"
)

type GetArticleQuery struct {
	ArticleID uint
}

type GetArticleUseCase struct {
	articleRepo article.ArticleRepository
	logger      logger.Interface
}

func NewGetArticleUseCase(
	articleRepo article.ArticleRepository,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error) {
	a, err := uc.articleRepo.FindByID(ctx, query.ArticleID)
	if err != nil {
		return nil, err
	}

	result := dto.NewArticleDTO(a)
	return &result, nil
}
