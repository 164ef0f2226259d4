package usecases

import (
	"context"
	"strings"

	"inkwell/internal/application/article/dto"
	"inkwell/internal/domain/article"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type SearchArticlesQuery struct {
	Keyword string
}

type SearchArticlesResult struct {
	Articles []dto.ArticleDTO
}

type SearchArticlesUseCase struct {
	articleRepo article.ArticleRepository
	logger      logger.Interface
}

func NewSearchArticlesUseCase(
	articleRepo article.ArticleRepository,
	logger logger.Interface,
) *SearchArticlesUseCase {
	return &SearchArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *SearchArticlesUseCase) Execute(ctx context.Context, query SearchArticlesQuery) (*SearchArticlesResult, error) {
	keyword := strings.TrimSpace(query.Keyword)
	if keyword == "" {
		return nil, errors.NewValidationError("query parameter 'q' is required")
	}

	articles, err := uc.articleRepo.SearchByKeyword(ctx, keyword)
	if err != nil {
		uc.logger.Errorw("failed to search articles", "keyword", keyword, "error", err)
		return nil, err
	}

	return &SearchArticlesResult{
		Articles: dto.NewArticleDTOs(articles),
	}, nil
}
