package usecases

import (
	"context"

	"inkwell/internal/application/article/dto"
	"inkwell/internal/domain/article"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type CreateArticleCommand struct {
	Title   string
	Content string
}

type CreateArticleUseCase struct {
	articleRepo article.ArticleRepository
	logger      logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo article.ArticleRepository,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error) {
	newArticle := article.NewArticle(cmd.Title, cmd.Content)

	if err := uc.articleRepo.Save(ctx, newArticle); err != nil {
		uc.logger.Errorw("failed to save article", "title", cmd.Title, "error", err)
		return nil, errors.NewInternalError("failed to save article")
	}

	uc.logger.Infow("article created", "article_id", newArticle.ID())

	result := dto.NewArticleDTO(newArticle)
	return &result, nil
}
