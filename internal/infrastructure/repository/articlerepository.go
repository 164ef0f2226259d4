package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inkwell/internal/domain/article"
	"inkwell/internal/infrastructure/persistence/mappers"
	"inkwell/internal/infrastructure/persistence/models"
	"inkwell/internal/shared/db"
	apperrors "inkwell/internal/shared/errors"
)

type ArticleRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleRepository) Save(ctx context.Context, a *article.Article) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *ArticleRepository) FindByID(ctx context.Context, id uint) (*article.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// SearchByKeyword matches the keyword case-insensitively against title
// or content substrings. Results are ordered by creation time, newest
// first. A keyword that matches nothing yields an empty slice.
func (r *ArticleRepository) SearchByKeyword(ctx context.Context, keyword string) ([]*article.Article, error) {
	var results []models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	pattern := "%" + keyword + "%"
	if err := tx.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", pattern, pattern).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	articles := make([]*article.Article, 0, len(results))
	for i := range results {
		a, err := r.mapper.ToDomain(&results[i])
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	return articles, nil
}

var _ article.ArticleRepository = (*ArticleRepository)(nil)
