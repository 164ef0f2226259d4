package mappers

import (
	"time"

	"inkwell/internal/domain/article"
	"inkwell/internal/infrastructure/persistence/models"
)

// ArticleMapper handles the conversion between Article domain entities
// and persistence models.
type ArticleMapper interface {
	// ToModel converts an article domain entity to a persistence model.
	ToModel(a *article.Article) *models.ArticleModel

	// ToDomain converts an article persistence model to a domain entity.
	ToDomain(model *models.ArticleModel) (*article.Article, error)
}

// ArticleMapperImpl is the concrete implementation of ArticleMapper.
type ArticleMapperImpl struct{}

// NewArticleMapper creates a new ArticleMapper.
func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

// ToModel converts an article domain entity to a persistence model.
func (m *ArticleMapperImpl) ToModel(a *article.Article) *models.ArticleModel {
	return &models.ArticleModel{
		ID:        a.ID(),
		Title:     a.Title(),
		Content:   a.Content(),
		CreatedAt: a.CreatedAt().UnixMilli(),
	}
}

// ToDomain converts an article persistence model to a domain entity.
func (m *ArticleMapperImpl) ToDomain(model *models.ArticleModel) (*article.Article, error) {
	return article.ReconstructArticle(
		model.ID,
		model.Title,
		model.Content,
		articleConvertMillisToTime(model.CreatedAt),
	)
}

func articleConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
