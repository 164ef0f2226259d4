package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/domain/article"
	"inkwell/internal/shared/errors"
)

func TestSearchArticlesUseCase(t *testing.T) {
	makeArticle := func(id uint, title string) *article.Article {
		a, err := article.ReconstructArticle(id, title, "content", time.Date(2025, 6, 1, 4, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		return a
	}

	t.Run("returns matching articles", func(t *testing.T) {
		var gotKeyword string
		repo := &mockArticleRepository{
			searchByKeywordFunc: func(ctx context.Context, keyword string) ([]*article.Article, error) {
				gotKeyword = keyword
				return []*article.Article{makeArticle(2, "Go tips"), makeArticle(1, "More Go")}, nil
			},
		}

		uc := NewSearchArticlesUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), SearchArticlesQuery{Keyword: "go"})

		require.NoError(t, err)
		assert.Equal(t, "go", gotKeyword)
		require.Len(t, result.Articles, 2)
		assert.Equal(t, uint(2), result.Articles[0].ID)
		assert.Equal(t, "Go tips", result.Articles[0].Title)
	})

	t.Run("trims the keyword before searching", func(t *testing.T) {
		var gotKeyword string
		repo := &mockArticleRepository{
			searchByKeywordFunc: func(ctx context.Context, keyword string) ([]*article.Article, error) {
				gotKeyword = keyword
				return nil, nil
			},
		}

		uc := NewSearchArticlesUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), SearchArticlesQuery{Keyword: "  gin  "})

		require.NoError(t, err)
		assert.Equal(t, "gin", gotKeyword)
	})

	t.Run("empty keyword is a validation error", func(t *testing.T) {
		called := false
		repo := &mockArticleRepository{
			searchByKeywordFunc: func(ctx context.Context, keyword string) ([]*article.Article, error) {
				called = true
				return nil, nil
			},
		}

		uc := NewSearchArticlesUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), SearchArticlesQuery{Keyword: "   "})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.False(t, called)
	})

	t.Run("no matches yields an empty non-nil slice", func(t *testing.T) {
		repo := &mockArticleRepository{
			searchByKeywordFunc: func(ctx context.Context, keyword string) ([]*article.Article, error) {
				return []*article.Article{}, nil
			},
		}

		uc := NewSearchArticlesUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), SearchArticlesQuery{Keyword: "nothing"})

		require.NoError(t, err)
		assert.NotNil(t, result.Articles)
		assert.Empty(t, result.Articles)
	})

	t.Run("repository error is passed through", func(t *testing.T) {
		repo := &mockArticleRepository{
			searchByKeywordFunc: func(ctx context.Context, keyword string) ([]*article.Article, error) {
				return nil, fmt.Errorf("connection refused")
			},
		}

		uc := NewSearchArticlesUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), SearchArticlesQuery{Keyword: "go"})

		assert.Error(t, err)
	})
}
