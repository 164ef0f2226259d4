package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/domain/article"
	"inkwell/internal/shared/errors"
)

func TestCreateArticleUseCase(t *testing.T) {
	t.Run("persists and returns the article", func(t *testing.T) {
		repo := &mockArticleRepository{
			saveFunc: func(ctx context.Context, a *article.Article) error {
				return a.SetID(11)
			},
		}

		uc := NewCreateArticleUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateArticleCommand{
			Title:   "New Post",
			Content: "Body text",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(11), result.ID)
		assert.Equal(t, "New Post", result.Title)
		assert.Equal(t, "Body text", result.Content)
		assert.NotEmpty(t, result.CreatedAt)
	})

	t.Run("save failure becomes an internal error", func(t *testing.T) {
		repo := &mockArticleRepository{
			saveFunc: func(ctx context.Context, a *article.Article) error {
				return fmt.Errorf("disk full")
			},
		}

		uc := NewCreateArticleUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateArticleCommand{
			Title:   "New Post",
			Content: "Body text",
		})

		require.Error(t, err)
		assert.True(t, errors.IsInternalError(err))
		assert.NotContains(t, err.Error(), "disk full")
	})
}
