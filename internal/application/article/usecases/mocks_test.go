package usecases

import (
	"context"

	"inkwell/internal/domain/article"
	"inkwell/internal/shared/logger"
)

type mockArticleRepository struct {
	saveFunc            func(ctx context.Context, a *article.Article) error
	findByIDFunc        func(ctx context.Context, articleID uint) (*article.Article, error)
	searchByKeywordFunc func(ctx context.Context, keyword string) ([]*article.Article, error)
}

func (m *mockArticleRepository) Save(ctx context.Context, a *article.Article) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) FindByID(ctx context.Context, articleID uint) (*article.Article, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *mockArticleRepository) SearchByKeyword(ctx context.Context, keyword string) ([]*article.Article, error) {
	if m.searchByKeywordFunc != nil {
		return m.searchByKeywordFunc(ctx, keyword)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
