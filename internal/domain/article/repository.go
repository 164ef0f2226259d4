package article

import "context"

type ArticleRepository interface {
	Save(ctx context.Context, article *Article) error
	FindByID(ctx context.Context, articleID uint) (*Article, error)
	// SearchByKeyword matches the keyword case-insensitively against
	// title or content substrings, newest first.
	SearchByKeyword(ctx context.Context, keyword string) ([]*Article, error)
}
