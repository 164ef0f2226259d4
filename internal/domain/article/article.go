package article

import (
	"fmt"
	"time"
)

type Article struct {
	id        uint
	title     string
	content   string
	createdAt time.Time
}

// NewArticle creates a new article. Title and content are stored as
// given; trimming and emptiness checks are the caller's responsibility.
func NewArticle(title string, content string) *Article {
	return &Article{
		title:     title,
		content:   content,
		createdAt: time.Now().UTC(),
	}
}

func ReconstructArticle(
	id uint,
	title string,
	content string,
	createdAt time.Time,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}

	return &Article{
		id:        id,
		title:     title,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (a *Article) ID() uint {
	return a.id
}

func (a *Article) Title() string {
	return a.title
}

func (a *Article) Content() string {
	return a.content
}

func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}
