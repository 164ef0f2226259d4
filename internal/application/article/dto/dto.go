package dto

import (
	"inkwell/internal/domain/article"
	"inkwell/internal/shared/biztime"
)

// ArticleDTO is the API representation of an article. Timestamps are
// formatted in the display timezone (UTC+8); storage stays UTC.
type ArticleDTO struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// NewArticleDTO converts a domain article to its API representation.
func NewArticleDTO(a *article.Article) ArticleDTO {
	return ArticleDTO{
		ID:        a.ID(),
		Title:     a.Title(),
		Content:   a.Content(),
		CreatedAt: biztime.FormatDisplay(a.CreatedAt()),
	}
}

// NewArticleDTOs converts a slice of domain articles, preserving order.
// The result is never nil so an empty match set serializes as [].
func NewArticleDTOs(articles []*article.Article) []ArticleDTO {
	dtos := make([]ArticleDTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, NewArticleDTO(a))
	}
	return dtos
}
