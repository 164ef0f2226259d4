package seeds

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"inkwell/internal/infrastructure/persistence/models"
)

// ArticleSeedCount is the number of deterministic sample articles.
const ArticleSeedCount = 100

// SeedArticles populates the articles table with deterministic sample
// data for local development. Existing rows are cleared first so the
// data set stays reproducible.
func SeedArticles(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.ArticleModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear articles: %w", err)
	}

	now := time.Now().UTC()
	articles := make([]models.ArticleModel, 0, ArticleSeedCount)
	for i := 0; i < ArticleSeedCount; i++ {
		articles = append(articles, models.ArticleModel{
			Title: fmt.Sprintf("Sample Article %d", i+1),
			Content: fmt.Sprintf(
				"This is a placeholder article for testing search and post APIs. Entry number %d.",
				i+1,
			),
			CreatedAt: now.Add(-time.Duration(i) * time.Minute).UnixMilli(),
		})
	}

	if err := db.Create(&articles).Error; err != nil {
		return fmt.Errorf("failed to seed articles: %w", err)
	}

	return nil
}
