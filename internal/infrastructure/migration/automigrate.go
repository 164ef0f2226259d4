package migration

import (
	"fmt"

	"gorm.io/gorm"

	"inkwell/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ArticleModel{},
		&models.TicketModel{},
	}
}

// AutoMigrate creates or updates the schema for all known models.
// Intended for development; production schemas are managed out of band.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
