package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inkwell/internal/infrastructure/config"
	"inkwell/internal/infrastructure/database"
	"inkwell/internal/infrastructure/migration"
	"inkwell/internal/infrastructure/persistence/seeds"
	"inkwell/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample articles",
		Long:  `Drop existing articles and insert deterministic sample data for local development.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	if env == "production" {
		return fmt.Errorf("refusing to seed a production database")
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.AutoMigrate(database.Get()); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	if err := seeds.SeedArticles(database.Get()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("database seeded", "articles", seeds.ArticleSeedCount)
	return nil
}
