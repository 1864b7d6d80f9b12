package main

import (
	"log/slog"
	"os"

	"github.com/bobo-app/bobo-backend/internal/apps/milestones"
	"github.com/bobo-app/bobo-backend/internal/config"
	"github.com/bobo-app/bobo-backend/internal/database"
	"github.com/bobo-app/bobo-backend/internal/models"
)

// seed is a one-shot command that loads the reference catalogs: it replaces
// the nutrition guide table with rows for months 0-48 and inserts any
// missing milestone and activity catalog rows.
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.MigrateModels([]interface{}{
		&models.Milestone{},
		&models.Activity{},
		&models.NutritionGuide{},
	}); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := milestones.SeedNutritionGuides(database.DB); err != nil {
		slog.Error("failed to load nutrition guides", "error", err)
		os.Exit(1)
	}

	if err := milestones.SeedCatalogs(database.DB); err != nil {
		slog.Error("failed to load milestone catalogs", "error", err)
		os.Exit(1)
	}

	slog.Info("successfully loaded nutrition guides for months 0-48")
}
