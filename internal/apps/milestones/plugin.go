package milestones

import (
	"log/slog"

	"github.com/bobo-app/bobo-backend/internal/apps/babies"
	"github.com/bobo-app/bobo-backend/internal/config"
	"github.com/bobo-app/bobo-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "milestones" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&models.Milestone{},
		&models.LoggedMilestone{},
		&models.Activity{},
		&models.NutritionGuide{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	babySvc := babies.NewBabyService(db)
	svc := NewMilestoneService(db, babySvc)
	handler := NewMilestoneHandler(svc)

	// Catalog seeding is insert-if-missing, safe on every startup
	if err := SeedCatalogs(db); err != nil {
		slog.Error("failed to seed milestone catalogs", "error", err)
	}

	router.Get("/babies/:id/milestones", handler.GetChecklist)
	router.Put("/babies/:id/milestones", handler.LogMilestones)
	router.Get("/babies/:id/milestones/expected", handler.GetExpected)
	router.Get("/babies/:id/activities", handler.GetActivities)
	router.Get("/babies/:id/nutrition", handler.GetNutritionGuide)
}
