package babies

import (
	"github.com/bobo-app/bobo-backend/internal/config"
	"github.com/bobo-app/bobo-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "babies" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&models.Baby{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewBabyService(db)
	handler := NewBabyHandler(svc)

	router.Post("/babies", handler.CreateBaby)
	router.Get("/babies", handler.GetBabies)
	router.Get("/babies/:id", handler.GetBaby)
	router.Put("/babies/:id", handler.UpdateBaby)
	router.Delete("/babies/:id", handler.DeleteBaby)
}
