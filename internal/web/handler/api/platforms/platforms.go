// Package platforms serves the selectable platform catalog to the admin UI.
package platforms

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/socioshare/socioshare/internal/config"
	settingsdoc "github.com/socioshare/socioshare/internal/settings"
	"github.com/socioshare/socioshare/internal/store"
	"github.com/socioshare/socioshare/internal/web/handler"
)

const (
	// Path is the path to the platform catalog API.
	Path = "/api/platforms"
)

// Service is the platform catalog handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the platform catalog handler.
var Handler = Service{}

// Init initializes the platform catalog handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ store.Store) error {
	if app == nil || cfg == nil {
		return errors.New("app or cfg is nil")
	}

	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get returns the platform catalog in display order.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"platforms": settingsdoc.Platforms(),
	})
}
