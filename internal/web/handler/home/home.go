// Package home renders the embedded merchant settings page.
package home

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/socioshare/socioshare/internal/config"
	settingsdoc "github.com/socioshare/socioshare/internal/settings"
	"github.com/socioshare/socioshare/internal/store"
	"github.com/socioshare/socioshare/internal/web/handler"
)

const (
	// Path is the path to the settings page.
	Path = "/"
)

// Service is the settings page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the settings page handler.
var Handler = Service{}

// Init initializes the settings page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ store.Store) error {
	if app == nil || cfg == nil {
		return errors.New("app or cfg is nil")
	}

	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get renders the settings page shell. The page JS loads the shop's
// document over the API and keeps local edits until an explicit save.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":     s.cfg.Title,
		"APIKey":    s.cfg.Shopify.APIKey,
		"Shop":      c.Query("shop"),
		"DevMode":   s.cfg.DevMode,
		"Platforms": settingsdoc.Platforms(),
	}, handler.BaseLayout)
}
