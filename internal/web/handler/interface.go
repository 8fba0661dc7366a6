package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/socioshare/socioshare/internal/config"
	"github.com/socioshare/socioshare/internal/store"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, st store.Store) error
}
