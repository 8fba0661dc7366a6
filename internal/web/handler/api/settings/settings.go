// Package settings provides the tenant-scoped settings API handlers.
package settings

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/socioshare/socioshare/internal/config"
	settingsdoc "github.com/socioshare/socioshare/internal/settings"
	"github.com/socioshare/socioshare/internal/store"
	"github.com/socioshare/socioshare/internal/web/handler"
)

const (
	// Path is the path to the settings API.
	Path = "/api/settings"
)

// Service is the settings API handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	store     store.Store
	validator *validator.Validate
}

// Handler is the settings API handler.
var Handler = Service{}

// Init initializes the settings API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACSFatalLogMsg)
	}

	s.cfg = cfg
	s.store = st
	s.validator = validator.New()

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles reading a shop's resolved settings document. A shop with no
// stored record gets the default document; a partial record is returned
// with missing fields filled from the defaults.
func (s *Service) Get(c *fiber.Ctx) error {
	shop := c.Query("shop")
	if shop == "" {
		return missingShop(c)
	}

	doc, stored := settingsdoc.Resolve(s.store, shop)

	if stored {
		observeRead(readOutcomeStored)
	} else {
		observeRead(readOutcomeDefault)
	}

	return c.Status(fiber.StatusOK).Type("json").Send(doc)
}

// Post handles replacing a shop's settings document in full. The body is
// persisted verbatim; fields omitted from the body are not preserved from
// the prior record (they reappear only through default filling at read
// time), unless symmetric merge is enabled in the config.
func (s *Service) Post(c *fiber.Ctx) error {
	shop := c.Query("shop")
	if shop == "" {
		return missingShop(c)
	}

	body := c.Body()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		observeWrite(writeOutcomeRejected)

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "request body must be a json object",
		})
	}

	if s.cfg.Store.StrictValidation {
		if err := s.validateDocument(body); err != nil {
			observeWrite(writeOutcomeRejected)

			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "invalid settings document: " + err.Error(),
			})
		}
	}

	doc := json.RawMessage(body)

	// opt-in upsert-patch semantics, off by default for compatibility
	if s.cfg.Store.SymmetricMerge {
		if prior, err := s.store.Get(shop); err == nil {
			if merged, mergeErr := settingsdoc.MergeRaw(prior, doc); mergeErr == nil {
				doc = merged
			}
		}
	}

	if err := s.store.Put(shop, doc); err != nil {
		observeWrite(writeOutcomeError)
		log.Error().Err(err).Str("shop", shop).Msg("failed to save settings")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to save settings",
		})
	}

	observeWrite(writeOutcomeSaved)
	log.Info().Str("shop", shop).Msg("settings saved")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// validateDocument checks enum membership of the known fields. Unknown
// fields are not an error, they pass through to the store unchanged.
func (s *Service) validateDocument(body []byte) error {
	var doc settingsdoc.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return err
	}

	return s.validator.Struct(&doc)
}

func missingShop(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "missing shop parameter",
	})
}
