// Package webhooks acknowledges the host platform's compliance webhooks.
// The service stores no end-customer data, so all three compliance topics
// are logged no-ops; the shop's own settings record is removed on shop
// redaction.
package webhooks

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/socioshare/socioshare/internal/config"
	"github.com/socioshare/socioshare/internal/shopify"
	"github.com/socioshare/socioshare/internal/store"
	"github.com/socioshare/socioshare/internal/web/handler"
)

const (
	// Path is the path compliance webhooks are delivered to.
	Path = "/api/webhooks"
)

// Service is the webhook handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	store store.Store
}

// Handler is the webhook handler.
var Handler = Service{}

// Init initializes the webhook handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACSFatalLogMsg)
	}

	s.cfg = cfg
	s.store = st

	app.Post(Path, s.Post)

	return nil
}

// Post verifies and acknowledges one webhook delivery.
func (s *Service) Post(c *fiber.Ctx) error {
	body := c.Body()

	if !s.cfg.DevMode {
		signature := c.Get(shopify.HeaderWebhookHMAC)
		if !shopify.ValidWebhookSignature(s.cfg.Shopify.APISecret, body, signature) {
			log.Warn().Str("topic", c.Get(shopify.HeaderWebhookTopic)).Msg("webhook signature rejected")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "invalid webhook signature",
			})
		}
	}

	topic := c.Get(shopify.HeaderWebhookTopic)
	shop := c.Get(shopify.HeaderShopDomain)

	switch topic {
	case shopify.TopicCustomersDataRequest:
		// no customer data is stored, nothing to return
		log.Info().Str("topic", topic).Str("shop", shop).Msg("received compliance webhook")
	case shopify.TopicCustomersRedact:
		// no customer data is stored, nothing to delete
		log.Info().Str("topic", topic).Str("shop", shop).Msg("received compliance webhook")
	case shopify.TopicShopRedact:
		log.Info().Str("topic", topic).Str("shop", shop).Msg("received compliance webhook")
		s.redactShop(shop)
	default:
		log.Warn().Str("topic", topic).Str("shop", shop).Msg("unhandled webhook topic")

		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "unhandled webhook topic",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// redactShop clears the shop's settings record by writing an empty
// document over it. The next read resolves to the defaults.
func (s *Service) redactShop(shop string) {
	if shop == "" {
		return
	}

	if err := s.store.Put(shop, []byte(`{}`)); err != nil {
		log.Error().Err(err).Str("shop", shop).Msg("failed to redact shop settings")
	}
}
