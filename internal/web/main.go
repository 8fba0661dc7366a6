// Package web wires the fiber application: middleware, embedded assets and
// the handler packages serving the settings API and the merchant UI.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/socioshare/socioshare/internal/config"
	accesslog "github.com/socioshare/socioshare/internal/logger/adapter/fiber"
	"github.com/socioshare/socioshare/internal/shopify"
	"github.com/socioshare/socioshare/internal/store"
	"github.com/socioshare/socioshare/internal/uniuri"
	apiplatforms "github.com/socioshare/socioshare/internal/web/handler/api/platforms"
	apisettings "github.com/socioshare/socioshare/internal/web/handler/api/settings"
	"github.com/socioshare/socioshare/internal/web/handler/home"
	"github.com/socioshare/socioshare/internal/web/handler/webhooks"
)

// CheckAlivePath is the liveness endpoint used by load balancers.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	store        store.Store
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration, settings
// store and session token replay cache (replay may be nil).
func New(cfg *config.Config, st store.Store, replay fiber.Storage) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if st == nil {
		panic("store cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "SocioShare",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// assign a request id before anything logs
	app.Use(func(c *fiber.Ctx) error {
		rid := uniuri.New()
		c.Locals(accesslog.RequestIDKey, rid)
		c.Set("X-Request-ID", rid)

		return c.Next()
	})

	// access logging
	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	// init web service
	service := &Service{
		cfg:   cfg,
		App:   app,
		store: st,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("ok")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// session token verification for the API surface. Webhooks carry an
	// HMAC signature instead of a token and are checked by their handler.
	if cfg.DevMode {
		log.Warn().Msg("dev mode enabled: session token verification is off")
	} else {
		verifier := shopify.NewTokenVerifier(cfg.Shopify.APIKey, cfg.Shopify.APISecret, replay)
		app.Use("/api", verifier.Middleware(func(c *fiber.Ctx) bool {
			return c.Path() == webhooks.Path
		}))
	}

	// init handlers (they register their own routes)
	initHandler := func(name string, err error) {
		if err != nil {
			log.Fatal().Err(err).Str("handler", name).Msg("failed to init handler")
		}
	}

	initHandler("webhooks", webhooks.Handler.Init(app, cfg, st))
	initHandler("api/settings", apisettings.Handler.Init(app, cfg, st))
	initHandler("api/platforms", apiplatforms.Handler.Init(app, cfg, st))
	initHandler("home", home.Handler.Init(app, cfg, st))

	return service
}
