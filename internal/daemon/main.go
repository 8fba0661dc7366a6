// Package daemon assembles the process: settings store, database, session
// token replay cache and the web service.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	sessionsqlite "github.com/gofiber/storage/sqlite3/v2"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/socioshare/socioshare/internal/config"
	"github.com/socioshare/socioshare/internal/db/dsn"
	"github.com/socioshare/socioshare/internal/db/models"
	"github.com/socioshare/socioshare/internal/store"
	"github.com/socioshare/socioshare/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	addr       string
}

// Start launches the Daemon's web service.
func (d *Daemon) Start() error {
	go func() {
		if err := d.webService.Start(d.addr); err != nil {
			log.Fatal().Err(err).Msg("web service stopped")
		}
	}()

	log.Info().Str("addr", d.addr).Msg("socioshare server running")

	return nil
}

// WaitShutdown blocks until the web service shut down gracefully.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	st := newStore(cfg)

	// replay cache for session token jtis; dev mode skips token
	// verification entirely so no cache is needed there
	var replay fiber.Storage
	if !cfg.DevMode {
		replay = newReplayStorage(cfg)
	}

	return &Daemon{
		webService: web.New(cfg, st, replay),
		addr:       fmt.Sprintf("%s:%d", cfg.Webserver.Host, cfg.Webserver.Port),
	}
}

// newStore builds the configured settings store backend.
func newStore(cfg *config.Config) store.Store {
	if cfg.Store.Backend == config.StoreBackendDB {
		db := openDB(cfg)

		if err := db.AutoMigrate(&models.ShopSettings{}); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}

		st, err := store.NewDBStore(db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create db settings store")
		}

		return st
	}

	st, err := store.NewFileStore(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("failed to create file settings store")
	}

	return st
}

// openDB opens the configured database engine with gorm.
func openDB(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.DB.Engine {
	case config.DBEngineMySQL:
		dialector = gormmysql.Open(dsn.MySQL(cfg))
	case config.DBEnginePostgres:
		dialector = gormpostgres.Open(dsn.Postgres(cfg))
	default:
		dialector = sqlite.Open(cfg.DB.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("engine", cfg.DB.Engine).Msg("failed to connect database")
	}

	return db
}

// newReplayStorage picks the fiber storage backend matching the database
// engine for the session token jti cache.
func newReplayStorage(cfg *config.Config) fiber.Storage {
	const table = "session_token_jtis"

	switch cfg.DB.Engine {
	case config.DBEngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg),
			Table:         table,
		})
	case config.DBEnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.PostgresURI(cfg),
			Table:         table,
		})
	default:
		return sessionsqlite.New(sessionsqlite.Config{
			Database: cfg.DB.Path,
			Table:    table,
		})
	}
}
