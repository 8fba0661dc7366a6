package config

import (
	"github.com/socioshare/socioshare/internal/logger"
)

// Store backend identifiers.
const (
	StoreBackendFile = "file"
	StoreBackendDB   = "db"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Shopify   Shopify
	Store     Store
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic bool   // enable static file browsing (for development purposes only)
	CacheEnabled bool   // true = enable cache, false = disable cache
	Domain       string // domain name for the webserver
	Host         string // listening host for the webserver
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
}

// Store holds the per-shop settings store configuration.
type Store struct {
	Backend string // "file" = one JSON file per shop, "db" = database table

	// Path is the directory holding <sanitized shop>.json files.
	// Only used by the file backend.
	Path string

	// StrictValidation rejects settings documents with unknown enum
	// values instead of passing them through unchanged.
	StrictValidation bool

	// SymmetricMerge merges a posted document over the stored record at
	// write time instead of replacing the record in full. Off keeps the
	// original replace-on-write behavior for compatibility with data
	// written by older clients.
	SymmetricMerge bool
}

// Shopify holds the embedded-app credentials used to verify session
// tokens and webhook signatures issued by the host platform.
type Shopify struct {
	APIKey    string // public app client id, audience of session tokens
	APISecret string // app client secret, HMAC key for tokens and webhooks
	AppURL    string // public base url of the app
	Scopes    string // comma separated access scopes
}
