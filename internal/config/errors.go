package config

import (
	"errors"
)

var (
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownStoreBackend error if config store.backend is not file or db.
	ErrUnknownStoreBackend = errors.New("toml config store.backend must be file or db")

	// ErrEmptyStorePath error if the file backend is selected without a path.
	ErrEmptyStorePath = errors.New("toml config store.path can not be empty for the file backend")

	// ErrUnknownDBEngine error if config db.engine is not a supported engine.
	ErrUnknownDBEngine = errors.New("toml config db.engine must be sqlite, mysql or postgres")
)
