package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// FileStore keeps one <sanitized shop>.json file per shop under a root
// directory. Writes go through a temp file and rename, so a record is
// never observed half-written by a concurrent reader.
type FileStore struct {
	root string
}

// NewFileStore creates a FileStore rooted at dir, creating dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil { //nolint: mnd
		return nil, errors.Wrap(err, "failed to create settings store directory")
	}

	return &FileStore{root: dir}, nil
}

// Get returns the raw record for the shop. Missing files and files that
// do not hold valid JSON both report ErrNotFound.
func (f *FileStore) Get(shop string) (json.RawMessage, error) {
	if shop == "" {
		return nil, ErrShopEmpty
	}

	data, err := os.ReadFile(f.path(shop))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("shop", shop).Msg("settings record unreadable, treating as absent")
		}

		return nil, ErrNotFound
	}

	if !json.Valid(data) {
		log.Warn().Str("shop", shop).Msg("settings record is not valid json, treating as absent")

		return nil, ErrNotFound
	}

	return data, nil
}

// Put replaces the shop's record with doc in full.
func (f *FileStore) Put(shop string, doc json.RawMessage) error {
	if shop == "" {
		return ErrShopEmpty
	}

	target := f.path(shop)

	tmp, err := os.CreateTemp(f.root, Sanitize(shop)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp settings file")
	}

	tmpName := tmp.Name()

	if _, err = tmp.Write(doc); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return errors.Wrap(err, "failed to write settings record")
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return errors.Wrap(err, "failed to close temp settings file")
	}

	if err = os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)

		return errors.Wrap(err, "failed to replace settings record")
	}

	return nil
}

func (f *FileStore) path(shop string) string {
	return filepath.Join(f.root, Sanitize(shop)+".json")
}
