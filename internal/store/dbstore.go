package store

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/socioshare/socioshare/internal/db/models"
)

const shopQueryPattern = "shop = ?"

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// DBStore persists one ShopSettings row per sanitized shop key.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a DBStore on top of an open gorm connection.
func NewDBStore(db *gorm.DB) (*DBStore, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return &DBStore{db: db}, nil
}

// Get returns the raw record for the shop. A missing row and a row whose
// document is not valid JSON both report ErrNotFound.
func (s *DBStore) Get(shop string) (json.RawMessage, error) {
	if shop == "" {
		return nil, ErrShopEmpty
	}

	var record models.ShopSettings

	result := s.db.Where(shopQueryPattern, Sanitize(shop)).First(&record)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().Err(result.Error).Str("shop", shop).Msg("settings record unreadable, treating as absent")
		}

		return nil, ErrNotFound
	}

	if !json.Valid(record.Document) {
		log.Warn().Str("shop", shop).Msg("settings record is not valid json, treating as absent")

		return nil, ErrNotFound
	}

	return record.Document, nil
}

// Put replaces the shop's record with doc in full (upsert by shop key).
func (s *DBStore) Put(shop string, doc json.RawMessage) error {
	if shop == "" {
		return ErrShopEmpty
	}

	key := Sanitize(shop)

	var record models.ShopSettings

	result := s.db.Where(shopQueryPattern, key).First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		record = models.ShopSettings{
			Shop:     key,
			Document: doc,
		}

		if err := s.db.Create(&record).Error; err != nil {
			return errors.Wrap(err, "failed to create settings record")
		}

		return nil
	}

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to look up settings record")
	}

	record.Document = doc

	if err := s.db.Save(&record).Error; err != nil {
		return errors.Wrap(err, "failed to update settings record")
	}

	return nil
}
