// Package models contains database model definitions.
package models

// ShopSettings represents one shop's settings record stored in the database.
// Shop holds the sanitized storage key, Document the exact JSON body most
// recently written for that shop.
type ShopSettings struct {
	ID       uint64 `gorm:"primaryKey"`
	Shop     string `gorm:"unique"`
	Document []byte `gorm:"type:blob"`
}
