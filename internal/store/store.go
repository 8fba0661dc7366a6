// Package store maps a shop identifier to its raw settings record.
//
// Backends persist exactly the bytes they are given and return exactly the
// bytes they hold; default filling and merging happen above the store. Reads
// degrade to ErrNotFound for missing or unreadable records, writes replace
// the record in full. There is no cross-request locking: concurrent writes
// to the same shop race and the last write wins.
package store

import (
	"encoding/json"
	"errors"
	"regexp"
)

var (
	// ErrNotFound is returned when no readable record exists for a shop.
	ErrNotFound = errors.New("settings record not found")

	// ErrShopEmpty is returned when the shop key is empty.
	ErrShopEmpty = errors.New("shop key cannot be empty")
)

// Store is the per-shop settings persistence interface.
type Store interface {
	// Get returns the raw stored record for the shop, or ErrNotFound.
	Get(shop string) (json.RawMessage, error)

	// Put replaces the shop's record with doc in full.
	Put(shop string, doc json.RawMessage) error
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// Sanitize derives the storage key for a shop identifier by replacing
// every character outside [A-Za-z0-9] with an underscore. Two distinct
// shop identifiers differing only in stripped characters alias to the
// same storage key; see the package tests asserting this behavior.
func Sanitize(shop string) string {
	return nonAlnum.ReplaceAllString(shop, "_")
}
