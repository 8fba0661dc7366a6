package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/socioshare/socioshare/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.ShopSettings{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func setupDBStore(t *testing.T) *DBStore {
	t.Helper()

	st, err := NewDBStore(setupTestDB(t))
	require.NoError(t, err)

	return st
}

func TestNewDBStoreNilDB(t *testing.T) {
	_, err := NewDBStore(nil)
	assert.ErrorIs(t, err, ErrDBNil)
}

func TestDBStoreGetMissing(t *testing.T) {
	st := setupDBStore(t)

	_, err := st.Get("no-such-shop.example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDBStorePutGetRoundtrip(t *testing.T) {
	st := setupDBStore(t)

	doc := json.RawMessage(`{"platforms":["whatsapp"],"buttonStyle":"text-only"}`)
	require.NoError(t, st.Put("shop.example.com", doc))

	got, err := st.Get("shop.example.com")
	require.NoError(t, err)
	assert.JSONEq(t, string(doc), string(got))
}

func TestDBStorePutReplacesInFull(t *testing.T) {
	st := setupDBStore(t)

	require.NoError(t, st.Put("shop.example.com", json.RawMessage(`{"buttonStyle":"text-only","buttonSize":"large"}`)))
	require.NoError(t, st.Put("shop.example.com", json.RawMessage(`{"buttonStyle":"icon-text"}`)))

	got, err := st.Get("shop.example.com")
	require.NoError(t, err)
	assert.JSONEq(t, `{"buttonStyle":"icon-text"}`, string(got))
}

func TestDBStoreTenantsDoNotInterfere(t *testing.T) {
	st := setupDBStore(t)

	require.NoError(t, st.Put("one.example.com", json.RawMessage(`{"buttonSize":"small"}`)))
	require.NoError(t, st.Put("two.example.com", json.RawMessage(`{"buttonSize":"large"}`)))

	one, err := st.Get("one.example.com")
	require.NoError(t, err)
	assert.JSONEq(t, `{"buttonSize":"small"}`, string(one))

	two, err := st.Get("two.example.com")
	require.NoError(t, err)
	assert.JSONEq(t, `{"buttonSize":"large"}`, string(two))
}

func TestDBStoreSanitizeCollisionAliases(t *testing.T) {
	st := setupDBStore(t)

	require.NoError(t, st.Put("a-b.myshopify.com", json.RawMessage(`{"buttonSize":"small"}`)))

	aliased, err := st.Get("a.b.myshopify.com")
	require.NoError(t, err)
	assert.JSONEq(t, `{"buttonSize":"small"}`, string(aliased))

	// one row, not two
	var count int64
	require.NoError(t, st.db.Model(&models.ShopSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDBStoreMalformedRecordTreatedAsAbsent(t *testing.T) {
	st := setupDBStore(t)

	require.NoError(t, st.db.Create(&models.ShopSettings{
		Shop:     Sanitize("shop.example.com"),
		Document: []byte("{not json"),
	}).Error)

	_, err := st.Get("shop.example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDBStoreEmptyShopKey(t *testing.T) {
	st := setupDBStore(t)

	_, err := st.Get("")
	assert.ErrorIs(t, err, ErrShopEmpty)

	err = st.Put("", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrShopEmpty)
}
