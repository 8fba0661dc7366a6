package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socioshare/socioshare/internal/store"
)

// stubStore serves canned records for Resolve tests.
type stubStore struct {
	records map[string]json.RawMessage
}

func (s *stubStore) Get(shop string) (json.RawMessage, error) {
	if raw, ok := s.records[shop]; ok {
		return raw, nil
	}

	return nil, store.ErrNotFound
}

func (s *stubStore) Put(shop string, doc json.RawMessage) error {
	s.records[shop] = doc
	return nil
}

func TestResolveNoRecordReturnsDefaults(t *testing.T) {
	st := &stubStore{records: map[string]json.RawMessage{}}

	doc, stored := Resolve(st, "new-shop.example.com")

	assert.False(t, stored)
	assert.JSONEq(t, string(DefaultRaw()), string(doc))
}

func TestResolvePartialRecordMergesOverDefaults(t *testing.T) {
	st := &stubStore{records: map[string]json.RawMessage{
		"shop.example.com": json.RawMessage(`{"buttonStyle":"text-only"}`),
	}}

	doc, stored := Resolve(st, "shop.example.com")
	assert.True(t, stored)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(doc, &fields))

	assert.Equal(t, "text-only", fields["buttonStyle"])
	assert.Equal(t, "medium", fields["buttonSize"])
	assert.Equal(t, "default", fields["buttonColor"])
	assert.Len(t, fields["platforms"], 5)
}

func TestResolveRecordFieldsNeverLoseToDefaults(t *testing.T) {
	st := &stubStore{records: map[string]json.RawMessage{
		"shop.example.com": json.RawMessage(`{"platforms":[],"buttonStyle":"icon-text","buttonSize":"large","buttonColor":"red"}`),
	}}

	doc, _ := Resolve(st, "shop.example.com")

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(doc, &fields))

	assert.Equal(t, "icon-text", fields["buttonStyle"])
	assert.Equal(t, "large", fields["buttonSize"])
	assert.Equal(t, "red", fields["buttonColor"])
	// an explicitly empty selection is a stored value, not a missing key
	assert.Empty(t, fields["platforms"])
}

func TestResolveNonObjectRecordDegradesToDefaults(t *testing.T) {
	st := &stubStore{records: map[string]json.RawMessage{
		"shop.example.com": json.RawMessage(`[1,2,3]`),
	}}

	doc, stored := Resolve(st, "shop.example.com")

	assert.False(t, stored)
	assert.JSONEq(t, string(DefaultRaw()), string(doc))
}
