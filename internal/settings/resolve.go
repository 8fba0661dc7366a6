package settings

import (
	"encoding/json"

	"github.com/socioshare/socioshare/internal/store"
)

// Resolve returns the settings document for a shop with defaults filled in
// and reports whether a stored record contributed to it. Absence of a
// record is not an error: a missing or unreadable record degrades to the
// default document. A partial record is merged on top of the defaults,
// record fields winning for every key the record defines.
func Resolve(st store.Store, shop string) (json.RawMessage, bool) {
	raw, err := st.Get(shop)
	if err != nil {
		return DefaultRaw(), false
	}

	merged, err := MergeRaw(DefaultRaw(), raw)
	if err != nil {
		// stored record is not a json object, treat it as absent
		return DefaultRaw(), false
	}

	return merged, true
}
