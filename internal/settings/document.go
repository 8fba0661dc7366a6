// Package settings defines the per-shop sharing-button settings document,
// its hard-coded defaults and the merge rules used when a stored record is
// resolved for a shop.
package settings

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Button style values accepted by the storefront extension.
const (
	ButtonStyleIconOnly = "icon-only"
	ButtonStyleIconText = "icon-text"
	ButtonStyleTextOnly = "text-only"
)

// Button size values accepted by the storefront extension.
const (
	ButtonSizeSmall  = "small"
	ButtonSizeMedium = "medium"
	ButtonSizeLarge  = "large"
)

// Document is the settings record for one shop. Platforms is an ordered
// list; order is display order. ButtonColor is not shown in the admin UI
// and is carried through unchanged.
type Document struct {
	Platforms   []string `json:"platforms" validate:"omitempty,dive,required"`
	ButtonStyle string   `json:"buttonStyle" validate:"omitempty,oneof=icon-only icon-text text-only"`
	ButtonSize  string   `json:"buttonSize" validate:"omitempty,oneof=small medium large"`
	ButtonColor string   `json:"buttonColor,omitempty"`
}

// Default returns the document served when a shop has no stored record.
func Default() Document {
	return Document{
		Platforms:   []string{"whatsapp", "facebook", "twitter", "pinterest", "linkedin"},
		ButtonStyle: ButtonStyleIconOnly,
		ButtonSize:  ButtonSizeMedium,
		ButtonColor: "default",
	}
}

// DefaultRaw returns the default document as its JSON wire form.
func DefaultRaw() json.RawMessage {
	out, err := json.Marshal(Default())
	if err != nil {
		// Default() contains only plain strings, this cannot happen.
		panic(err)
	}

	return out
}

// MergeRaw shallow-merges overlay onto base at the JSON object level.
// Keys defined by overlay win; keys only present in base are kept. Unknown
// keys in overlay survive verbatim, so records written by newer clients
// round-trip through older servers unchanged.
func MergeRaw(base, overlay json.RawMessage) (json.RawMessage, error) {
	var baseFields map[string]json.RawMessage
	if err := json.Unmarshal(base, &baseFields); err != nil {
		return nil, errors.Wrap(err, "merge base is not a json object")
	}

	var overlayFields map[string]json.RawMessage
	if err := json.Unmarshal(overlay, &overlayFields); err != nil {
		return nil, errors.Wrap(err, "merge overlay is not a json object")
	}

	for k, v := range overlayFields {
		baseFields[k] = v
	}

	out, err := json.Marshal(baseFields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal merged document")
	}

	return out, nil
}
