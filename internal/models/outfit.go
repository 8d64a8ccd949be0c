// ABOUTME: Outfit suggestion model with fixed canonical garment slots
// ABOUTME: Normalizes slot names and validates parsed generative output
package models

import "strings"

// Canonical garment slots recognized in generated outfit suggestions
const (
	SlotTop         = "Top"
	SlotBottom      = "Bottom"
	SlotShoes       = "Shoes"
	SlotAccessories = "Accessories"
)

// Outfit is one structured outfit suggestion parsed from generative model
// output. The four canonical slots are fixed fields; anything else the
// model emitted lands in Extra keyed by its normalized name.
type Outfit struct {
	Top         string            `json:"top,omitempty"`
	Bottom      string            `json:"bottom,omitempty"`
	Shoes       string            `json:"shoes,omitempty"`
	Accessories string            `json:"accessories,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// NormalizeSlot canonicalizes a slot name: trims, capitalizes the first
// letter, and maps the "Shoe" alias to "Shoes".
func NormalizeSlot(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	key = strings.ToUpper(key[:1]) + strings.ToLower(key[1:])
	if key == "Shoe" {
		return SlotShoes
	}
	return key
}

// SetSlot assigns a value to the named slot, routing unrecognized names
// into Extra. The name must already be normalized.
func (o *Outfit) SetSlot(name, value string) {
	switch name {
	case SlotTop:
		o.Top = value
	case SlotBottom:
		o.Bottom = value
	case SlotShoes:
		o.Shoes = value
	case SlotAccessories:
		o.Accessories = value
	default:
		if o.Extra == nil {
			o.Extra = make(map[string]string)
		}
		o.Extra[name] = value
	}
}

// Slot returns the value for a normalized slot name, empty if unset.
func (o *Outfit) Slot(name string) string {
	switch name {
	case SlotTop:
		return o.Top
	case SlotBottom:
		return o.Bottom
	case SlotShoes:
		return o.Shoes
	case SlotAccessories:
		return o.Accessories
	default:
		return o.Extra[name]
	}
}

// SlotCount returns the number of populated slots including Extra entries.
// An outfit with zero populated slots is invalid and must be dropped.
func (o *Outfit) SlotCount() int {
	count := 0
	for _, v := range []string{o.Top, o.Bottom, o.Shoes, o.Accessories} {
		if v != "" {
			count++
		}
	}
	return count + len(o.Extra)
}
