// ABOUTME: Tests for outfit slot normalization and fixed-shape records
// ABOUTME: Verifies Shoe aliasing, overflow routing, and slot counting
package models

import "testing"

func TestNormalizeSlot(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"already canonical", "Top", "Top"},
		{"lowercase", "top", "Top"},
		{"uppercase", "BOTTOM", "Bottom"},
		{"shoe alias", "Shoe", "Shoes"},
		{"lowercase shoe alias", "shoe", "Shoes"},
		{"shoes passthrough", "shoes", "Shoes"},
		{"accessories", "accessories", "Accessories"},
		{"whitespace trimmed", "  top  ", "Top"},
		{"empty", "", ""},
		{"unrecognized kept", "outerwear", "Outerwear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSlot(tt.key); got != tt.want {
				t.Errorf("NormalizeSlot(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestOutfit_SetSlot(t *testing.T) {
	var o Outfit
	o.SetSlot(SlotTop, "linen shirt")
	o.SetSlot(SlotBottom, "chinos")
	o.SetSlot(SlotShoes, "white sneakers")
	o.SetSlot(SlotAccessories, "leather watch")
	o.SetSlot("Outerwear", "denim jacket")

	if o.Top != "linen shirt" {
		t.Errorf("Top = %q, want %q", o.Top, "linen shirt")
	}
	if o.Shoes != "white sneakers" {
		t.Errorf("Shoes = %q, want %q", o.Shoes, "white sneakers")
	}
	if o.Extra["Outerwear"] != "denim jacket" {
		t.Errorf("Extra[Outerwear] = %q, want %q", o.Extra["Outerwear"], "denim jacket")
	}
	if got := o.Slot("Outerwear"); got != "denim jacket" {
		t.Errorf("Slot(Outerwear) = %q, want %q", got, "denim jacket")
	}
}

func TestOutfit_SlotCount(t *testing.T) {
	tests := []struct {
		name   string
		outfit Outfit
		want   int
	}{
		{
			name:   "empty outfit",
			outfit: Outfit{},
			want:   0,
		},
		{
			name:   "canonical slots only",
			outfit: Outfit{Top: "shirt", Shoes: "boots"},
			want:   2,
		},
		{
			name:   "extra slots counted",
			outfit: Outfit{Top: "shirt", Extra: map[string]string{"Outerwear": "coat"}},
			want:   2,
		},
		{
			name:   "all four plus extra",
			outfit: Outfit{Top: "a", Bottom: "b", Shoes: "c", Accessories: "d", Extra: map[string]string{"Hat": "e"}},
			want:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outfit.SlotCount(); got != tt.want {
				t.Errorf("SlotCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
