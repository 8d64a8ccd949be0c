// ABOUTME: Tests for parsing free-text stylist output into outfits
// ABOUTME: Covers malformed sections, missing separators, and slot aliases
package core

import (
	"errors"
	"testing"

	"github.com/harper/stylist/internal/models"
)

const wellFormedOutput = `Here are some outfit combinations for you:

1. Outfit:
- Top: white linen shirt
- Bottom: beige chinos
- Shoes: brown loafers
- Accessories: woven belt

2. Outfit:
- Top: navy polo
- Bottom: white shorts
- Shoe: boat shoes

3. Outfit:
- Top: pastel oxford shirt
- Bottom: light jeans
`

func TestParseOutfits_WellFormed(t *testing.T) {
	outfits, err := ParseOutfits(wellFormedOutput)
	if err != nil {
		t.Fatalf("ParseOutfits() error: %v", err)
	}
	if len(outfits) != 3 {
		t.Fatalf("got %d outfits, want 3", len(outfits))
	}

	first := outfits[0]
	if first.Top != "white linen shirt" {
		t.Errorf("Top = %q, want %q", first.Top, "white linen shirt")
	}
	if first.Accessories != "woven belt" {
		t.Errorf("Accessories = %q, want %q", first.Accessories, "woven belt")
	}

	// "Shoe" alias normalizes to Shoes
	if outfits[1].Shoes != "boat shoes" {
		t.Errorf("outfit 2 Shoes = %q, want %q (Shoe alias)", outfits[1].Shoes, "boat shoes")
	}
}

func TestParseOutfits_DropsMalformedSection(t *testing.T) {
	raw := `1. Outfit:
- Top: white shirt
- Bottom: jeans

2. Outfit:
this section has prose but no recognizable bullet lines at all

3. Outfit:
- Top: black tee
- Shoes: sneakers

4. Outfit:
- Bottom: shorts
`

	outfits, err := ParseOutfits(raw)
	if err != nil {
		t.Fatalf("ParseOutfits() error: %v", err)
	}
	if len(outfits) != 3 {
		t.Errorf("got %d outfits, want 3 (malformed section dropped)", len(outfits))
	}
}

func TestParseOutfits_MissingFirstSeparator(t *testing.T) {
	// Models sometimes omit the numbered header before the first outfit
	raw := `- Top: cream sweater
- Bottom: wool trousers

2. Outfit:
- Top: flannel shirt
- Bottom: dark jeans
`

	outfits, err := ParseOutfits(raw)
	if err != nil {
		t.Fatalf("ParseOutfits() error: %v", err)
	}
	if len(outfits) != 2 {
		t.Fatalf("got %d outfits, want 2", len(outfits))
	}
	if outfits[0].Top != "cream sweater" {
		t.Errorf("first outfit Top = %q, want %q", outfits[0].Top, "cream sweater")
	}
}

func TestParseOutfits_NoValidOutfits(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"plain prose", "I think you would look great in something casual yet refined."},
		{"headers without bullets", "1. Outfit:\nnothing here\n2. Outfit:\nnothing here either"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outfits, err := ParseOutfits(tt.raw)
			if !errors.Is(err, ErrNoOutfits) {
				t.Errorf("expected ErrNoOutfits, got %v", err)
			}
			if outfits != nil {
				t.Errorf("expected nil outfits, got %v", outfits)
			}
		})
	}
}

func TestParseOutfits_SlotNormalization(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"lowercase shoe alias", "- shoe: white sneakers"},
		{"canonical shoes", "- Shoes: white sneakers"},
		{"uppercase", "- SHOES: white sneakers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outfits, err := ParseOutfits("1. Outfit:\n" + tt.line + "\n")
			if err != nil {
				t.Fatalf("ParseOutfits() error: %v", err)
			}
			if outfits[0].Shoes != "white sneakers" {
				t.Errorf("Shoes = %q, want %q", outfits[0].Shoes, "white sneakers")
			}
		})
	}
}

func TestParseOutfits_BulletVariants(t *testing.T) {
	raw := "1. Outfit:\n* Top: tee\n• Bottom: jeans\n- Accessories: cap\n"

	outfits, err := ParseOutfits(raw)
	if err != nil {
		t.Fatalf("ParseOutfits() error: %v", err)
	}
	o := outfits[0]
	if o.Top != "tee" || o.Bottom != "jeans" || o.Accessories != "cap" {
		t.Errorf("bullet variants not all recognized: %+v", o)
	}
}

func TestParseOutfits_UnrecognizedSlotGoesToExtra(t *testing.T) {
	raw := "1. Outfit:\n- Top: shirt\n- Outerwear: trench coat\n"

	outfits, err := ParseOutfits(raw)
	if err != nil {
		t.Fatalf("ParseOutfits() error: %v", err)
	}
	if outfits[0].Extra["Outerwear"] != "trench coat" {
		t.Errorf("Extra = %v, want Outerwear entry", outfits[0].Extra)
	}
	if outfits[0].Slot(models.SlotTop) != "shirt" {
		t.Errorf("Top = %q, want shirt", outfits[0].Top)
	}
}
