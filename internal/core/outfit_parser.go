// ABOUTME: Parser turning free-text stylist model output into outfits
// ABOUTME: Tolerates missing separators and drops malformed sections
package core

import (
	"errors"
	"regexp"
	"strings"

	"github.com/harper/stylist/internal/models"
)

// ErrNoOutfits indicates the model output yielded zero valid outfits.
// Callers treat this as "generation failed, ask the user to retry", not
// as a crash.
var ErrNoOutfits = errors.New("no valid outfits in model output")

// outfitSeparator matches numbered outfit headers like "1. Outfit:".
// Generative output is not format-guaranteed; the model sometimes omits
// the header before the first outfit, so the text before the first match
// is parsed as a chunk too.
var outfitSeparator = regexp.MustCompile(`(?m)^\s*\d+\s*\.\s*Outfit\s*:`)

// bulletLine matches slot lines like "- Top: linen shirt" with -, * or •
// markers
var bulletLine = regexp.MustCompile(`^\s*[-*•]\s*([A-Za-z][A-Za-z ]*?)\s*:\s*(.+)$`)

// ParseOutfits splits raw model output into structured outfit suggestions.
// Sections yielding zero recognized slots are silently dropped; when the
// whole text yields nothing, ErrNoOutfits is returned so callers can
// re-prompt instead of presenting garbage.
func ParseOutfits(raw string) ([]models.Outfit, error) {
	chunks := outfitSeparator.Split(raw, -1)

	var outfits []models.Outfit
	for _, chunk := range chunks {
		outfit, ok := parseOutfitChunk(chunk)
		if ok {
			outfits = append(outfits, outfit)
		}
	}

	if len(outfits) == 0 {
		return nil, ErrNoOutfits
	}
	return outfits, nil
}

// parseOutfitChunk extracts slot bullets from one outfit section. The
// second return is false when no slot was recognized.
func parseOutfitChunk(chunk string) (models.Outfit, bool) {
	var outfit models.Outfit

	for _, line := range strings.Split(chunk, "\n") {
		match := bulletLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		slot := models.NormalizeSlot(match[1])
		value := strings.TrimSpace(match[2])
		if slot == "" || value == "" {
			continue
		}
		outfit.SetSlot(slot, value)
	}

	return outfit, outfit.SlotCount() > 0
}
