package oracle

import "strings"

// Tabletop Simulator description markup
const (
	dim      = "[6E6E6E]"
	endColor = "[-]"
)

// rarityTags maps rarity to its glyph; colours are Scryfall's
var rarityTags = map[string]string{
	"mythic":   "[f64800]「M」[-]",
	"rare":     "[c5b37c]「R」[-]",
	"uncommon": "[6c848c]「U」[-]",
	"common":   "「C」",
	"special":  "[905d98]「S」[-]",
	"bonus":    "[9c202b]「B」[-]",
}

// Rarity returns the glyph tag for a rarity, or "" if it is unknown
func Rarity(rarity string) string {
	return rarityTags[rarity]
}

var reminder = strings.NewReplacer("(", "[i](", ")", ")[/i]")

// Italicize wraps parenthesized reminder text in italics, keeping the
// parentheses inside the markup.
func Italicize(s string) string {
	return reminder.Replace(s)
}

func bold(s string) string { return "[b]" + s + "[/b]" }
