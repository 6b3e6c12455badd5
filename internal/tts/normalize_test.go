package tts

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/ttsforge/internal/card"
	"github.com/arcanaland/ttsforge/internal/oracle"
)

func decodeOne(t *testing.T, rec string) card.Card {
	t.Helper()
	cards, err := card.Decode([]byte("[" + rec + "]"))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	return cards[0]
}

func TestNormalize_Normal(t *testing.T) {
	c := decodeOne(t, `{"name": "Llanowar Elves", "set": "dom", "collector_number": "168", "rarity": "common",
		"layout": "Normal", "oracle_id": "o-elf", "mana_cost": "{G}", "type_line": "Creature — Elf Druid", "cmc": 1,
		"oracle_text": "{T}: Add {G}.", "power": "1", "toughness": "1",
		"image_uris": {"normal": "n.jpg", "small": "s.jpg", "png": "p.png"}}`)

	got, err := Normalize(c)
	require.NoError(t, err)

	want := Record{
		OracleID:        "o-elf",
		CMC:             1,
		TypeLine:        "Creature — Elf Druid",
		Set:             "dom",
		Name:            "Llanowar Elves",
		CollectorNumber: "168",
		Layout:          "normal",
		Details: &Details{
			OracleText: "[b]Llanowar Elves {G}[/b]\nCreature — Elf Druid 「C」\n{T}: Add {G}.\n[b]1/1[/b]",
			ImageURIs:  Images{Normal: "n.jpg", Small: "s.jpg"},
			Power:      "1",
			Toughness:  "1",
			ManaCost:   "{G}",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_CanonicalLayouts(t *testing.T) {
	tests := map[card.Layout]string{
		card.LayoutNormal:     "normal",
		card.LayoutMeld:       "normal",
		card.LayoutLeveler:    "normal",
		card.LayoutHost:       "normal",
		card.LayoutClass:      "normal",
		card.LayoutSaga:       "normal",
		card.LayoutSplit:      "split",
		card.LayoutFlip:       "flip",
		card.LayoutAdventure:  "adventure",
		card.LayoutTransform:  "transform",
		card.LayoutModalDFC:   "transform",
		card.LayoutReversible: "reversible_card",
		card.LayoutVanguard:   "vanguard",
		card.LayoutToken:      "",
		card.LayoutArtSeries:  "",
	}
	for l, want := range tests {
		assert.Equal(t, want, CanonicalLayout(l), l)
	}
}

func TestNormalize_Transform(t *testing.T) {
	c := decodeOne(t, `{"name": "Delver of Secrets // Insectile Aberration", "set": "isd", "collector_number": "51",
		"rarity": "common", "layout": "transform", "oracle_id": "o-delver", "type_line": "Creature — Human Wizard // Creature — Human Insect",
		"cmc": 1,
		"card_faces": [
			{"name": "Delver of Secrets", "mana_cost": "{U}", "type_line": "Creature — Human Wizard",
			 "oracle_text": "Transform it.", "power": "1", "toughness": "1",
			 "image_uris": {"normal": "f.jpg", "small": "fs.jpg", "png": ""}},
			{"name": "Insectile Aberration", "mana_cost": "", "type_line": "Creature — Human Insect",
			 "oracle_text": "Flying", "power": "3", "toughness": "2",
			 "image_uris": {"normal": "b.jpg", "small": "bs.jpg", "png": ""}}
		]}`)

	got, err := Normalize(c)
	require.NoError(t, err)

	assert.Equal(t, "transform", got.Layout)
	assert.Nil(t, got.Details)
	require.Len(t, got.CardFaces, 2)
	assert.Equal(t, 1.0, got.CMC)

	front, back := got.CardFaces[0], got.CardFaces[1]
	assert.Equal(t, "Delver of Secrets", front.Name)
	assert.Equal(t, Images{Normal: "f.jpg", Small: "fs.jpg"}, front.ImageURIs)
	assert.Equal(t, Images{Normal: "b.jpg", Small: "bs.jpg"}, back.ImageURIs)
	assert.Equal(t, Stat("3"), back.Power)

	d := c.(*card.DoubleFaced)
	assert.Equal(t, oracle.DoubleFaced(d.CardFaces[0], d.CardFaces[1], "common", true), front.OracleText)
	assert.Equal(t, oracle.DoubleFaced(d.CardFaces[0], d.CardFaces[1], "common", false), back.OracleText)
}

func TestNormalize_ModalDFCDefaults(t *testing.T) {
	c := decodeOne(t, `{"name": "Valki // Tibalt", "set": "khm", "collector_number": "114", "rarity": "mythic",
		"layout": "modal_dfc", "oracle_id": "o-valki",
		"card_faces": [
			{"name": "Valki, God of Lies", "mana_cost": "{1}{B}"},
			{"name": "Tibalt, Cosmic Impostor", "mana_cost": "{5}{B}{R}", "loyalty": "5"}
		]}`)

	got, err := Normalize(c)
	require.NoError(t, err)

	assert.Equal(t, "transform", got.Layout)
	assert.Equal(t, 0.0, got.CMC)
	assert.Equal(t, "", got.TypeLine)
	assert.Equal(t, Stat("5"), got.CardFaces[1].Loyalty)
	assert.Equal(t, Stat(""), got.CardFaces[0].Power)
	assert.Equal(t, Images{}, got.CardFaces[0].ImageURIs)
}

func TestNormalize_Reversible(t *testing.T) {
	c := decodeOne(t, `{"name": "Zndrsplt // Zndrsplt", "set": "sld", "collector_number": "379", "rarity": "rare",
		"layout": "reversible_card",
		"card_faces": [
			{"name": "Zndrsplt", "mana_cost": "{2}{U}", "oracle_id": "o-z", "cmc": 3, "type_line": "Legendary Creature — Homunculus",
			 "power": "1", "toughness": "1", "image_uris": {"normal": "z1.jpg", "small": "z1s.jpg", "png": ""}},
			{"name": "Zndrsplt", "mana_cost": "{2}{U}", "oracle_id": "o-z", "cmc": 3, "type_line": "Legendary Creature — Homunculus"}
		]}`)

	got, err := Normalize(c)
	require.NoError(t, err)

	assert.Equal(t, "reversible_card", got.Layout)
	assert.Equal(t, "Legendary Creature — Homunculus // Legendary Creature — Homunculus", got.TypeLine)
	assert.Equal(t, 3.0, got.CMC)
	assert.Equal(t, "o-z", got.OracleID)
	require.Len(t, got.CardFaces, 2)
	assert.Equal(t, Images{Normal: "z1.jpg"}, got.CardFaces[0].ImageURIs)
	assert.Equal(t, Images{Normal: placeholderImage}, got.CardFaces[1].ImageURIs)
	assert.Contains(t, got.CardFaces[0].OracleText, "[b]Zndrsplt {2}{U}[/b]")
}

func TestNormalize_FlipUsesCardImage(t *testing.T) {
	c := decodeOne(t, `{"name": "Akki Lavarunner // Tok-Tok", "set": "chk", "collector_number": "153", "rarity": "rare",
		"layout": "flip", "oracle_id": "o-akki", "mana_cost": "{3}{R}", "type_line": "Creature — Goblin Warrior // Legendary Creature — Goblin Shaman",
		"cmc": 4, "image_uris": {"normal": "akki.jpg", "small": "akki-s.jpg", "png": ""},
		"card_faces": [
			{"name": "Akki Lavarunner", "mana_cost": "{3}{R}", "power": "1", "toughness": "1"},
			{"name": "Tok-Tok, Volcano Born", "mana_cost": "", "power": "2", "toughness": "2"}
		]}`)

	got, err := Normalize(c)
	require.NoError(t, err)

	assert.Equal(t, "flip", got.Layout)
	require.Len(t, got.CardFaces, 2)
	for _, f := range got.CardFaces {
		assert.Equal(t, Images{Normal: "akki.jpg", Small: "akki-s.jpg"}, f.ImageURIs)
	}
}

func TestNormalize_SplitAndAdventureAreFlat(t *testing.T) {
	split := decodeOne(t, `{"name": "Fire // Ice", "set": "mh2", "collector_number": "290", "rarity": "uncommon",
		"layout": "split", "oracle_id": "o-fi", "mana_cost": "{1}{R} // {1}{U}", "type_line": "Instant // Instant",
		"cmc": 4, "image_uris": {"normal": "fi.jpg", "small": "fi-s.jpg", "png": ""},
		"card_faces": [
			{"name": "Fire", "mana_cost": "{1}{R}", "type_line": "Instant", "oracle_text": "Fire deals 2 damage divided as you choose."},
			{"name": "Ice", "mana_cost": "{1}{U}", "type_line": "Instant", "oracle_text": "Tap target permanent."}
		]}`)

	got, err := Normalize(split)
	require.NoError(t, err)
	assert.Equal(t, "split", got.Layout)
	assert.Empty(t, got.CardFaces)
	require.NotNil(t, got.Details)
	assert.Equal(t, "{1}{R} // {1}{U}", got.ManaCost)
	assert.Equal(t, Stat(""), got.Power)
	assert.Contains(t, got.OracleText, "[b]Ice {1}{U}[/b]")

	adventure := decodeOne(t, `{"name": "Bonecrusher Giant // Stomp", "set": "eld", "collector_number": "115", "rarity": "rare",
		"layout": "adventure", "oracle_id": "o-bg", "mana_cost": "{2}{R} // {1}{R}", "type_line": "Creature — Giant // Instant — Adventure",
		"cmc": 3, "image_uris": {"normal": "bg.jpg", "small": "bg-s.jpg", "png": ""}}`)

	got, err = Normalize(adventure)
	require.NoError(t, err)
	assert.Equal(t, "adventure", got.Layout)
	assert.Equal(t, Images{Normal: "bg.jpg", Small: "bg-s.jpg"}, got.ImageURIs)
}

func TestNormalize_Vanguard(t *testing.T) {
	c := decodeOne(t, `{"name": "Akroma", "set": "pvan", "collector_number": "1", "rarity": "special",
		"layout": "vanguard", "type_line": "Vanguard", "oracle_text": "Creatures you control have flying.",
		"life_modifier": "-2", "hand_modifier": "1", "image_uris": {"normal": "v.jpg", "small": "vs.jpg", "png": ""}}`)

	got, err := Normalize(c)
	require.NoError(t, err)
	assert.Equal(t, "vanguard", got.Layout)
	assert.Equal(t, Images{Normal: "v.jpg"}, got.ImageURIs)
	assert.Equal(t, "", got.ManaCost)
	assert.Contains(t, got.OracleText, "Life: -2 + 20 = [b]18[/b]")
	assert.Contains(t, got.OracleText, "Hand: 1 + 7 = [b]8[/b]")
}

func TestNormalize_UnplayableIsRejected(t *testing.T) {
	c := decodeOne(t, `{"name": "Soldier", "set": "tm10", "collector_number": "1", "rarity": "common", "layout": "token"}`)

	_, err := Normalize(c)
	assert.True(t, errors.Is(err, ErrNotExportable))
}

func TestRecord_JSONShape(t *testing.T) {
	single := Record{
		Set: "dom", Name: "Island", CollectorNumber: "254", Layout: "normal",
		Details: &Details{ManaCost: "", ImageURIs: Images{Normal: "i.jpg"}},
	}
	b, err := json.Marshal(single)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, 0.0, m["power"])
	assert.Equal(t, 0.0, m["loyalty"])
	assert.Equal(t, "", m["mana_cost"])
	assert.NotContains(t, m, "card_faces")
	assert.Equal(t, map[string]any{"normal": "i.jpg"}, m["image_uris"])

	multi := Record{Layout: "transform", CardFaces: []Face{{Name: "A", Power: "*"}}}
	b, err = json.Marshal(multi)
	require.NoError(t, err)
	m = nil
	require.NoError(t, json.Unmarshal(b, &m))
	assert.NotContains(t, m, "oracle_text")
	assert.NotContains(t, m, "power")
	faces := m["card_faces"].([]any)
	assert.Equal(t, "*", faces[0].(map[string]any)["power"])
}

func TestStat_RoundTrip(t *testing.T) {
	var s Stat
	require.NoError(t, json.Unmarshal([]byte(`0`), &s))
	assert.Equal(t, Stat(""), s)
	require.NoError(t, json.Unmarshal([]byte(`"1+*"`), &s))
	assert.Equal(t, Stat("1+*"), s)
}
