package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/ttsforge/internal/card"
	"github.com/arcanaland/ttsforge/internal/tts"
)

const testCatalog = `[
	{"name": "Llanowar Elves", "set": "dom", "collector_number": "168", "rarity": "common", "layout": "normal",
	 "oracle_id": "o-elf", "mana_cost": "{G}", "type_line": "Creature — Elf Druid", "cmc": 1,
	 "oracle_text": "{T}: Add {G}.", "power": "1", "toughness": "1",
	 "image_uris": {"normal": "n.jpg", "small": "s.jpg", "png": "p.png"}},
	{"name": "Soldier", "set": "tdom", "collector_number": "1", "rarity": "common", "layout": "token"}
]`

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("NO_COLOR", "1")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.json"), []byte(testCatalog), 0644))
	return dir
}

func TestExportCommand_Map(t *testing.T) {
	dir := setup(t)
	wantedPath := filepath.Join(dir, "deck.txt")
	require.NoError(t, os.WriteFile(wantedPath, []byte("# deck\nDOM 168\ntdom 1\n"), 0644))
	outPath := filepath.Join(dir, "out.json")

	RootCmd.SetArgs([]string{
		"export",
		"--log-level", "error",
		"--catalog", filepath.Join(dir, "catalog.json"),
		"--wanted", wantedPath,
		"--map",
		"--out", outPath,
	})
	require.NoError(t, RootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var got map[string]tts.Record
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	rec := got["168dom"]
	assert.Equal(t, "Llanowar Elves", rec.Name)
	require.NotNil(t, rec.Details)
	assert.Equal(t, "n.jpg", rec.ImageURIs.Normal)
}

func TestFindCard(t *testing.T) {
	dir := setup(t)
	path := filepath.Join(dir, "catalog.json")

	c, err := findCard(path, card.Key{CollectorNumber: "168", Set: "dom"})
	require.NoError(t, err)
	assert.Equal(t, "Llanowar Elves", c.Common().Name)

	_, err = findCard(path, card.Key{CollectorNumber: "999", Set: "dom"})
	assert.ErrorContains(t, err, "card not found")
}

func TestCheckCatalog(t *testing.T) {
	dir := setup(t)
	assert.NoError(t, checkCatalog(filepath.Join(dir, "catalog.json")))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"object": "list"}`), 0644))
	assert.Error(t, checkCatalog(bad))
}
