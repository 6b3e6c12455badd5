package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return dir
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(GetConfigFilePath())
	assert.NoError(t, err, "config file should be written on first load")
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	isolate(t)

	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("output = \"map\"\non_error = \"skip\"\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, OutputMap, cfg.Output)
	assert.Equal(t, OnErrorSkip, cfg.OnError)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "default-cards.json", cfg.DefaultCatalog)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	isolate(t)

	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("on_error = \"retry\"\n"), 0644))

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "on_error")
}

func TestSetDefaultCatalog(t *testing.T) {
	isolate(t)

	require.NoError(t, SetDefaultCatalog("oracle-cards.json"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "oracle-cards.json", cfg.DefaultCatalog)
}

func TestGetCatalogPath(t *testing.T) {
	dir := isolate(t)

	library := GetCatalogLibraryPath()
	require.NoError(t, os.MkdirAll(library, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(library, "default-cards.json"), []byte("[]"), 0644))

	got, err := GetCatalogPath("default-cards.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(library, "default-cards.json"), got)

	local := filepath.Join(dir, "local.json")
	require.NoError(t, os.WriteFile(local, []byte("[]"), 0644))
	got, err = GetCatalogPath(local)
	require.NoError(t, err)
	assert.Equal(t, local, got)

	_, err = GetCatalogPath("missing.json")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Output = "csv"
	assert.Error(t, cfg.Validate())
}
