package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()

	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, DefaultContentDir, cfg.ContentDir)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, "tag", cfg.Taxonomies["tags"])
}

func TestLoadResolvesPathsAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("title: Test Site\nbaseurl: https://example.com/\n"), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "Test Site", cfg.Title)
	assert.Equal(t, filepath.Join(dir, "content"), cfg.ContentPath())
	assert.Equal(t, filepath.Join(dir, "public"), cfg.OutputPath())
}

func TestLoadParsesMenusAndTheme(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "site.yaml")
	raw := `title: Docs
theme:
  name: plain
menus:
  en:
    main:
      - name: Home
        url: /
        weight: 1
      - name: About
        url: /about/
        weight: 2
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(raw), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Len(t, cfg.Menus["en"]["main"], 2)
	assert.Equal(t, "Home", cfg.Menus["en"]["main"][0].Name)
	assert.Equal(t, filepath.Join(dir, "themes", "plain"), cfg.ThemePath())
}

func TestDebugEnabledEnvOverride(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()
	assert.False(t, cfg.DebugEnabled())

	t.Setenv(EnvDebug, "1")
	assert.True(t, cfg.DebugEnabled())

	t.Setenv(EnvDebug, "0")
	assert.False(t, cfg.DebugEnabled())
}
