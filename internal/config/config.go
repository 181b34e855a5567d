// Package config loads and normalizes the site configuration (site.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default directory layout relative to the site root.
const (
	DefaultContentDir = "content"
	DefaultDataDir    = "data"
	DefaultStaticDir  = "static"
	DefaultLayoutsDir = "layouts"
	DefaultThemesDir  = "themes"
	DefaultOutputDir  = "public"
	DefaultLanguage   = "en"
)

// EnvDebug enables debug behavior regardless of the config file setting.
const EnvDebug = "SITEBUILDER_DEBUG"

// Config is the root site configuration.
type Config struct {
	Title    string `yaml:"title"`
	BaseURL  string `yaml:"baseurl"`
	Language string `yaml:"language"`
	Theme    Theme  `yaml:"theme"`

	ContentDir string `yaml:"content_dir"`
	DataDir    string `yaml:"data_dir"`
	StaticDir  string `yaml:"static_dir"`
	LayoutsDir string `yaml:"layouts_dir"`
	ThemesDir  string `yaml:"themes_dir"`
	OutputDir  string `yaml:"output_dir"`

	// Menus maps language code -> menu name -> declared entries.
	Menus map[string]map[string][]MenuEntry `yaml:"menus"`
	// Taxonomies maps plural vocabulary name -> singular term name.
	Taxonomies map[string]string `yaml:"taxonomies"`

	Optimize Optimize `yaml:"optimize"`
	Debug    bool     `yaml:"debug"`

	// rootDir is the directory containing the config file; all relative
	// directories resolve against it.
	rootDir string
}

// Theme selects the active theme. Repo, when set, is a git URL the theme is
// fetched from on first build.
type Theme struct {
	Name string `yaml:"name"`
	Repo string `yaml:"repo"`
}

// MenuEntry is a single configured menu item. Parent nests the entry under
// another entry's identifier.
type MenuEntry struct {
	Identifier string `yaml:"identifier"`
	Name       string `yaml:"name"`
	URL        string `yaml:"url"`
	Weight     int    `yaml:"weight"`
	Parent     string `yaml:"parent"`
}

// Optimize controls the post-save HTML optimization pass.
type Optimize struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads, parses and normalizes a configuration file.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg.rootDir = filepath.Dir(abs)
	cfg.Normalize()
	return cfg, nil
}

// Normalize fills defaults for unset fields. Safe to call on a zero Config.
func (c *Config) Normalize() {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.StaticDir == "" {
		c.StaticDir = DefaultStaticDir
	}
	if c.LayoutsDir == "" {
		c.LayoutsDir = DefaultLayoutsDir
	}
	if c.ThemesDir == "" {
		c.ThemesDir = DefaultThemesDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Taxonomies == nil {
		c.Taxonomies = map[string]string{"tags": "tag", "categories": "category"}
	}
	if c.rootDir == "" {
		c.rootDir = "."
	}
	if v := os.Getenv("SITEBUILDER_BASEURL"); v != "" {
		c.BaseURL = v
	}
}

// SetRootDir overrides the site root (used when no config file exists).
func (c *Config) SetRootDir(dir string) { c.rootDir = dir }

// RootDir returns the site root directory.
func (c *Config) RootDir() string { return c.rootDir }

func (c *Config) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.rootDir, dir)
}

// ContentPath returns the absolute content directory.
func (c *Config) ContentPath() string { return c.resolve(c.ContentDir) }

// DataPath returns the absolute data directory.
func (c *Config) DataPath() string { return c.resolve(c.DataDir) }

// StaticPath returns the absolute static directory.
func (c *Config) StaticPath() string { return c.resolve(c.StaticDir) }

// LayoutsPath returns the absolute layouts directory.
func (c *Config) LayoutsPath() string { return c.resolve(c.LayoutsDir) }

// ThemesPath returns the absolute themes directory.
func (c *Config) ThemesPath() string { return c.resolve(c.ThemesDir) }

// OutputPath returns the absolute output directory.
func (c *Config) OutputPath() string { return c.resolve(c.OutputDir) }

// ThemePath returns the active theme's directory, empty when no theme is set.
func (c *Config) ThemePath() string {
	if c.Theme.Name == "" {
		return ""
	}
	return filepath.Join(c.ThemesPath(), c.Theme.Name)
}

// DebugEnabled reports whether debug behavior is on, honoring the
// SITEBUILDER_DEBUG environment override. Callers resolve this once.
func (c *Config) DebugEnabled() bool {
	if v := os.Getenv(EnvDebug); v != "" && v != "0" && v != "false" {
		return true
	}
	return c.Debug
}
