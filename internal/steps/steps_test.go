package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/config"
)

// newFixtureSite lays out a small site in a temp dir and returns its config.
func newFixtureSite(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "content/index.md", `---
title: Home
menu: main
weight: 1
---
# Welcome

This is the *home* page.
`)
	writeFile(t, dir, "content/about.md", `---
title: About
aliases:
  - /old-about/
---
About us.
`)
	writeFile(t, dir, "content/posts/hello.md", `---
title: Hello World
tags:
  - go
  - web
date: 2024-03-01
---
First post.
`)
	writeFile(t, dir, "content/posts/secret.md", `---
title: Secret
draft: true
---
Not yet.
`)
	writeFile(t, dir, "data/authors.yaml", "- name: Ada\n- name: Linus\n")
	writeFile(t, dir, "static/css/site.css", "body { margin: 0 }\n")

	cfg := &config.Config{Title: "Fixture", BaseURL: "https://example.com/"}
	cfg.Normalize()
	cfg.SetRootDir(dir)
	return cfg
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func newFixtureBuilder(cfg *config.Config) *builder.Builder {
	b := builder.New(cfg, DefaultCatalogue())
	b.RegisterGenerator(DefaultGenerators()...)
	return b
}

func readOutput(t *testing.T, cfg *config.Config, rel string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(cfg.OutputPath(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(raw)
}

func TestFullBuildProducesSite(t *testing.T) {
	cfg := newFixtureSite(t)
	b := newFixtureBuilder(cfg)
	require.NoError(t, b.Build(nil))

	home := readOutput(t, cfg, "index.html")
	assert.Contains(t, home, "<h1>Home</h1>")
	assert.Contains(t, home, "<em>home</em>")

	post := readOutput(t, cfg, "posts/hello/index.html")
	assert.Contains(t, post, "Hello World")

	// Draft excluded by default.
	_, err := os.Stat(filepath.Join(cfg.OutputPath(), "posts", "secret"))
	assert.True(t, os.IsNotExist(err))

	// Taxonomy term pages list tagged pages.
	tagPage := readOutput(t, cfg, "tags/go/index.html")
	assert.Contains(t, tagPage, "Hello World")
	assert.Contains(t, tagPage, "/posts/hello/")

	// Redirect page for the alias.
	redirect := readOutput(t, cfg, "old-about/index.html")
	assert.Contains(t, redirect, `url=/about/`)

	// Sitemap with absolute URLs.
	sitemap := readOutput(t, cfg, "sitemap.xml")
	assert.Contains(t, sitemap, "<loc>https://example.com/posts/hello/</loc>")
	assert.NotContains(t, sitemap, "old-about")

	// Static files copied.
	css := readOutput(t, cfg, "css/site.css")
	assert.Contains(t, css, "margin")

	// Data loaded and menus built.
	assert.Contains(t, b.Data(), "authors")
	require.Contains(t, b.Menus(), "en")
	main := b.Menus()["en"]["main"]
	require.NotNil(t, main)
	assert.Equal(t, "Home", main.Entries[0].Name)
}

func TestDryRunPersistsNothing(t *testing.T) {
	cfg := newFixtureSite(t)
	b := newFixtureBuilder(cfg)
	require.NoError(t, b.Build(map[string]any{builder.OptionDryRun: true}))

	_, err := os.Stat(cfg.OutputPath())
	assert.True(t, os.IsNotExist(err))

	// Pipeline still ran: pages exist in memory with rendered output.
	assert.Greater(t, b.Pages().Len(), 0)
	p, ok := b.Pages().Get("index")
	require.True(t, ok)
	assert.NotEmpty(t, p.Rendered)
}

func TestDraftsOptionIncludesDrafts(t *testing.T) {
	cfg := newFixtureSite(t)
	b := newFixtureBuilder(cfg)
	require.NoError(t, b.Build(map[string]any{builder.OptionDrafts: true}))

	secret := readOutput(t, cfg, "posts/secret/index.html")
	assert.Contains(t, secret, "Secret")
}

func TestPageFilterRestrictsToOnePage(t *testing.T) {
	cfg := newFixtureSite(t)
	b := newFixtureBuilder(cfg)
	require.NoError(t, b.Build(map[string]any{builder.OptionPage: "about"}))

	assert.FileExists(t, filepath.Join(cfg.OutputPath(), "about", "index.html"))
	_, err := os.Stat(filepath.Join(cfg.OutputPath(), "posts", "hello"))
	assert.True(t, os.IsNotExist(err))
}

func TestMissingContentDirFailsNamingStep(t *testing.T) {
	cfg := &config.Config{Title: "Empty", BaseURL: "https://example.com/"}
	cfg.Normalize()
	cfg.SetRootDir(t.TempDir())

	b := newFixtureBuilder(cfg)
	err := b.Build(nil)

	var se *builder.StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, NameContentLoad, se.Step)
}

func TestRebuildPicksUpChanges(t *testing.T) {
	cfg := newFixtureSite(t)
	b := newFixtureBuilder(cfg)
	require.NoError(t, b.Build(nil))

	pagesBefore := b.Pages()
	writeFile(t, cfg.RootDir(), "content/extra.md", "---\ntitle: Extra\n---\nMore.\n")
	require.NoError(t, b.Build(nil))

	// Same collection instance, refreshed contents.
	assert.Same(t, pagesBefore, b.Pages())
	_, ok := b.Pages().Get("extra")
	assert.True(t, ok)
	assert.FileExists(t, filepath.Join(cfg.OutputPath(), "extra", "index.html"))
}

func TestRemovedTagLeavesNoDanglingTermReferences(t *testing.T) {
	cfg := newFixtureSite(t)
	b := newFixtureBuilder(cfg)
	require.NoError(t, b.Build(nil))

	// Retag the post; the taxonomy rebuild must drop the old term entirely.
	writeFile(t, cfg.RootDir(), "content/posts/hello.md", `---
title: Hello World
tags:
  - rust
---
First post.
`)
	require.NoError(t, b.Build(nil))

	tags, ok := b.Taxonomies().Get("tags")
	require.True(t, ok)
	_, hadGo := tags.TermBySlug("go")
	assert.False(t, hadGo)
	_, hasRust := tags.TermBySlug("rust")
	assert.True(t, hasRust)
}

func TestOptimizeStripsComments(t *testing.T) {
	cfg := newFixtureSite(t)
	cfg.Optimize.Enabled = true
	writeFile(t, cfg.RootDir(), "content/noisy.md", "---\ntitle: Noisy\n---\nText <!-- secret note --> more.\n")

	b := newFixtureBuilder(cfg)
	require.NoError(t, b.Build(nil))

	out := readOutput(t, cfg, "noisy/index.html")
	assert.NotContains(t, out, "secret note")
	assert.Contains(t, out, "Text")
}

func TestMinifyHTMLPreservesPre(t *testing.T) {
	in := []byte("<html><head></head><body><pre>  two  spaces\n</pre><!-- gone --><p>a   b</p></body></html>")
	out, err := minifyHTML(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "  two  spaces\n")
	assert.NotContains(t, string(out), "gone")
	assert.Contains(t, string(out), "a b")
}

func TestThemesImportRequiresRepoForMissingTheme(t *testing.T) {
	cfg := newFixtureSite(t)
	cfg.Theme.Name = "plain"

	b := newFixtureBuilder(cfg)
	err := b.Build(nil)

	var se *builder.StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, NameThemesImport, se.Step)
}

func TestThemeLayoutsOverrideDefaults(t *testing.T) {
	cfg := newFixtureSite(t)
	cfg.Theme.Name = "plain"
	writeFile(t, cfg.RootDir(), "themes/plain/layouts/page.html", "THEME:{{ .Page.Title }}")
	writeFile(t, cfg.RootDir(), "themes/plain/static/theme.txt", "from theme\n")

	b := newFixtureBuilder(cfg)
	require.NoError(t, b.Build(nil))

	assert.Equal(t, "THEME:Home", readOutput(t, cfg, "index.html"))
	assert.Equal(t, "from theme\n", readOutput(t, cfg, "theme.txt"))
}

func TestSiteStaticWinsOverTheme(t *testing.T) {
	cfg := newFixtureSite(t)
	cfg.Theme.Name = "plain"
	writeFile(t, cfg.RootDir(), "themes/plain/layouts/.keep", "")
	writeFile(t, cfg.RootDir(), "themes/plain/static/css/site.css", "theme css\n")

	b := newFixtureBuilder(cfg)
	require.NoError(t, b.Build(nil))

	assert.Contains(t, readOutput(t, cfg, "css/site.css"), "margin")
}
