package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

func pageData(p *site.Page) PageData {
	return PageData{
		Site: SiteData{Title: "Test Site", BaseURL: "https://example.com/"},
		Page: p,
	}
}

func TestEngineRendersEmbeddedPageLayout(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	p := &site.Page{ID: "about", Kind: site.KindPage, Title: "About", Language: "en", Content: []byte("<p>hi</p>")}
	out, err := e.Render("page.html", pageData(p))
	require.NoError(t, err)

	assert.Contains(t, string(out), "<h1>About</h1>")
	assert.Contains(t, string(out), "<p>hi</p>")
	assert.Contains(t, string(out), "Test Site")
}

func TestEngineOverlayDirectoryWinsOverEmbedded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte("custom:{{ .Page.Title }}"), 0o644))

	e, err := NewEngine(dir)
	require.NoError(t, err)

	out, err := e.Render("page.html", pageData(&site.Page{Title: "X"}))
	require.NoError(t, err)
	assert.Equal(t, "custom:X", string(out))
}

func TestEngineMissingLayout(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)
	_, err = e.Render("nope.html", nil)
	assert.Error(t, err)
}

func TestEngineSkipsMissingLayoutDirs(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.NotEmpty(t, e.Layouts())
}

func TestSitemapLayoutJoinsURLs(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	p := &site.Page{ID: "about", Kind: site.KindPage}
	out, err := e.Render("sitemap.xml", PageData{
		Site:  SiteData{BaseURL: "https://example.com/"},
		Pages: []*site.Page{p},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<loc>https://example.com/about/</loc>")
}
