// Package render wraps the template engine. A set of embedded fallback
// layouts always parses first; theme and site layout directories overlay
// them, later directories winning on name collisions.
//
// HTML layouts go through html/template for contextual escaping; XML layouts
// (sitemap) go through text/template since HTML escaping rules would mangle
// the XML declaration.
package render

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

//go:embed layouts/*.html layouts/*.xml
var fallbackLayouts embed.FS

// SiteData is the site-wide view passed to every layout.
type SiteData struct {
	Title      string
	BaseURL    string
	Menus      site.Menus
	Data       map[string]any
	Taxonomies *site.Taxonomies
}

// PageData is the per-page view a layout renders with.
type PageData struct {
	Site  SiteData
	Page  *site.Page
	Pages []*site.Page // term pages, sitemap entries; nil otherwise
}

// Engine holds the parsed template sets.
type Engine struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func funcs() map[string]any {
	return map[string]any{
		"absURL": absURL,
	}
}

// NewEngine parses the embedded fallback layouts and overlays templates from
// each given directory in order. Missing directories are skipped.
func NewEngine(layoutDirs ...string) (*Engine, error) {
	e := &Engine{
		html: htmltemplate.New("").Funcs(funcs()),
		text: texttemplate.New("").Funcs(funcs()),
	}

	if err := e.parseFS(fallbackLayouts, "layouts"); err != nil {
		return nil, fmt.Errorf("parse embedded layouts: %w", err)
	}
	for _, dir := range layoutDirs {
		if dir == "" {
			continue
		}
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}
		if err := e.parseFS(os.DirFS(dir), "."); err != nil {
			return nil, fmt.Errorf("parse layouts %s: %w", dir, err)
		}
	}
	return e, nil
}

// parseFS walks fsys under dir, defining each layout as a template named by
// its base name. Redefining an existing name replaces it.
func (e *Engine) parseFS(fsys fs.FS, dir string) error {
	return fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		raw, readErr := fs.ReadFile(fsys, p)
		if readErr != nil {
			return readErr
		}
		name := filepath.Base(p)
		switch strings.ToLower(filepath.Ext(p)) {
		case ".html":
			_, err = e.html.New(name).Parse(string(raw))
		case ".xml":
			_, err = e.text.New(name).Parse(string(raw))
		default:
			return nil
		}
		return err
	})
}

// Layouts reports the defined template names (diagnostics).
func (e *Engine) Layouts() []string {
	var names []string
	for _, t := range e.html.Templates() {
		if t.Name() != "" {
			names = append(names, t.Name())
		}
	}
	for _, t := range e.text.Templates() {
		if t.Name() != "" {
			names = append(names, t.Name())
		}
	}
	return names
}

// Render executes the named layout.
func (e *Engine) Render(layout string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if strings.HasSuffix(layout, ".xml") {
		t := e.text.Lookup(layout)
		if t == nil {
			return nil, fmt.Errorf("layout %q not found", layout)
		}
		if err := t.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("render %s: %w", layout, err)
		}
		return buf.Bytes(), nil
	}
	t := e.html.Lookup(layout)
	if t == nil {
		return nil, fmt.Errorf("layout %q not found", layout)
	}
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", layout, err)
	}
	return buf.Bytes(), nil
}

// absURL joins a base URL and an absolute path without doubling slashes.
func absURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
