package steps

import (
	"fmt"
	"path"
	"path/filepath"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/render"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// pagesRender initializes the template engine (making it the Builder's active
// renderer) and renders every page into its final document.
type pagesRender struct{ base }

// NewPagesRender constructs the render step.
func NewPagesRender(b *builder.Builder) builder.Step { return &pagesRender{base{b: b}} }

func (s *pagesRender) Name() string { return NamePagesRender }

func (s *pagesRender) Process() error {
	cfg := s.b.Config()

	var layoutDirs []string
	if theme := cfg.ThemePath(); theme != "" {
		layoutDirs = append(layoutDirs, filepath.Join(theme, "layouts"))
	}
	layoutDirs = append(layoutDirs, cfg.LayoutsPath())

	engine, err := render.NewEngine(layoutDirs...)
	if err != nil {
		return err
	}
	s.b.SetRenderer(engine)

	siteData := render.SiteData{
		Title:      cfg.Title,
		BaseURL:    cfg.BaseURL,
		Data:       s.b.Data(),
		Taxonomies: s.b.Taxonomies(),
	}

	rendered := 0
	for _, p := range s.b.Pages().All() {
		data := render.PageData{Site: siteData, Page: p}
		if ms, ok := s.b.Menus()[p.Language]; ok {
			data.Site.Menus = ms
		} else if ms, ok := s.b.Menus()[cfg.Language]; ok {
			data.Site.Menus = ms
		}

		switch p.Kind {
		case site.KindTerm:
			data.Pages = s.termPages(p)
		case site.KindSitemap:
			data.Pages = s.sitemapPages()
		}

		out, err := engine.Render(s.layoutFor(p), data)
		if err != nil {
			return fmt.Errorf("page %s: %w", p.ID, err)
		}
		p.Rendered = out
		rendered++
	}

	s.b.Logger().Debug("Pages rendered", logfields.Count(rendered))
	return nil
}

// layoutFor picks the template: a front matter `layout` override wins, then a
// kind-specific default.
func (s *pagesRender) layoutFor(p *site.Page) string {
	if name, ok := p.Param("layout"); ok {
		if str, ok := name.(string); ok && str != "" {
			return str + ".html"
		}
	}
	switch p.Kind {
	case site.KindRedirect:
		return "redirect.html"
	case site.KindSitemap:
		return "sitemap.xml"
	case site.KindTerm:
		return "term.html"
	default:
		return "page.html"
	}
}

// termPages resolves a term list page's members through the taxonomy
// collection; IDs no longer present in the page collection are skipped.
func (s *pagesRender) termPages(p *site.Page) []*site.Page {
	voc, ok := s.b.Taxonomies().Get(p.Section)
	if !ok {
		return nil
	}
	term, ok := voc.TermBySlug(path.Base(p.ID))
	if !ok {
		return nil
	}
	out := make([]*site.Page, 0, len(term.PageIDs))
	for _, id := range term.PageIDs {
		if member, ok := s.b.Pages().Get(id); ok {
			out = append(out, member)
		}
	}
	return out
}

// sitemapPages returns every linkable page (everything except redirects and
// the sitemap itself).
func (s *pagesRender) sitemapPages() []*site.Page {
	var out []*site.Page
	for _, p := range s.b.Pages().All() {
		if p.Kind == site.KindRedirect || p.Kind == site.KindSitemap {
			continue
		}
		out = append(out, p)
	}
	return out
}
