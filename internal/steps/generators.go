package steps

import (
	"strings"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// DefaultGenerators returns the stock virtual-content generators.
func DefaultGenerators() []builder.Generator {
	return []builder.Generator{RedirectsGenerator{}, SitemapGenerator{}}
}

// RedirectsGenerator emits a redirect page for every alias a page declares in
// its front matter (`aliases: [/old-url/]`).
type RedirectsGenerator struct{}

func (RedirectsGenerator) Name() string { return "redirects" }

func (RedirectsGenerator) Generate(b *builder.Builder) ([]*site.Page, error) {
	var out []*site.Page
	for _, p := range b.Pages().Regular() {
		for _, alias := range p.StringsParam("aliases") {
			id := strings.Trim(alias, "/")
			if id == "" || id == strings.Trim(p.Permalink(), "/") {
				continue
			}
			out = append(out, &site.Page{
				ID:         id,
				Kind:       site.KindRedirect,
				Title:      p.Title,
				Language:   p.Language,
				RedirectTo: p.Permalink(),
			})
		}
	}
	return out, nil
}

// SitemapGenerator emits a single sitemap.xml page covering every linkable
// page in the collection.
type SitemapGenerator struct{}

func (SitemapGenerator) Name() string { return "sitemap" }

func (SitemapGenerator) Generate(b *builder.Builder) ([]*site.Page, error) {
	return []*site.Page{{
		ID:   "sitemap.xml",
		Kind: site.KindSitemap,
	}}, nil
}
