package site

import (
	"html/template"
	"sort"
	"strings"
	"time"
)

// PageKind distinguishes regular content pages from generated virtual pages.
type PageKind string

const (
	KindPage     PageKind = "page"
	KindRedirect PageKind = "redirect"
	KindSitemap  PageKind = "sitemap"
	KindTerm     PageKind = "term"
)

// Page is the central build entity. Pages are created by the load stage or by
// generators, enriched in place by later stages, and finalized by render/save.
type Page struct {
	// ID is the stable identity, derived from the source path relative to the
	// content root without extension (e.g. "posts/hello"). Virtual pages use a
	// generator-chosen synthetic ID.
	ID       string
	Kind     PageKind
	Title    string
	Slug     string
	Section  string
	Language string
	Date     time.Time
	Draft    bool
	Virtual  bool
	// Markdown marks pages whose Body still needs Markdown conversion.
	Markdown bool

	// FrontMatter holds the parsed metadata map; nil for virtual pages unless
	// the generator sets one.
	FrontMatter map[string]any

	// Body is the raw source body (Markdown for .md pages).
	Body []byte
	// Content is the converted HTML body.
	Content []byte
	// Rendered is the final templated document written by the save step.
	Rendered []byte

	// RedirectTo is the destination URL for redirect pages.
	RedirectTo string
}

// Permalink returns the output-relative URL path for the page ("/" terminated
// pretty URL, or the bare path for non-HTML kinds like the sitemap).
func (p *Page) Permalink() string {
	switch p.Kind {
	case KindSitemap:
		return "/" + p.ID
	default:
		if p.ID == "index" || p.ID == "_index" {
			return "/"
		}
		return "/" + strings.TrimSuffix(p.ID, "/_index") + "/"
	}
}

// OutputPath returns the slash-separated output file path for the page.
func (p *Page) OutputPath() string {
	if p.Kind == KindSitemap {
		return p.ID
	}
	link := strings.Trim(p.Permalink(), "/")
	if link == "" {
		return "index.html"
	}
	return link + "/index.html"
}

// HTML exposes the converted body to templates without escaping. The convert
// step is the trust boundary for page content.
func (p *Page) HTML() template.HTML { return template.HTML(p.Content) }

// Param looks up a front matter key, returning ok=false when absent.
func (p *Page) Param(key string) (any, bool) {
	if p.FrontMatter == nil {
		return nil, false
	}
	v, ok := p.FrontMatter[key]
	return v, ok
}

// StringsParam returns a front matter value as a string slice, accepting both
// a single string and a YAML sequence.
func (p *Page) StringsParam(key string) []string {
	v, ok := p.Param(key)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Pages is the ordered page collection. Exactly one instance exists per
// Builder; steps mutate it in place and never swap it for another instance.
type Pages struct {
	ordered []*Page
	byID    map[string]*Page
}

// NewPages returns an empty collection.
func NewPages() *Pages {
	return &Pages{byID: make(map[string]*Page)}
}

// Reset clears the collection in place, keeping the instance identity.
func (ps *Pages) Reset() {
	ps.ordered = ps.ordered[:0]
	clear(ps.byID)
}

// Add inserts or replaces a page by ID. Replacement keeps the original
// ordering position.
func (ps *Pages) Add(p *Page) {
	if existing, ok := ps.byID[p.ID]; ok {
		for i, e := range ps.ordered {
			if e == existing {
				ps.ordered[i] = p
				break
			}
		}
		ps.byID[p.ID] = p
		return
	}
	ps.ordered = append(ps.ordered, p)
	ps.byID[p.ID] = p
}

// Get looks a page up by ID.
func (ps *Pages) Get(id string) (*Page, bool) {
	p, ok := ps.byID[id]
	return p, ok
}

// Remove deletes a page by ID; unknown IDs are a no-op.
func (ps *Pages) Remove(id string) {
	p, ok := ps.byID[id]
	if !ok {
		return
	}
	delete(ps.byID, id)
	for i, e := range ps.ordered {
		if e == p {
			ps.ordered = append(ps.ordered[:i], ps.ordered[i+1:]...)
			break
		}
	}
}

// Len returns the number of pages.
func (ps *Pages) Len() int { return len(ps.ordered) }

// All returns the pages in insertion order. The returned slice is shared;
// callers must not reorder it.
func (ps *Pages) All() []*Page { return ps.ordered }

// Regular returns non-virtual content pages in insertion order.
func (ps *Pages) Regular() []*Page {
	out := make([]*Page, 0, len(ps.ordered))
	for _, p := range ps.ordered {
		if !p.Virtual {
			out = append(out, p)
		}
	}
	return out
}

// ByDate returns a date-descending copy of the collection.
func (ps *Pages) ByDate() []*Page {
	out := make([]*Page, len(ps.ordered))
	copy(out, ps.ordered)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
