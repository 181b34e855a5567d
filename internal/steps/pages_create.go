package steps

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/frontmatter"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// pagesCreate parses discovered source files into the page collection. It
// resets the collection in place at the start of each run, honors the drafts
// option and applies the single-page filter.
type pagesCreate struct{ base }

// NewPagesCreate constructs the page creation step.
func NewPagesCreate(b *builder.Builder) builder.Step { return &pagesCreate{base{b: b}} }

func (s *pagesCreate) Name() string { return NamePagesCreate }

func (s *pagesCreate) Process() error {
	cfg := s.b.Config()
	pages := s.b.Pages()
	pages.Reset()

	filter := s.opts.Page()
	skippedDrafts := 0

	for _, f := range s.b.SourceFiles() {
		raw, err := os.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("read page %s: %w", f.Path, err)
		}
		meta, body, had, err := frontmatter.Split(raw)
		if err != nil {
			return fmt.Errorf("page %s: %w", f.Rel, err)
		}
		var fm map[string]any
		if had {
			if fm, err = frontmatter.Parse(meta); err != nil {
				return fmt.Errorf("page %s: %w", f.Rel, err)
			}
		}

		p := buildPage(f, fm, body, cfg.Language)
		if p.Draft && !s.opts.Drafts() {
			skippedDrafts++
			continue
		}
		if filter != "" && p.ID != filter && p.Slug != filter {
			continue
		}
		pages.Add(p)
	}

	s.b.Logger().Debug("Pages created",
		logfields.Count(pages.Len()),
		"skipped_drafts", skippedDrafts)
	return nil
}

func buildPage(f site.File, fm map[string]any, body []byte, defaultLang string) *site.Page {
	id := strings.TrimSuffix(f.Rel, f.Ext)
	p := &site.Page{
		ID:          id,
		Kind:        site.KindPage,
		Section:     sectionOf(id),
		Language:    defaultLang,
		Date:        f.ModTime,
		FrontMatter: fm,
		Body:        body,
		Markdown:    f.Ext == ".md" || f.Ext == ".markdown",
	}

	p.Title = fmString(fm, "title")
	if p.Title == "" {
		p.Title = site.TitleizeTerm(strings.ReplaceAll(path.Base(id), "-", " "), p.Language)
	}
	p.Slug = fmString(fm, "slug")
	if p.Slug == "" {
		p.Slug = site.Slugify(path.Base(id))
	}
	if lang := fmString(fm, "language"); lang != "" {
		p.Language = lang
	}
	if d, ok := fm["draft"].(bool); ok {
		p.Draft = d
	}
	if date, ok := fmDate(fm); ok {
		p.Date = date
	}
	return p
}

func sectionOf(id string) string {
	if i := strings.IndexByte(id, '/'); i > 0 {
		return id[:i]
	}
	return ""
}

func fmString(fm map[string]any, key string) string {
	s, _ := fm[key].(string)
	return strings.TrimSpace(s)
}

// fmDate accepts both yaml-native timestamps and plain date strings.
func fmDate(fm map[string]any) (time.Time, bool) {
	switch v := fm["date"].(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
