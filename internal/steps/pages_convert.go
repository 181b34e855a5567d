package steps

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
)

// pagesConvert turns Markdown page bodies into HTML. HTML-sourced pages pass
// through unchanged.
type pagesConvert struct {
	base
	md goldmark.Markdown
}

// NewPagesConvert constructs the Markdown conversion step.
func NewPagesConvert(b *builder.Builder) builder.Step {
	return &pagesConvert{
		base: base{b: b},
		// Raw HTML in page bodies is site-author content, so unsafe rendering
		// is the intended behavior here.
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(ghtml.WithUnsafe()),
		),
	}
}

func (s *pagesConvert) Name() string { return NamePagesConvert }

func (s *pagesConvert) Process() error {
	converted := 0
	for _, p := range s.b.Pages().All() {
		if p.Virtual {
			continue
		}
		if !p.Markdown {
			p.Content = p.Body
			continue
		}
		var buf bytes.Buffer
		if err := s.md.Convert(p.Body, &buf); err != nil {
			return fmt.Errorf("convert %s: %w", p.ID, err)
		}
		p.Content = buf.Bytes()
		converted++
	}
	s.b.Logger().Debug("Pages converted", logfields.Count(converted))
	return nil
}
