package steps

import (
	"fmt"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
)

// pagesGenerate consults the generator registry and adds the virtual pages
// each generator produces (redirects, sitemap, ...).
type pagesGenerate struct{ base }

// NewPagesGenerate constructs the virtual page generation step.
func NewPagesGenerate(b *builder.Builder) builder.Step { return &pagesGenerate{base{b: b}} }

func (s *pagesGenerate) Name() string { return NamePagesGenerate }

func (s *pagesGenerate) CanProcess() bool { return len(s.b.Generators()) > 0 }

func (s *pagesGenerate) Process() error {
	pages := s.b.Pages()
	added := 0
	for _, gen := range s.b.Generators() {
		generated, err := gen.Generate(s.b)
		if err != nil {
			return fmt.Errorf("generator %s: %w", gen.Name(), err)
		}
		for _, p := range generated {
			p.Virtual = true
			pages.Add(p)
			added++
		}
	}
	s.b.Logger().Debug("Virtual pages generated", logfields.Count(added))
	return nil
}
