package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
)

// pagesSave writes rendered pages into the output directory. The whole step
// is skipped on dry-run builds so nothing is persisted.
type pagesSave struct{ base }

// NewPagesSave constructs the page persistence step.
func NewPagesSave(b *builder.Builder) builder.Step { return &pagesSave{base{b: b}} }

func (s *pagesSave) Name() string { return NamePagesSave }

func (s *pagesSave) CanProcess() bool { return !s.opts.DryRun() }

func (s *pagesSave) Process() error {
	outRoot := s.b.Config().OutputPath()
	if err := os.MkdirAll(outRoot, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	saved := 0
	for _, p := range s.b.Pages().All() {
		if p.Rendered == nil {
			continue
		}
		dest := filepath.Join(outRoot, filepath.FromSlash(p.OutputPath()))
		if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
			return fmt.Errorf("create directory for %s: %w", p.ID, err)
		}
		if err := os.WriteFile(dest, p.Rendered, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", p.ID, err)
		}
		saved++
	}

	s.b.Logger().Info("Pages saved", logfields.Count(saved), logfields.Output(outRoot))
	return nil
}
