package steps

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
)

// staticCopy copies the collected static files into the output tree. Skipped
// on dry-run builds.
type staticCopy struct{ base }

// NewStaticCopy constructs the static copy step.
func NewStaticCopy(b *builder.Builder) builder.Step { return &staticCopy{base{b: b}} }

func (s *staticCopy) Name() string { return NameStaticCopy }

func (s *staticCopy) CanProcess() bool { return !s.opts.DryRun() }

func (s *staticCopy) Process() error {
	outRoot := s.b.Config().OutputPath()
	copied := 0
	for rel, f := range s.b.Static() {
		dest := filepath.Join(outRoot, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
			return fmt.Errorf("create directory for %s: %w", rel, err)
		}
		if err := copyFile(f.Path, dest); err != nil {
			return fmt.Errorf("copy %s: %w", rel, err)
		}
		copied++
	}
	s.b.Logger().Debug("Static files copied", logfields.Count(copied))
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
