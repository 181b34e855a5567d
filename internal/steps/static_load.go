package steps

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// staticLoad collects static files into the output-path mapping. Theme static
// files load first so the site's own files win on collision.
type staticLoad struct{ base }

// NewStaticLoad constructs the static collection step.
func NewStaticLoad(b *builder.Builder) builder.Step { return &staticLoad{base{b: b}} }

func (s *staticLoad) Name() string { return NameStaticLoad }

func (s *staticLoad) Process() error {
	cfg := s.b.Config()
	static := make(map[string]site.File)

	roots := []string{}
	if theme := cfg.ThemePath(); theme != "" {
		roots = append(roots, filepath.Join(theme, "static"))
	}
	roots = append(roots, cfg.StaticPath())

	for _, root := range roots {
		if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
			continue
		}
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			out := filepath.ToSlash(rel)
			static[out] = site.File{
				Path:    p,
				Rel:     out,
				Ext:     filepath.Ext(p),
				ModTime: info.ModTime(),
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("walk static %s: %w", root, err)
		}
	}

	s.b.SetStatic(static)
	s.b.Logger().Debug("Static files collected", logfields.Count(len(static)))
	return nil
}
