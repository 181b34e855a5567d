package steps

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// pageExtensions are the source formats the page steps understand.
var pageExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".html":     true,
}

// contentLoad discovers source files under the content directory. The file
// set is replaced wholesale on every build; this step owns that reset.
type contentLoad struct{ base }

// NewContentLoad constructs the content discovery step.
func NewContentLoad(b *builder.Builder) builder.Step { return &contentLoad{base{b: b}} }

func (s *contentLoad) Name() string { return NameContentLoad }

func (s *contentLoad) Process() error {
	root := s.b.Config().ContentPath()
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return fmt.Errorf("content directory %s not found", root)
	}

	var files []site.File
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if !pageExtensions[ext] {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, site.File{
			Path:    p,
			Rel:     filepath.ToSlash(rel),
			Ext:     ext,
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk content: %w", err)
	}

	s.b.SetSourceFiles(files)
	s.b.Logger().Debug("Content files discovered", logfields.Count(len(files)))
	return nil
}
