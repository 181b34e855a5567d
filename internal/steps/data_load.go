package steps

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
)

// dataLoad reads structured data files (YAML/JSON) into the named dataset
// mapping, keyed by slash path relative to the data dir without extension.
type dataLoad struct{ base }

// NewDataLoad constructs the data loading step.
func NewDataLoad(b *builder.Builder) builder.Step { return &dataLoad{base{b: b}} }

func (s *dataLoad) Name() string { return NameDataLoad }

func (s *dataLoad) CanProcess() bool {
	fi, err := os.Stat(s.b.Config().DataPath())
	return err == nil && fi.IsDir()
}

func (s *dataLoad) Process() error {
	root := s.b.Config().DataPath()
	data := make(map[string]any)

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			return nil
		}
		raw, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		var parsed any
		switch ext {
		case ".json":
			err = json.Unmarshal(raw, &parsed)
		default:
			err = yaml.Unmarshal(raw, &parsed)
		}
		if err != nil {
			return fmt.Errorf("parse data file %s: %w", p, err)
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		key := strings.TrimSuffix(filepath.ToSlash(rel), ext)
		data[key] = parsed
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk data: %w", err)
	}

	s.b.SetData(data)
	s.b.Logger().Debug("Datasets loaded", logfields.Count(len(data)))
	return nil
}
