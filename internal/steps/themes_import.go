package steps

import (
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
)

// themesImport makes the configured theme available under the themes
// directory, cloning it from its git repository on first use.
type themesImport struct{ base }

// NewThemesImport constructs the theme import step.
func NewThemesImport(b *builder.Builder) builder.Step { return &themesImport{base{b: b}} }

func (s *themesImport) Name() string { return NameThemesImport }

func (s *themesImport) CanProcess() bool { return s.b.Config().Theme.Name != "" }

func (s *themesImport) Process() error {
	cfg := s.b.Config()
	themeDir := cfg.ThemePath()

	if fi, err := os.Stat(themeDir); err == nil && fi.IsDir() {
		s.b.Logger().Debug("Theme already present", logfields.Path(themeDir))
		return nil
	}
	if cfg.Theme.Repo == "" {
		return fmt.Errorf("theme %q not found at %s and no repo configured", cfg.Theme.Name, themeDir)
	}

	s.b.Logger().Info("Fetching theme", "theme", cfg.Theme.Name, "repo", cfg.Theme.Repo)
	if err := os.MkdirAll(cfg.ThemesPath(), 0o750); err != nil {
		return fmt.Errorf("create themes directory: %w", err)
	}
	if _, err := git.PlainClone(themeDir, false, &git.CloneOptions{URL: cfg.Theme.Repo, Depth: 1}); err != nil {
		// A partial clone leaves a broken theme dir; remove it so the next
		// build retries from scratch.
		_ = os.RemoveAll(themeDir)
		return fmt.Errorf("clone theme %s: %w", cfg.Theme.Repo, err)
	}
	return nil
}
