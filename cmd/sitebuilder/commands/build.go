package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory override"`
	Drafts bool   `short:"D" help:"Include draft pages"`
	DryRun bool   `name:"dry-run" help:"Run all steps without persisting output"`
	Page   string `short:"p" help:"Build a single page (by ID or slug)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.OutputDir = b.Output
	}

	bld := newBuilder(cfg)
	slog.Info("Starting site build", "output", cfg.OutputPath(), "version", bld.Version())

	overrides := map[string]any{}
	if b.Drafts {
		overrides[builder.OptionDrafts] = true
	}
	if b.DryRun {
		overrides[builder.OptionDryRun] = true
	}
	if b.Page != "" {
		overrides[builder.OptionPage] = b.Page
	}
	return bld.Build(overrides)
}
