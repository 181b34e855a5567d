// Package commands implements the sitebuilder CLI subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/metrics"
	"git.home.luguber.info/inful/sitebuilder/internal/steps"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Site configuration file path" default:"site.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Build the site into the output directory"`
	Serve ServeCmd `cmd:"" help:"Build, serve locally and rebuild on changes"`
	Init  InitCmd  `cmd:"" help:"Initialize a new site skeleton"`
	Show  ShowCmd  `cmd:"" help:"Show resolved configuration and pipeline"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the site config; when the file is missing a default
// configuration rooted in the working directory is used so `sitebuilder build`
// works in a bare content tree.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("No configuration file found, using defaults", "path", path)
		cfg := &config.Config{}
		cfg.Normalize()
		return cfg, nil
	}
	return config.Load(path)
}

// newBuilder wires a Builder with the default pipeline, generators and
// Prometheus metrics.
func newBuilder(cfg *config.Config) *builder.Builder {
	recorder := metrics.NewPrometheusRecorder(prom.NewRegistry())
	b := builder.New(cfg, steps.DefaultCatalogue(), builder.WithRecorder(recorder))
	b.RegisterGenerator(steps.DefaultGenerators()...)
	return b
}
