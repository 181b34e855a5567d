package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/watcher"
)

// ServeCmd implements the 'serve' command: one initial build, a local file
// server over the output directory, and watch-driven rebuilds on the same
// long-lived Builder.
type ServeCmd struct {
	Addr   string `help:"Listen address" default:"127.0.0.1:1313"`
	Drafts bool   `short:"D" help:"Include draft pages"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}

	bld := newBuilder(cfg)
	overrides := map[string]any{}
	if s.Drafts {
		overrides[builder.OptionDrafts] = true
	}
	if err := bld.Build(overrides); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(watchRoots(cfg), func() {
		if err := bld.Build(overrides); err != nil {
			slog.Error("Rebuild failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	defer w.Stop()
	w.Start(ctx)

	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           http.FileServer(http.Dir(cfg.OutputPath())),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Serving site", "addr", fmt.Sprintf("http://%s/", s.Addr), "output", cfg.OutputPath())
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func watchRoots(cfg *config.Config) []string {
	roots := []string{cfg.ContentPath(), cfg.DataPath(), cfg.StaticPath(), cfg.LayoutsPath()}
	if theme := cfg.ThemePath(); theme != "" {
		roots = append(roots, theme)
	}
	return roots
}
