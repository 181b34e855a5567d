package commands

import (
	"fmt"
	"os"
	"path/filepath"
)

// InitCmd scaffolds a new site: configuration file, content and static trees.
type InitCmd struct {
	Dir   string `arg:"" optional:"" help:"Target directory" default:"."`
	Force bool   `help:"Overwrite an existing configuration file"`
}

const starterConfig = `title: My Site
baseurl: ""
language: en

taxonomies:
  tags: tag
  categories: category

menus:
  en:
    main:
      - name: Home
        url: /
        weight: 1

optimize:
  enabled: false
`

const starterPage = `---
title: Home
---
# Welcome

Your site is ready. Edit content/index.md to get started.
`

func (i *InitCmd) Run(_ *Global, _ *CLI) error {
	cfgPath := filepath.Join(i.Dir, "site.yaml")
	if _, err := os.Stat(cfgPath); err == nil && !i.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	for _, dir := range []string{"content", "data", "static", "layouts"} {
		if err := os.MkdirAll(filepath.Join(i.Dir, dir), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(cfgPath, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	indexPath := filepath.Join(i.Dir, "content", "index.md")
	if _, err := os.Stat(indexPath); os.IsNotExist(err) {
		if err := os.WriteFile(indexPath, []byte(starterPage), 0o644); err != nil {
			return fmt.Errorf("write starter page: %w", err)
		}
	}

	fmt.Printf("Initialized site in %s\n", i.Dir)
	return nil
}
