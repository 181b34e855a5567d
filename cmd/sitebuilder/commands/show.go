package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitebuilder/internal/steps"
	"git.home.luguber.info/inful/sitebuilder/internal/version"
)

// ShowCmd prints the resolved configuration and the pipeline step catalogue.
type ShowCmd struct{}

func (s *ShowCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}

	fmt.Printf("sitebuilder %s\n\n", version.Resolve())
	fmt.Printf("title:    %s\n", cfg.Title)
	fmt.Printf("baseurl:  %s\n", cfg.BaseURL)
	fmt.Printf("language: %s\n", cfg.Language)
	fmt.Printf("theme:    %s\n", cfg.Theme.Name)
	fmt.Printf("content:  %s\n", cfg.ContentPath())
	fmt.Printf("output:   %s\n", cfg.OutputPath())

	fmt.Println("\npipeline:")
	b := newBuilder(cfg)
	for i, factory := range steps.DefaultCatalogue() {
		fmt.Printf("  %2d. %s\n", i+1, factory(b).Name())
	}
	return nil
}
