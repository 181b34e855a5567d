// Package steps implements the concrete build pipeline stages. Each step
// satisfies the builder.Step contract; DefaultCatalogue fixes their order,
// which encodes the data dependencies between them (theme before content,
// content before generation, aggregation before render, render before save,
// save before optimization).
package steps

import (
	"git.home.luguber.info/inful/sitebuilder/internal/builder"
)

// Step names as reported in progress logs.
const (
	NameThemesImport     = "themes_import"
	NameContentLoad      = "content_load"
	NameDataLoad         = "data_load"
	NameStaticLoad       = "static_load"
	NamePagesCreate      = "pages_create"
	NamePagesGenerate    = "pages_generate"
	NamePagesConvert     = "pages_convert"
	NameTaxonomiesCreate = "taxonomies_create"
	NameMenusCreate      = "menus_create"
	NamePagesRender      = "pages_render"
	NamePagesSave        = "pages_save"
	NameStaticCopy       = "static_copy"
	NameOptimize         = "optimize"
)

// DefaultCatalogue returns the fixed pipeline. New stages are added by
// appending a factory here, never by runtime lookup.
func DefaultCatalogue() []builder.StepFactory {
	return []builder.StepFactory{
		NewThemesImport,
		NewContentLoad,
		NewDataLoad,
		NewStaticLoad,
		NewPagesCreate,
		NewPagesGenerate,
		NewPagesConvert,
		NewTaxonomiesCreate,
		NewMenusCreate,
		NewPagesRender,
		NewPagesSave,
		NewStaticCopy,
		NewOptimize,
	}
}

// base provides the common step plumbing: the bound Builder and the options
// recorded at init time.
type base struct {
	b    *builder.Builder
	opts builder.Options
}

func (s *base) Init(opts builder.Options) error {
	s.opts = opts
	return nil
}

func (s *base) CanProcess() bool { return true }
