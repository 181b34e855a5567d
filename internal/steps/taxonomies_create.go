package steps

import (
	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// taxonomiesCreate rebuilds the taxonomy collection from page front matter
// and adds a virtual list page per term. Rebuilding from scratch on every run
// is what keeps term back references consistent with the page collection.
type taxonomiesCreate struct{ base }

// NewTaxonomiesCreate constructs the taxonomy aggregation step.
func NewTaxonomiesCreate(b *builder.Builder) builder.Step { return &taxonomiesCreate{base{b: b}} }

func (s *taxonomiesCreate) Name() string { return NameTaxonomiesCreate }

func (s *taxonomiesCreate) Process() error {
	cfg := s.b.Config()
	tx := s.b.Taxonomies()
	tx.Reset()
	pages := s.b.Pages()

	for plural, singular := range cfg.Taxonomies {
		voc := tx.Vocabulary(plural, singular)
		for _, p := range pages.Regular() {
			for _, value := range p.StringsParam(plural) {
				term := voc.Term(value)
				term.PageIDs = append(term.PageIDs, p.ID)
			}
		}
	}

	// One virtual list page per term; the render step resolves the member
	// pages through the vocabulary.
	termPages := 0
	for _, voc := range tx.All() {
		for _, term := range voc.Terms() {
			pages.Add(&site.Page{
				ID:       voc.Name + "/" + term.Slug,
				Kind:     site.KindTerm,
				Title:    site.TitleizeTerm(term.Name, cfg.Language),
				Section:  voc.Name,
				Language: cfg.Language,
				Virtual:  true,
			})
			termPages++
		}
	}

	s.b.Logger().Debug("Taxonomies created",
		"vocabularies", len(tx.All()),
		logfields.Count(termPages))
	return nil
}
