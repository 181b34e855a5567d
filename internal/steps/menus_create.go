package steps

import (
	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// menusCreate rebuilds the per-language menu trees from configuration entries
// plus pages declaring a menu in front matter (`menu: main`).
type menusCreate struct{ base }

// NewMenusCreate constructs the menu construction step.
func NewMenusCreate(b *builder.Builder) builder.Step { return &menusCreate{base{b: b}} }

func (s *menusCreate) Name() string { return NameMenusCreate }

func (s *menusCreate) Process() error {
	cfg := s.b.Config()
	menus := make(map[string]site.Menus)

	for lang, byName := range cfg.Menus {
		ms := site.Menus{}
		for menuName, entries := range byName {
			for _, e := range entries {
				ms.Add(menuName, e.Parent, &site.MenuEntry{
					Identifier: e.Identifier,
					Name:       e.Name,
					URL:        e.URL,
					Weight:     e.Weight,
				})
			}
		}
		menus[lang] = ms
	}

	for _, p := range s.b.Pages().Regular() {
		for _, menuName := range p.StringsParam("menu") {
			lang := p.Language
			ms, ok := menus[lang]
			if !ok {
				ms = site.Menus{}
				menus[lang] = ms
			}
			weight := 0
			if w, ok := p.Param("weight"); ok {
				if n, ok := w.(int); ok {
					weight = n
				}
			}
			ms.Add(menuName, "", &site.MenuEntry{
				Identifier: p.ID,
				Name:       p.Title,
				URL:        p.Permalink(),
				Weight:     weight,
				PageID:     p.ID,
			})
		}
	}

	for _, ms := range menus {
		for _, m := range ms {
			m.Sort()
		}
	}

	s.b.SetMenus(menus)
	return nil
}
