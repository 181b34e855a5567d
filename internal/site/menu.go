package site

import "sort"

// MenuEntry is one node of a menu tree.
type MenuEntry struct {
	Identifier string
	Name       string
	URL        string
	Weight     int
	PageID     string // set when the entry was declared by a page's front matter
	Children   []*MenuEntry
}

// Menu is a single named menu: an ordered tree of entries.
type Menu struct {
	Name    string
	Entries []*MenuEntry
}

// Sort orders entries (and children, recursively) by weight, then name for a
// deterministic tie-break.
func (m *Menu) Sort() {
	sortEntries(m.Entries)
}

func sortEntries(entries []*MenuEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Weight != entries[j].Weight {
			return entries[i].Weight < entries[j].Weight
		}
		return entries[i].Name < entries[j].Name
	})
	for _, e := range entries {
		sortEntries(e.Children)
	}
}

// Menus maps menu name to its tree for one language.
type Menus map[string]*Menu

// Add places an entry in the named menu, nesting under parent when the parent
// identifier is known. Unknown parents fall back to top level.
func (ms Menus) Add(menuName, parent string, entry *MenuEntry) {
	m, ok := ms[menuName]
	if !ok {
		m = &Menu{Name: menuName}
		ms[menuName] = m
	}
	if parent != "" {
		if p := m.find(parent); p != nil {
			p.Children = append(p.Children, entry)
			return
		}
	}
	m.Entries = append(m.Entries, entry)
}

func (m *Menu) find(identifier string) *MenuEntry {
	var walk func(entries []*MenuEntry) *MenuEntry
	walk = func(entries []*MenuEntry) *MenuEntry {
		for _, e := range entries {
			if e.Identifier == identifier {
				return e
			}
			if found := walk(e.Children); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(m.Entries)
}
