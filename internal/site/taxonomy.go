package site

import "sort"

// Term is one classification value inside a vocabulary. It references pages by
// ID only; the pages collection stays the single owner.
type Term struct {
	Name    string
	Slug    string
	PageIDs []string
}

// Vocabulary is a named taxonomy (e.g. "tags") holding its terms.
type Vocabulary struct {
	Name     string // plural form, e.g. "tags"
	Singular string // e.g. "tag"
	terms    map[string]*Term
}

// Term returns the term for name, creating it on first use.
func (v *Vocabulary) Term(name string) *Term {
	if v.terms == nil {
		v.terms = make(map[string]*Term)
	}
	slug := Slugify(name)
	t, ok := v.terms[slug]
	if !ok {
		t = &Term{Name: name, Slug: slug}
		v.terms[slug] = t
	}
	return t
}

// TermBySlug looks up an existing term without creating it.
func (v *Vocabulary) TermBySlug(slug string) (*Term, bool) {
	t, ok := v.terms[slug]
	return t, ok
}

// Terms returns the vocabulary's terms sorted by slug.
func (v *Vocabulary) Terms() []*Term {
	out := make([]*Term, 0, len(v.terms))
	for _, t := range v.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Taxonomies is the collection of vocabularies for one build. It is rebuilt
// from scratch by the taxonomy step on every invocation, which is what keeps
// term back references free of dangling page IDs.
type Taxonomies struct {
	ordered []*Vocabulary
	byName  map[string]*Vocabulary
}

// NewTaxonomies returns an empty collection.
func NewTaxonomies() *Taxonomies {
	return &Taxonomies{byName: make(map[string]*Vocabulary)}
}

// Reset clears the collection in place.
func (tx *Taxonomies) Reset() {
	tx.ordered = tx.ordered[:0]
	clear(tx.byName)
}

// Vocabulary returns the named vocabulary, creating it on first use.
func (tx *Taxonomies) Vocabulary(name, singular string) *Vocabulary {
	if v, ok := tx.byName[name]; ok {
		return v
	}
	v := &Vocabulary{Name: name, Singular: singular}
	tx.ordered = append(tx.ordered, v)
	tx.byName[name] = v
	return v
}

// Get looks a vocabulary up by plural name.
func (tx *Taxonomies) Get(name string) (*Vocabulary, bool) {
	v, ok := tx.byName[name]
	return v, ok
}

// All returns vocabularies in creation order.
func (tx *Taxonomies) All() []*Vocabulary { return tx.ordered }
