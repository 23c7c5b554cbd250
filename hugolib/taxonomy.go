package hugolib

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/locker"
	"github.com/sunwei/hugo-taxonomy/config"
	"github.com/sunwei/hugo-taxonomy/langs"
	"github.com/sunwei/hugo-taxonomy/resources/page"
)

// A Term is one value of a taxonomy, e.g. "go" in tags, and the pages
// tagged with it.
type Term struct {
	name  string
	pages page.OrderedPages
	ids   map[string]bool
}

func newTerm(name string) *Term {
	return &Term{name: name, ids: make(map[string]bool)}
}

// Name returns the normalized term name.
func (t *Term) Name() string {
	return t.name
}

// Count returns the number of pages tagged with t.
func (t *Term) Count() int {
	return len(t.pages)
}

// Pages returns the pages tagged with t in the order they were added.
func (t *Term) Pages() page.Pages {
	return t.pages.Pages()
}

// SortedPages returns the pages tagged with t ordered by cmp.
func (t *Term) SortedPages(cmp page.CompareFunc) page.Pages {
	pages := make(page.OrderedPages, len(t.pages))
	copy(pages, t.pages)
	pages.Sort(cmp)
	return pages.Pages()
}

func (t *Term) String() string {
	return fmt.Sprintf("Term(%s, %d pages)", t.name, len(t.pages))
}

// add adds p to t. It reports false if a page with the same ID was
// already added.
func (t *Term) add(p *page.Page, ordinal int) bool {
	if t.ids[p.ID()] {
		return false
	}
	t.ids[p.ID()] = true
	t.pages = append(t.pages, page.NewOrderedPage(p, ordinal))
	return true
}

// A Vocabulary is one taxonomy, e.g. tags, with its terms.
type Vocabulary struct {
	plural   string
	singular string
	terms    map[string]*Term

	collator *langs.Collator
}

func newVocabulary(plural, singular string, collator *langs.Collator) *Vocabulary {
	return &Vocabulary{
		plural:   plural,
		singular: singular,
		terms:    make(map[string]*Term),
		collator: collator,
	}
}

// Plural returns the taxonomy name, e.g. tags.
func (v *Vocabulary) Plural() string {
	return v.plural
}

// Singular returns the singular label, e.g. tag.
func (v *Vocabulary) Singular() string {
	return v.singular
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Get returns the term with the given name, nil if not found.
// The name is normalized before lookup.
func (v *Vocabulary) Get(name string) *Term {
	return v.terms[NormalizeTermName(name)]
}

// Terms returns all terms ordered by name.
func (v *Vocabulary) Terms() []*Term {
	terms := make([]*Term, 0, len(v.terms))
	for _, t := range v.terms {
		terms = append(terms, t)
	}

	if v.collator != nil {
		v.collator.Lock()
		defer v.collator.Unlock()
	}

	sort.SliceStable(terms, func(i, j int) bool {
		n1, n2 := terms[i].name, terms[j].name
		if v.collator != nil {
			if c := v.collator.CompareStrings(n1, n2); c != 0 {
				return c < 0
			}
		}
		return n1 < n2
	})

	return terms
}

func (v *Vocabulary) getOrCreate(name string) (*Term, bool) {
	if t, found := v.terms[name]; found {
		return t, false
	}
	t := newTerm(name)
	v.terms[name] = t
	return t, true
}

// NormalizeTermName returns the key used for a term, i.e. the term
// trimmed and lower cased.
func NormalizeTermName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TaxonomyIndex holds the vocabularies of all the configured taxonomies.
// Terms can be added from many goroutines; each vocabulary is guarded by
// its own lock.
type TaxonomyIndex struct {
	vocabularies map[string]*Vocabulary
	locks        *locker.Locker
}

// NewTaxonomyIndex creates an index with an empty Vocabulary for every
// axis in cfg. The collator, which may be nil, orders terms.
func NewTaxonomyIndex(cfg config.Taxonomies, collator *langs.Collator) *TaxonomyIndex {
	ti := &TaxonomyIndex{
		vocabularies: make(map[string]*Vocabulary),
		locks:        locker.NewLocker(),
	}
	for plural, singular := range cfg.Axes {
		ti.vocabularies[plural] = newVocabulary(plural, singular, collator)
	}
	return ti
}

// Get returns the Vocabulary for plural, nil if not configured.
func (ti *TaxonomyIndex) Get(plural string) *Vocabulary {
	return ti.vocabularies[plural]
}

// Plurals returns the configured taxonomy names, sorted.
func (ti *TaxonomyIndex) Plurals() []string {
	plurals := make([]string, 0, len(ti.vocabularies))
	for plural := range ti.vocabularies {
		plurals = append(plurals, plural)
	}
	sort.Strings(plurals)
	return plurals
}

// Add adds p to the term in the plural taxonomy. The term name is
// normalized first. It reports whether a new term was created.
//
// Adding to a taxonomy that is not configured or with an empty term name
// is an error.
func (ti *TaxonomyIndex) Add(plural, term string, p *page.Page, ordinal int) (created bool, err error) {
	v := ti.vocabularies[plural]
	if v == nil {
		return false, fmt.Errorf("taxonomy %q is not configured", plural)
	}

	name := NormalizeTermName(term)
	if name == "" {
		return false, fmt.Errorf("empty term in taxonomy %q", plural)
	}

	ti.locks.Lock(plural)
	defer ti.locks.Unlock(plural)

	t, created := v.getOrCreate(name)
	t.add(p, ordinal)

	return created, nil
}
