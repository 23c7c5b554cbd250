package hugolib

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"github.com/sunwei/hugo-taxonomy/config"
	"github.com/sunwei/hugo-taxonomy/deps"
	"github.com/sunwei/hugo-taxonomy/helpers"
	"github.com/sunwei/hugo-taxonomy/resources/page"
	"github.com/sunwei/hugo-taxonomy/resources/page/pagemeta"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// BuilderState is the phase of a TaxonomyBuilder run.
type BuilderState int

const (
	StateIdle BuilderState = iota
	StateAxesInitialized
	StateTermsCollected
	StatePagesSynthesized
	StateDone
)

func (s BuilderState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAxesInitialized:
		return "axes initialized"
	case StateTermsCollected:
		return "terms collected"
	case StatePagesSynthesized:
		return "pages synthesized"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("BuilderState(%d)", int(s))
}

// BuilderOptions overrides the defaults derived from the site config.
// Zero values mean "use the default".
type BuilderOptions struct {
	// URLize turns "{plural}/{term}" into a page ID and path.
	// Defaults to the PathSpec's URLize.
	URLize func(s string) string

	// Compare orders the pages of a term. Defaults to ByDateDesc or
	// ByDateAsc depending on the taxonomies.sortOrder setting.
	Compare page.CompareFunc

	// TitleFunc creates the title of a term page from the term name.
	// Defaults to the titleCaseStyle setting.
	TitleFunc func(s string) string
}

// BuildStats counts what happened during the last Build.
type BuildStats struct {
	PagesScanned   int
	PagesTagged    int
	TermsCreated   int
	ValuesRejected int
	PagesGenerated int
	PagesOmitted   int
}

type buildCounters struct {
	pagesScanned   atomic.Int64
	pagesTagged    atomic.Int64
	termsCreated   atomic.Int64
	valuesRejected atomic.Int64
	pagesGenerated atomic.Int64
	pagesOmitted   atomic.Int64
}

func (c *buildCounters) stats() BuildStats {
	return BuildStats{
		PagesScanned:   int(c.pagesScanned.Load()),
		PagesTagged:    int(c.pagesTagged.Load()),
		TermsCreated:   int(c.termsCreated.Load()),
		ValuesRejected: int(c.valuesRejected.Load()),
		PagesGenerated: int(c.pagesGenerated.Load()),
		PagesOmitted:   int(c.pagesOmitted.Load()),
	}
}

// TaxonomyBuilder creates the taxonomy list pages from a set of content
// pages: one page per term listing the pages tagged with it, e.g. /tags/go/,
// and one page per taxonomy listing its terms, e.g. /tags/.
type TaxonomyBuilder struct {
	d   *deps.Deps
	cfg config.Taxonomies

	urlize    func(s string) string
	compare   page.CompareFunc
	titleFunc func(s string) string
	ignore    []glob.Glob
	pagerSize int
	workers   int

	// Only one Build at a time. Index and Stats wait for a running Build.
	mu sync.Mutex

	state    atomic.Int32
	index    *TaxonomyIndex
	input    *PageCollection
	counters *buildCounters
}

// NewTaxonomyBuilder creates a TaxonomyBuilder for the taxonomies in cfg.
func NewTaxonomyBuilder(d *deps.Deps, cfg config.Taxonomies, opts BuilderOptions) (*TaxonomyBuilder, error) {
	b := &TaxonomyBuilder{
		d:         d,
		cfg:       cfg,
		urlize:    opts.URLize,
		compare:   opts.Compare,
		titleFunc: opts.TitleFunc,
		workers:   cfg.Workers,
		counters:  &buildCounters{},
	}

	if b.urlize == nil {
		b.urlize = d.URLize
	}

	if b.compare == nil {
		switch cfg.SortOrder {
		case config.SortOrderAsc:
			b.compare = page.ByDateAsc
		default:
			b.compare = page.ByDateDesc
		}
	}

	if b.titleFunc == nil {
		b.titleFunc = helpers.GetTitleFunc(d.Cfg.GetString("titleCaseStyle"))
	}

	for _, pattern := range cfg.Ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid %s.ignore pattern %q: %w", config.TaxonomiesKey, pattern, err)
		}
		b.ignore = append(b.ignore, g)
	}

	pagerSize, err := page.ResolvePagerSize(d.Cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.TaxonomiesKey, err)
	}
	b.pagerSize = pagerSize

	if b.workers <= 0 {
		b.workers = config.GetNumWorkerMultiplier()
	}

	return b, nil
}

// NewTaxonomyBuilderFromConfig decodes the taxonomies section of the
// config in d and creates a TaxonomyBuilder with default options.
func NewTaxonomyBuilderFromConfig(d *deps.Deps) (*TaxonomyBuilder, error) {
	cfg, err := config.DecodeTaxonomies(d.Cfg)
	if err != nil {
		return nil, err
	}
	return NewTaxonomyBuilder(d, cfg, BuilderOptions{})
}

// State returns the phase of the current or last run.
func (b *TaxonomyBuilder) State() BuilderState {
	return BuilderState(b.state.Load())
}

func (b *TaxonomyBuilder) setState(s BuilderState) {
	b.state.Store(int32(s))
}

// Index returns the taxonomy index built by the last run, nil if the
// feature is disabled or Build has not been called.
func (b *TaxonomyBuilder) Index() *TaxonomyIndex {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.index
}

// Stats returns the counters of the last run.
func (b *TaxonomyBuilder) Stats() BuildStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counters.stats()
}

// Build creates the taxonomy pages for pages and returns them in a new
// collection. Every run starts from scratch.
//
// The pages are read, except for scalar taxonomy values in their params
// which are rewritten as a one element slice. A page whose taxonomy value is
// neither a string nor a list of strings, or a generated page that cannot be
// added, is logged as a warning and skipped; the build goes on.
func (b *TaxonomyBuilder) Build(pages page.Pages) (*PageCollection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.setState(StateIdle)
	b.index = nil
	b.counters = &buildCounters{}

	out := NewPageCollection("taxonomies", b.d.Layouts)

	if !b.cfg.Enabled() {
		b.d.Log.Debugln("taxonomies disabled, nothing to build")
		b.setState(StateDone)
		return out, nil
	}

	b.initTaxonomies(pages)

	if err := b.collectTerms(); err != nil {
		return nil, err
	}
	b.setState(StateTermsCollected)

	b.createNodePages(out)
	b.setState(StatePagesSynthesized)

	b.d.Log.Infof("taxonomies: %d pages scanned, %d terms, %d pages generated, %d omitted",
		b.counters.pagesScanned.Load(), b.counters.termsCreated.Load(),
		b.counters.pagesGenerated.Load(), b.counters.pagesOmitted.Load())

	b.setState(StateDone)
	return out, nil
}

func (b *TaxonomyBuilder) initTaxonomies(pages page.Pages) {
	b.index = NewTaxonomyIndex(b.cfg, b.d.Language.Collator())

	b.input = NewPageCollection("pages", nil)
	for _, p := range pages {
		if p == nil {
			continue
		}
		if err := b.input.Add(p); err != nil {
			b.d.Log.Warnf("taxonomies: skip page: %s", err)
		}
	}

	b.setState(StateAxesInitialized)
}

// collectTerms adds every input page to the terms it is tagged with.
func (b *TaxonomyBuilder) collectTerms() error {
	pages := b.input.Pages()

	// Ordinals follow the ID order of the input collection, so the
	// result does not depend on the order the workers pick pages in.
	work := make(chan page.OrderedPage, b.workers*2)

	g, ctx := errgroup.WithContext(context.Background())

	for i := 0; i < b.workers; i++ {
		g.Go(func() error {
			for op := range work {
				if err := b.collectPage(op); err != nil {
					return err
				}
			}
			return nil
		})
	}

send:
	for i, p := range pages {
		select {
		case work <- page.NewOrderedPage(p, i):
		case <-ctx.Done():
			break send
		}
	}
	close(work)

	return g.Wait()
}

func (b *TaxonomyBuilder) collectPage(op page.OrderedPage) error {
	p := op.Page
	b.counters.pagesScanned.Inc()

	if b.isIgnored(p) {
		b.d.Log.Debugf("taxonomies: %q is ignored", p.ID())
		return nil
	}

	bc, err := p.BuildConfig()
	if err != nil {
		b.d.Log.Warnf("taxonomies: %q: %s", p.ID(), err)
	} else if !bc.ShouldListInTaxonomies() {
		b.d.Log.Debugf("taxonomies: %q is not listed", p.ID())
		return nil
	}

	var tagged bool

	for _, plural := range b.index.Plurals() {
		v, _ := p.NormalizeList(plural)

		switch v.Kind() {
		case pagemeta.ValueNone:
			continue
		case pagemeta.ValueOther:
			b.counters.valuesRejected.Inc()
			b.d.Log.Warnf("taxonomies: %q: %s must be a string or a list of strings, got %T", p.ID(), plural, v.Raw())
			continue
		}

		for _, term := range v.Strings() {
			name := NormalizeTermName(term)
			if name == "" {
				b.counters.valuesRejected.Inc()
				b.d.Log.Warnf("taxonomies: %q: empty term in %s", p.ID(), plural)
				continue
			}
			if _, ok := b.termID(plural, name); !ok {
				b.counters.valuesRejected.Inc()
				b.d.Log.Warnf("taxonomies: %q: term %q in %s has no valid path", p.ID(), term, plural)
				continue
			}
			created, err := b.index.Add(plural, term, p, op.Ordinal())
			if err != nil {
				return err
			}
			if created {
				b.counters.termsCreated.Inc()
			}
			tagged = true
		}
	}

	if tagged {
		b.counters.pagesTagged.Inc()
	}

	return nil
}

// termID returns the ID of the page of the term name in plural. A term
// whose ID is not a clean path below the taxonomy page, e.g. "?" or
// "../x", has none.
func (b *TaxonomyBuilder) termID(plural, name string) (string, bool) {
	id := b.urlize(plural + "/" + name)
	rest := strings.TrimPrefix(id, b.urlize(plural)+"/")
	if rest == id || rest == "" {
		return "", false
	}
	for _, seg := range strings.Split(rest, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", false
		}
	}
	return id, true
}

func (b *TaxonomyBuilder) isIgnored(p *page.Page) bool {
	for _, g := range b.ignore {
		if g.Match(p.ID()) {
			return true
		}
	}
	return false
}

// createNodePages creates the term pages and the taxonomy page of every
// taxonomy with at least one term.
func (b *TaxonomyBuilder) createNodePages(out *PageCollection) {
	for _, plural := range b.index.Plurals() {
		v := b.index.Get(plural)
		if v.Len() == 0 {
			b.d.Log.Debugf("taxonomies: %s has no terms", plural)
			continue
		}

		// The taxonomy page gets the date of the last term page created
		// and lists only the terms that got a page.
		var (
			date  time.Time
			terms []*Term
		)

		for _, t := range v.Terms() {
			p, err := b.newTermPage(v, t)
			if err != nil {
				b.omitPage(err)
				continue
			}
			date = p.Date()
			if b.addPage(out, p) {
				terms = append(terms, t)
			}
		}

		tp := b.newTaxonomyPage(v, terms, date)
		if b.input.Has(tp.ID()) {
			b.omitPage(fmt.Errorf("%s: %q: %w", b.input.Name(), tp.ID(), ErrDuplicatePage))
			continue
		}
		b.addPage(out, tp)
	}
}

// newTermPage creates the page listing the pages tagged with t, e.g.
// /tags/go/. A content page with the same ID is used as a base, so
// authors can set e.g. a custom title.
func (b *TaxonomyBuilder) newTermPage(v *Vocabulary, t *Term) (*page.Page, error) {
	pages := t.SortedPages(b.compare)
	id, ok := b.termID(v.Plural(), t.Name())
	if !ok {
		return nil, fmt.Errorf("%s: term %q has no valid path", v.Plural(), t.Name())
	}

	var date time.Time
	for _, p := range pages {
		if p.Date().After(date) {
			date = p.Date()
		}
	}

	size := b.pagerSize
	if size <= 0 {
		size = len(pages)
	}
	paginator, err := page.Paginate(id, b.d.PaginatePath, pages, size)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", id, err)
	}

	return page.NewBuilder(b.input.Get(id)).
		ID(id).
		Pathname(id).
		Kind(page.KindTerm).
		DefaultTitle(b.titleFunc(t.Name())).
		Date(date).
		Param(page.VarPages, pages).
		Param(page.VarDate, date).
		Param(page.VarSingular, v.Singular()).
		Param(page.VarPlural, v.Plural()).
		Param(page.VarTerm, t.Name()).
		Param(page.VarPagination, paginator).
		Build(), nil
}

// newTaxonomyPage creates the page listing all the terms of v, e.g. /tags/.
func (b *TaxonomyBuilder) newTaxonomyPage(v *Vocabulary, terms []*Term, date time.Time) *page.Page {
	id := b.urlize(v.Plural())

	return page.NewBuilder(nil).
		ID(id).
		Pathname(id).
		Kind(page.KindTaxonomy).
		Title(v.Plural()).
		Date(date).
		Param(page.VarPlural, v.Plural()).
		Param(page.VarSingular, v.Singular()).
		Param(page.VarTerms, terms).
		Param(page.VarDate, date).
		Build()
}

func (b *TaxonomyBuilder) addPage(out *PageCollection, p *page.Page) bool {
	if err := out.Add(p); err != nil {
		b.omitPage(err)
		return false
	}
	b.counters.pagesGenerated.Inc()
	return true
}

func (b *TaxonomyBuilder) omitPage(err error) {
	b.counters.pagesOmitted.Inc()
	b.d.Log.Warnf("taxonomies: page omitted: %s", err)
}
