package hugolib

import (
	"github.com/sunwei/hugo-taxonomy/deps"
	"github.com/sunwei/hugo-taxonomy/resources/page"
)

// Site holds the pages of a site and the taxonomy pages built from them.
// The basic flow of information is as follows:
//
//  1. The content pages are handed over to Build, e.g. from CollectPages.
//
//  2. Taxonomies are created via configuration: one page per term of every
//     taxonomy, and one page per taxonomy listing its terms.
//
//  3. The pages are ready for rendering, which happens elsewhere.
type Site struct {
	// Logger etc.
	*deps.Deps `json:"-"`

	taxonomyBuilder *TaxonomyBuilder

	pages      *PageCollection
	taxonomies *PageCollection
}

// NewSite creates a new site with the given configuration.
func NewSite(cfg deps.DepsCfg) (*Site, error) {
	d, err := deps.New(cfg)
	if err != nil {
		return nil, err
	}

	b, err := NewTaxonomyBuilderFromConfig(d)
	if err != nil {
		return nil, err
	}

	return &Site{
		Deps:            d,
		taxonomyBuilder: b,
		pages:           NewPageCollection("pages", nil),
		taxonomies:      NewPageCollection("taxonomies", nil),
	}, nil
}

// RegularPages returns the content pages, ordered by ID.
func (s *Site) RegularPages() page.Pages {
	return s.pages.Pages()
}

// Taxonomies returns the generated taxonomy and term pages.
func (s *Site) Taxonomies() *PageCollection {
	return s.taxonomies
}

// TaxonomyIndex returns the terms of every taxonomy, nil before the first
// Build or if taxonomies are disabled.
func (s *Site) TaxonomyIndex() *TaxonomyIndex {
	return s.taxonomyBuilder.Index()
}

// Stats returns the counters of the last taxonomy build.
func (s *Site) Stats() BuildStats {
	return s.taxonomyBuilder.Stats()
}

// AllPages returns the content pages and the generated pages ordered by
// ID. A generated term page replaces the content page it was based on.
func (s *Site) AllPages() page.Pages {
	all := NewPageCollection("all", nil)
	for _, p := range s.taxonomies.Pages() {
		all.Add(p)
	}
	for _, p := range s.pages.Pages() {
		if !all.Has(p.ID()) {
			all.Add(p)
		}
	}
	return all.Pages()
}
