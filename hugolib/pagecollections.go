package hugolib

import (
	"errors"
	"fmt"
	"strings"

	radix "github.com/armon/go-radix"
	"github.com/sunwei/hugo-taxonomy/resources/page"
	"github.com/sunwei/hugo-taxonomy/tpl"
)

var (
	// ErrDuplicatePage is returned when adding a page with an ID that is
	// already in the collection.
	ErrDuplicatePage = errors.New("page already exists")

	// ErrNoLayout is returned when adding a page of a kind that cannot be
	// rendered.
	ErrNoLayout = errors.New("no layout for page kind")
)

// PageCollection is a set of pages keyed by page ID, walked in ID order.
type PageCollection struct {
	name    string
	tree    *radix.Tree
	layouts tpl.LayoutHandler
}

// NewPageCollection creates an empty collection. If layouts is not nil,
// only pages of a kind with a layout can be added.
func NewPageCollection(name string, layouts tpl.LayoutHandler) *PageCollection {
	return &PageCollection{
		name:    name,
		tree:    radix.New(),
		layouts: layouts,
	}
}

// Name returns the collection name.
func (c *PageCollection) Name() string {
	return c.name
}

// Add adds p to the collection. It fails with ErrDuplicatePage or
// ErrNoLayout, leaving the collection unchanged.
func (c *PageCollection) Add(p *page.Page) error {
	if c.layouts != nil && !c.layouts.HasLayout(p.Kind()) {
		return fmt.Errorf("%s: %q: %w %q", c.name, p.ID(), ErrNoLayout, p.Kind())
	}
	if _, found := c.tree.Get(p.ID()); found {
		return fmt.Errorf("%s: %q: %w", c.name, p.ID(), ErrDuplicatePage)
	}
	c.tree.Insert(p.ID(), p)
	return nil
}

// Has reports whether a page with the given ID is in the collection.
func (c *PageCollection) Has(id string) bool {
	_, found := c.tree.Get(id)
	return found
}

// Get returns the page with the given ID, nil if not found.
func (c *PageCollection) Get(id string) *page.Page {
	v, found := c.tree.Get(id)
	if !found {
		return nil
	}
	return v.(*page.Page)
}

// Len returns the number of pages.
func (c *PageCollection) Len() int {
	return c.tree.Len()
}

// Pages returns all pages ordered by ID.
func (c *PageCollection) Pages() page.Pages {
	pages := make(page.Pages, 0, c.tree.Len())
	c.tree.Walk(func(s string, v any) bool {
		pages = append(pages, v.(*page.Page))
		return false
	})
	return pages
}

// PagesBelow returns the pages with an ID in the given section, e.g. all
// term pages of a taxonomy with "tags". The section page itself is not
// included.
func (c *PageCollection) PagesBelow(section string) page.Pages {
	prefix := strings.TrimSuffix(section, "/") + "/"
	var pages page.Pages
	c.tree.WalkPrefix(prefix, func(s string, v any) bool {
		pages = append(pages, v.(*page.Page))
		return false
	})
	return pages
}

// PagesOfKind returns the pages of the given kind ordered by ID.
func (c *PageCollection) PagesOfKind(kind string) page.Pages {
	var pages page.Pages
	c.tree.Walk(func(s string, v any) bool {
		if p := v.(*page.Page); p.Kind() == kind {
			pages = append(pages, p)
		}
		return false
	})
	return pages
}
