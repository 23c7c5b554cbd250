package page

import (
	"sort"
	"strings"

	"github.com/sunwei/hugo-taxonomy/common/collections"
)

// CompareFunc compares two pages. It returns a negative number if p1 sorts
// before p2, a positive number if p1 sorts after p2 and zero if they are
// equal in this order.
type CompareFunc func(p1, p2 *Page) int

// ByDateDesc orders pages newest first.
func ByDateDesc(p1, p2 *Page) int {
	return -ByDateAsc(p1, p2)
}

// ByDateAsc orders pages oldest first.
func ByDateAsc(p1, p2 *Page) int {
	d1, d2 := p1.Date(), p2.Date()
	switch {
	case d1.Before(d2):
		return -1
	case d1.After(d2):
		return 1
	}
	return 0
}

// DefaultPageCompare is the date order used when none is configured.
var DefaultPageCompare CompareFunc = ByDateDesc

// OrderedPage is a Page with its position in the input it was read from.
type OrderedPage struct {
	*Page
	ordinal int
}

// NewOrderedPage creates an OrderedPage.
func NewOrderedPage(p *Page, ordinal int) OrderedPage {
	return OrderedPage{Page: p, ordinal: ordinal}
}

// Ordinal returns the zero-based position of the page in its input.
func (p OrderedPage) Ordinal() int {
	return p.ordinal
}

var _ collections.Order = OrderedPage{}

// OrderedPages is a list of OrderedPage.
type OrderedPages []OrderedPage

// Pages returns the Pages in this set.
func (op OrderedPages) Pages() Pages {
	pages := make(Pages, len(op))
	for i := range op {
		pages[i] = op[i].Page
	}
	return pages
}

// Sort stable sorts op using cmp. Pages equal in cmp are ordered by ordinal,
// then by ID, so the result is the same for any input order of op.
func (op OrderedPages) Sort(cmp CompareFunc) {
	if cmp == nil {
		cmp = DefaultPageCompare
	}
	pageBy(func(p1, p2 OrderedPage) bool {
		if c := cmp(p1.Page, p2.Page); c != 0 {
			return c < 0
		}
		if c := collections.CompareOrdinals(p1, p2); c != 0 {
			return c < 0
		}
		return strings.Compare(p1.ID(), p2.ID()) < 0
	}).Sort(op)
}

// pageBy is a closure used in the Sort.Less method.
type pageBy func(p1, p2 OrderedPage) bool

// Sort stable sorts the pages given the receiver's sort order.
func (by pageBy) Sort(pages OrderedPages) {
	ps := &pageSorter{
		pages: pages,
		by:    by, // The Sort method's receiver is the function (closure) that defines the sort order.
	}
	sort.Stable(ps)
}

// A pageSorter implements the sort interface for OrderedPages
type pageSorter struct {
	pages OrderedPages
	by    pageBy
}

func (ps *pageSorter) Len() int      { return len(ps.pages) }
func (ps *pageSorter) Swap(i, j int) { ps.pages[i], ps.pages[j] = ps.pages[j], ps.pages[i] }

// Less is part of sort.Interface. It is implemented by calling the "by" closure in the sorter.
func (ps *pageSorter) Less(i, j int) bool { return ps.by(ps.pages[i], ps.pages[j]) }
