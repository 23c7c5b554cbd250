// Copyright 2019 The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package page

import (
	"errors"
	"fmt"
	"math"
	"path"

	"github.com/spf13/cast"
	"github.com/sunwei/hugo-taxonomy/config"
)

// Pager represents one of the elements in a paginator.
// The number, starting on 1, represents its place.
type Pager struct {
	number int
	*Paginator
}

func (p Pager) String() string {
	return fmt.Sprintf("Pager %d", p.number)
}

type pagers []*Pager

// Paginator splits a page list into pagers of a fixed size.
type Paginator struct {
	paginatedElements []Pages
	pagers
	paginationURLFactory
	total int
	size  int
}

type paginationURLFactory func(int) string

// ResolvePagerSize returns the pager size given in options, or the
// paginate setting in cfg.
func ResolvePagerSize(cfg config.Provider, options ...any) (int, error) {
	if len(options) == 0 {
		return cfg.GetInt("paginate"), nil
	}

	if len(options) > 1 {
		return -1, errors.New("too many arguments, 'pager size' is currently the only option")
	}

	pas, err := cast.ToIntE(options[0])

	if err != nil || pas <= 0 {
		return -1, errors.New("'pager size' must be a positive integer")
	}

	return pas, nil
}

// Paginate splits pages into pagers of pagerSize. Pager URLs are relative
// to pathname, with paginatePath as the segment before the pager number,
// e.g. /tags/go/page/2/.
func Paginate(pathname, paginatePath string, pages Pages, pagerSize int) (*Paginator, error) {
	if pagerSize <= 0 {
		return nil, errors.New("'paginate' configuration setting must be positive to paginate")
	}

	urlFactory := newPaginationURLFactory(pathname, paginatePath)

	return newPaginatorFromPages(pages, pagerSize, urlFactory)
}

func newPaginationURLFactory(pathname, paginatePath string) paginationURLFactory {
	return func(pageNumber int) string {
		base := "/" + pathname
		if pageNumber > 1 {
			base = path.Join(base, paginatePath, cast.ToString(pageNumber))
		}
		if base == "/" {
			return base
		}
		return base + "/"
	}
}

func newPaginator(elements []Pages, total, size int, urlFactory paginationURLFactory) (*Paginator, error) {
	p := &Paginator{total: total, paginatedElements: elements, size: size, paginationURLFactory: urlFactory}

	var ps pagers

	if len(elements) > 0 {
		ps = make(pagers, len(elements))
		for i := range p.paginatedElements {
			ps[i] = &Pager{number: (i + 1), Paginator: p}
		}
	} else {
		ps = make(pagers, 1)
		ps[0] = &Pager{number: 1, Paginator: p}
	}

	p.pagers = ps

	return p, nil
}

func newPaginatorFromPages(pages Pages, size int, urlFactory paginationURLFactory) (*Paginator, error) {
	if size <= 0 {
		return nil, errors.New("Paginator size must be positive")
	}

	split := splitPages(pages, size)

	return newPaginator(split, len(pages), size, urlFactory)
}

func splitPages(pages Pages, size int) []Pages {
	var split []Pages
	for low, j := 0, len(pages); low < j; low += size {
		high := int(math.Min(float64(low+size), float64(len(pages))))
		split = append(split, pages[low:high])
	}

	return split
}

// Pagers returns a list of pagers that can be used to build a pagination menu.
func (p *Paginator) Pagers() pagers {
	return p.pagers
}

// PageSize returns the size of each paginator page.
func (p *Paginator) PageSize() int {
	return p.size
}

// TotalPages returns the number of pages in the paginator.
func (p *Paginator) TotalPages() int {
	return len(p.paginatedElements)
}

// TotalNumberOfElements returns the number of elements on all pages in this paginator.
func (p *Paginator) TotalNumberOfElements() int {
	return p.total
}

// URL returns the URL to the current page.
func (p *Pager) URL() string {
	return p.paginationURLFactory(p.PageNumber())
}

// PageNumber returns the current page's number in the pager sequence.
func (p *Pager) PageNumber() int {
	return p.number
}

// Pages returns the Pages on this page.
func (p *Pager) Pages() Pages {
	if len(p.paginatedElements) == 0 {
		return Pages{}
	}
	return p.paginatedElements[p.PageNumber()-1]
}

// NumberOfElements gets the number of elements on this page.
func (p *Pager) NumberOfElements() int {
	return len(p.Pages())
}

// HasPrev tests whether there are page(s) before the current.
func (p *Pager) HasPrev() bool {
	return p.PageNumber() > 1
}

// Prev returns the pager for the previous page.
func (p *Pager) Prev() *Pager {
	if !p.HasPrev() {
		return nil
	}
	return p.pagers[p.PageNumber()-2]
}

// HasNext tests whether there are page(s) after the current.
func (p *Pager) HasNext() bool {
	return p.PageNumber() < len(p.paginatedElements)
}

// Next returns the pager for the next page.
func (p *Pager) Next() *Pager {
	if !p.HasNext() {
		return nil
	}
	return p.pagers[p.PageNumber()]
}

// First returns the pager for the first page.
func (p *Pager) First() *Pager {
	return p.pagers[0]
}

// Last returns the pager for the last page.
func (p *Pager) Last() *Pager {
	return p.pagers[len(p.pagers)-1]
}
