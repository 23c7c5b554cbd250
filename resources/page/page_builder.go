package page

import (
	"strings"
	"time"

	"github.com/sunwei/hugo-taxonomy/common/maps"
)

// Builder creates a Page, optionally starting out from a copy of an
// existing one. Fields not set on the Builder keep the base values.
//
//	p := page.NewBuilder(base).
//		ID("tags/go").
//		Kind(page.KindTerm).
//		Param(page.VarSingular, "tag").
//		Build()
type Builder struct {
	p *Page
}

// NewBuilder creates a Builder. If base is not nil, its fields and a copy of
// its params are the starting point. base itself is never modified.
func NewBuilder(base *Page) *Builder {
	p := &Page{kind: KindPage}
	if base != nil {
		*p = *base
	}
	p.params = p.params.Clone()
	return &Builder{p: p}
}

func (b *Builder) ID(id string) *Builder {
	b.p.id = id
	return b
}

func (b *Builder) Pathname(pathname string) *Builder {
	b.p.pathname = strings.Trim(pathname, "/")
	return b
}

func (b *Builder) Title(title string) *Builder {
	b.p.title = title
	return b
}

// DefaultTitle sets the title if none is set yet, e.g. from the base page.
func (b *Builder) DefaultTitle(title string) *Builder {
	if b.p.title == "" {
		b.p.title = title
	}
	return b
}

func (b *Builder) Kind(kind string) *Builder {
	b.p.kind = kind
	return b
}

func (b *Builder) Date(date time.Time) *Builder {
	b.p.date = date
	return b
}

// Param sets one param. Keys are lower cased.
func (b *Builder) Param(key string, v any) *Builder {
	b.p.params[strings.ToLower(key)] = v
	return b
}

// Params merges params into the params set so far.
func (b *Builder) Params(params maps.Params) *Builder {
	p := params.Clone()
	maps.PrepareParams(p)
	b.p.params.Set(p)
	return b
}

// Build returns the Page. The pathname defaults to the ID.
func (b *Builder) Build() *Page {
	p := *b.p
	p.params = b.p.params.Clone()
	if p.pathname == "" {
		p.pathname = strings.Trim(p.id, "/")
	}
	return &p
}
