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

// Package page contains the page record shared by content pages and the
// list pages generated from them.
package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/sunwei/hugo-taxonomy/common/maps"
	"github.com/sunwei/hugo-taxonomy/resources/page/pagemeta"
)

// Variable keys set on generated list pages.
const (
	VarPages      = "pages"
	VarDate       = "date"
	VarSingular   = "singular"
	VarPlural     = "plural"
	VarPagination = "pagination"
	VarTerms      = "terms"
	VarTerm       = "term"
)

// Page is a content page or a page generated from other pages.
//
// Params holds both the front matter of content pages and the variables
// set on generated pages. All keys are lower case.
type Page struct {
	id       string
	pathname string
	title    string
	kind     string
	date     time.Time
	params   maps.Params
}

// ID returns the unique identifier of p.
func (p *Page) ID() string {
	return p.id
}

// Pathname returns the URL path of p, without leading or trailing slashes.
func (p *Page) Pathname() string {
	return p.pathname
}

// Title returns the title of p.
func (p *Page) Title() string {
	return p.title
}

// Kind returns the page kind, one of page, home, section, taxonomy, term.
func (p *Page) Kind() string {
	return p.kind
}

// Date returns the date of p.
func (p *Page) Date() time.Time {
	return p.date
}

// IsNode reports whether p is a list page.
func (p *Page) IsNode() bool {
	return p.kind != KindPage
}

// Params returns all the params of p. The map is owned by p.
func (p *Page) Params() maps.Params {
	return p.params
}

// Param returns the param with the given key, nil if not set.
func (p *Page) Param(key string) any {
	return p.params[strings.ToLower(key)]
}

// HasParam reports whether the param with the given key is set.
func (p *Page) HasParam(key string) bool {
	return p.params.IsSet(key)
}

// SetParam sets the param with the given key.
func (p *Page) SetParam(key string, v any) {
	p.params[strings.ToLower(key)] = v
}

// Value returns the param with the given key as a pagemeta.Value.
func (p *Page) Value(key string) pagemeta.Value {
	return pagemeta.ValueOf(p.Param(key))
}

// NormalizeList rewrites a scalar param as a one element string slice so
// list consumers see one shape. It reports whether p was changed.
func (p *Page) NormalizeList(key string) (pagemeta.Value, bool) {
	v := p.Value(key)
	if v.Kind() != pagemeta.ValueString {
		return v, false
	}
	p.SetParam(key, v.Strings())
	return pagemeta.ValueOf(v.Strings()), true
}

// BuildConfig decodes the _build front matter of p.
func (p *Page) BuildConfig() (pagemeta.BuildConfig, error) {
	return pagemeta.DecodeBuildConfig(p.Param(pagemeta.BuildConfigKey))
}

func (p *Page) String() string {
	return fmt.Sprintf("Page(%s %q)", p.kind, p.id)
}
