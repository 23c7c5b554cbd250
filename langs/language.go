// Copyright 2018 The Hugo Authors. All rights reserved.
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

package langs

import (
	"strings"
	"sync"

	"github.com/sunwei/hugo-taxonomy/config"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const defaultLanguage = "en"

// Language manages specific-language configuration.
type Language struct {
	Lang string

	// Global config.
	// For internal use.
	Cfg config.Provider

	tag      language.Tag
	collator *Collator
}

// For internal use.
func (l *Language) String() string {
	return l.Lang
}

// NewLanguage creates a new language.
func NewLanguage(lang string, cfg config.Provider) *Language {
	lang = strings.ToLower(lang)
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	return &Language{
		Lang:     lang,
		Cfg:      cfg,
		tag:      tag,
		collator: &Collator{c: collate.New(tag)},
	}
}

// NewDefaultLanguage creates the default language defined in cfg,
// falling back to English.
func NewDefaultLanguage(cfg config.Provider) *Language {
	defaultLang := cfg.GetString("defaultContentLanguage")
	if defaultLang == "" {
		defaultLang = defaultLanguage
	}
	return NewLanguage(defaultLang, cfg)
}

// Tag returns the language tag, e.g. en or nn-NO.
func (l *Language) Tag() language.Tag {
	return l.tag
}

// Collator returns the collator for this language.
func (l *Language) Collator() *Collator {
	return l.collator
}

// Collator compares strings in the order of a given language.
type Collator struct {
	sync.Mutex
	c *collate.Collator
}

// CompareStrings compares a and b.
// It returns -1 if a < b, 1 if a > b and 0 if a == b.
// Note that the Collator is not thread safe, so you may want
// to aquire a lock on it before calling this method.
func (c *Collator) CompareStrings(a, b string) int {
	return c.c.CompareString(a, b)
}
