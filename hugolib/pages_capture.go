package hugolib

import (
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/sunwei/hugo-taxonomy/common/maps"
	"github.com/sunwei/hugo-taxonomy/config"
	"github.com/sunwei/hugo-taxonomy/resources/page"
)

// pagesKey is the root key of a page data file.
const pagesKey = "pages"

// pageData is one entry in a page data file:
//
//	[[pages]]
//	id = "posts/first"
//	title = "First"
//	date = 2022-03-01
//	[pages.params]
//	tags = ["Go", "Hugo"]
type pageData struct {
	ID       string
	Title    string
	Kind     string
	Pathname string
	Date     any
	Params   any
}

// pagesCollector reads pages from a TOML or YAML page data file. Front
// matter parsing happens elsewhere; the file holds already parsed pages.
type pagesCollector struct {
	fs afero.Fs
}

func newPagesCollector(fs afero.Fs) *pagesCollector {
	return &pagesCollector{fs: fs}
}

// CollectPages reads the pages in filename.
func CollectPages(fs afero.Fs, filename string) (page.Pages, error) {
	return newPagesCollector(fs).Collect(filename)
}

// Collect pages.
func (c *pagesCollector) Collect(filename string) (page.Pages, error) {
	m, err := config.FromFileToMap(c.fs, filename)
	if err != nil {
		return nil, err
	}

	entries, err := maps.ToSliceStringMap(m[pagesKey])
	if err != nil {
		return nil, fmt.Errorf("%q: %s must be a list of pages: %w", filename, pagesKey, err)
	}

	pages := make(page.Pages, 0, len(entries))
	for i, entry := range entries {
		p, err := c.handlePage(entry)
		if err != nil {
			return nil, fmt.Errorf("%q: page %d: %w", filename, i, err)
		}
		pages = append(pages, p)
	}

	return pages, nil
}

func (c *pagesCollector) handlePage(entry map[string]any) (*page.Page, error) {
	var pd pageData
	if err := mapstructure.WeakDecode(entry, &pd); err != nil {
		return nil, err
	}
	if pd.ID == "" {
		return nil, errors.New("missing id")
	}

	params, ok := maps.ToParamsAndPrepare(pd.Params)
	if !ok {
		return nil, fmt.Errorf("%q: params must be a map, got %T", pd.ID, pd.Params)
	}

	b := page.NewBuilder(nil).
		ID(pd.ID).
		Pathname(pd.Pathname).
		Title(pd.Title).
		Params(params)

	if pd.Kind != "" {
		kind := page.GetKind(pd.Kind)
		if kind == "" {
			return nil, fmt.Errorf("%q: unknown kind %q", pd.ID, pd.Kind)
		}
		b.Kind(kind)
	}

	if pd.Date != nil {
		date, err := toTime(pd.Date)
		if err != nil {
			return nil, fmt.Errorf("%q: invalid date: %w", pd.ID, err)
		}
		b.Date(date)
	}

	return b.Build(), nil
}

// toTime converts v to a time.Time. Strings in formats cast does not
// know, e.g. "March 2, 2022", are parsed with dateparse.
func toTime(v any) (time.Time, error) {
	t, err := cast.ToTimeE(v)
	if err == nil {
		return t, nil
	}
	if s, ok := v.(string); ok {
		if t, perr := dateparse.ParseAny(s); perr == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
