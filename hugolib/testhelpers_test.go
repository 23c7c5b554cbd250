package hugolib

import (
	"bytes"
	"testing"
	"time"

	jww "github.com/spf13/jwalterweatherman"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/hugo-taxonomy/common/loggers"
	"github.com/sunwei/hugo-taxonomy/common/maps"
	"github.com/sunwei/hugo-taxonomy/config"
	"github.com/sunwei/hugo-taxonomy/deps"
	"github.com/sunwei/hugo-taxonomy/resources/page"
	"github.com/sunwei/hugo-taxonomy/tpl"
)

type testDeps struct {
	*deps.Deps
	logs *bytes.Buffer
}

func newTestDeps(t testing.TB, params maps.Params, layouts tpl.LayoutHandler) testDeps {
	t.Helper()
	var logs bytes.Buffer
	d, err := deps.New(deps.DepsCfg{
		Cfg:     config.NewFrom(params),
		Logger:  loggers.NewBasicLoggerForWriter(jww.LevelWarn, &logs),
		Layouts: layouts,
	})
	require.NoError(t, err)
	return testDeps{Deps: d, logs: &logs}
}

func tagsAndCategories() maps.Params {
	return maps.Params{
		"taxonomies": maps.Params{
			"tags":       "Tag",
			"categories": "Category",
		},
	}
}

func day(n int) time.Time {
	return time.Date(2022, time.March, n, 10, 0, 0, 0, time.UTC)
}

func newTestPage(id string, date time.Time, params maps.Params) *page.Page {
	return page.NewBuilder(nil).
		ID(id).
		Title(id).
		Date(date).
		Params(params).
		Build()
}

func buildTaxonomies(t testing.TB, d testDeps, pages ...*page.Page) (*TaxonomyBuilder, *PageCollection) {
	t.Helper()
	b, err := NewTaxonomyBuilderFromConfig(d.Deps)
	require.NoError(t, err)
	out, err := b.Build(pages)
	require.NoError(t, err)
	return b, out
}

// memberIDs returns the IDs of the member pages of the term page with the
// given ID, nil if there is no such page.
func memberIDs(out *PageCollection, id string) []string {
	p := out.Get(id)
	if p == nil {
		return nil
	}
	return p.Param(page.VarPages).(page.Pages).IDs()
}

func termNames(p *page.Page) []string {
	var names []string
	for _, t := range p.Param(page.VarTerms).([]*Term) {
		names = append(names, t.Name())
	}
	return names
}

func vocabularyNames(v *Vocabulary) []string {
	var names []string
	for _, t := range v.Terms() {
		names = append(names, t.Name())
	}
	return names
}
