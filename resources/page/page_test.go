package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/hugo-taxonomy/common/maps"
	"github.com/sunwei/hugo-taxonomy/resources/page/pagemeta"
)

func TestBuilder(t *testing.T) {
	date := time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)
	p := NewBuilder(nil).
		ID("/posts/first/").
		Title("First").
		Date(date).
		Params(maps.Params{"Tags": "Go", "author": maps.Params{"name": "sunwei"}}).
		Build()

	assert.Equal(t, "/posts/first/", p.ID())
	assert.Equal(t, "posts/first", p.Pathname())
	assert.Equal(t, "First", p.Title())
	assert.Equal(t, KindPage, p.Kind())
	assert.False(t, p.IsNode())
	assert.Equal(t, date, p.Date())
	assert.Equal(t, "Go", p.Param("tags"))
	assert.True(t, p.HasParam("TAGS"))
	assert.Equal(t, `Page(page "/posts/first/")`, p.String())
}

func TestBuilderFromBase(t *testing.T) {
	base := NewBuilder(nil).
		ID("tags/go").
		Title("The Go Programming Language").
		Param("description", "All about Go").
		Param("author", maps.Params{"name": "a"}).
		Build()

	p := NewBuilder(base).
		Kind(KindTerm).
		DefaultTitle("Go").
		Param(VarSingular, "tag").
		Build()

	assert.Equal(t, "The Go Programming Language", p.Title())
	assert.Equal(t, KindTerm, p.Kind())
	assert.Equal(t, "All about Go", p.Param("description"))
	assert.Equal(t, "tag", p.Param("singular"))

	// The base is never touched.
	assert.Equal(t, KindPage, base.Kind())
	assert.False(t, base.HasParam(VarSingular))
	p.Params()["author"].(maps.Params)["name"] = "b"
	assert.Equal(t, "a", base.Param("author").(maps.Params)["name"])

	p = NewBuilder(nil).DefaultTitle("Go").Build()
	assert.Equal(t, "Go", p.Title())
}

func TestNormalizeList(t *testing.T) {
	p := NewBuilder(nil).ID("p1").Param("tags", "Go").Param("categories", []any{"a", "b"}).Build()

	v, changed := p.NormalizeList("tags")
	assert.True(t, changed)
	assert.Equal(t, pagemeta.ValueStrings, v.Kind())
	assert.Equal(t, []string{"Go"}, p.Param("tags"))

	v, changed = p.NormalizeList("tags")
	assert.False(t, changed)
	assert.Equal(t, []string{"Go"}, v.Strings())
	assert.Equal(t, []string{"Go"}, p.Param("tags"))

	_, changed = p.NormalizeList("categories")
	assert.False(t, changed)
	assert.Equal(t, []any{"a", "b"}, p.Param("categories"))

	v, changed = p.NormalizeList("series")
	assert.False(t, changed)
	assert.True(t, v.IsZero())
}

func TestPageBuildConfig(t *testing.T) {
	p := NewBuilder(nil).ID("p1").Param("_build", map[string]any{"list": "never"}).Build()
	b, err := p.BuildConfig()
	require.NoError(t, err)
	assert.False(t, b.ShouldListInTaxonomies())
}

func TestPages(t *testing.T) {
	p1 := NewBuilder(nil).ID("p1").Build()
	p2 := NewBuilder(nil).ID("p2").Build()
	pages := Pages{p1, p2}

	assert.Equal(t, 2, pages.Len())
	assert.Equal(t, []string{"p1", "p2"}, pages.IDs())
	assert.Same(t, p2, pages.Get("p2"))
	assert.Nil(t, pages.Get("p3"))
}

func TestGetKind(t *testing.T) {
	assert.Equal(t, KindTerm, GetKind("Term"))
	assert.Equal(t, KindTaxonomy, GetKind("taxonomyTerm"))
	assert.Equal(t, "", GetKind("foo"))
}
