package hugolib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/hugo-taxonomy/resources/page"
)

func TestPageCollection(t *testing.T) {
	c := NewPageCollection("site", nil)
	assert.Equal(t, "site", c.Name())

	for _, p := range []*page.Page{
		page.NewBuilder(nil).ID("tags/rust").Kind(page.KindTerm).Build(),
		page.NewBuilder(nil).ID("tags").Kind(page.KindTaxonomy).Build(),
		page.NewBuilder(nil).ID("tags/go").Kind(page.KindTerm).Build(),
		page.NewBuilder(nil).ID("tagsx").Build(),
		page.NewBuilder(nil).ID("categories/news").Kind(page.KindTerm).Build(),
	} {
		require.NoError(t, c.Add(p))
	}

	assert.Equal(t, 5, c.Len())
	assert.True(t, c.Has("tags/go"))
	assert.False(t, c.Has("tags/java"))
	assert.Nil(t, c.Get("tags/java"))
	assert.Equal(t, page.KindTaxonomy, c.Get("tags").Kind())

	assert.Equal(t, []string{"categories/news", "tags", "tags/go", "tags/rust", "tagsx"}, c.Pages().IDs())
	assert.Equal(t, []string{"tags/go", "tags/rust"}, c.PagesBelow("tags").IDs())
	assert.Equal(t, []string{"tags/go", "tags/rust"}, c.PagesBelow("tags/").IDs())
	assert.Empty(t, c.PagesBelow("series"))
	assert.Equal(t, []string{"categories/news", "tags/go", "tags/rust"}, c.PagesOfKind(page.KindTerm).IDs())
	assert.Equal(t, []string{"tagsx"}, c.PagesOfKind(page.KindPage).IDs())
}
