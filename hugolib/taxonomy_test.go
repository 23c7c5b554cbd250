package hugolib

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/hugo-taxonomy/common/maps"
	"github.com/sunwei/hugo-taxonomy/config"
	"github.com/sunwei/hugo-taxonomy/langs"
	"github.com/sunwei/hugo-taxonomy/resources/page"
)

func TestNormalizeTermName(t *testing.T) {
	for _, test := range []struct {
		in, expect string
	}{
		{"Go", "go"},
		{"  Rust ", "rust"},
		{"ÉTÉ", "été"},
		{"", ""},
		{" ", ""},
	} {
		assert.Equal(t, test.expect, NormalizeTermName(test.in), test.in)
		assert.Equal(t, test.expect, NormalizeTermName(NormalizeTermName(test.in)), test.in)
	}
}

func TestTaxonomyIndex(t *testing.T) {
	cfg := config.Taxonomies{Axes: map[string]string{"tags": "tag", "categories": "category"}}
	ti := NewTaxonomyIndex(cfg, nil)

	assert.Equal(t, []string{"categories", "tags"}, ti.Plurals())
	assert.Nil(t, ti.Get("series"))

	p1 := newTestPage("p1", day(1), nil)
	p2 := newTestPage("p2", day(2), nil)

	created, err := ti.Add("tags", "Go", p1, 0)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = ti.Add("tags", "GO", p2, 1)
	require.NoError(t, err)
	assert.False(t, created)

	// Same page again.
	_, err = ti.Add("tags", "go", p1, 0)
	require.NoError(t, err)

	_, err = ti.Add("series", "intro", p1, 0)
	assert.Error(t, err)

	_, err = ti.Add("tags", " ", p1, 0)
	assert.Error(t, err)

	tags := ti.Get("tags")
	assert.Equal(t, "tags", tags.Plural())
	assert.Equal(t, "tag", tags.Singular())
	assert.Equal(t, 1, tags.Len())

	term := tags.Get("Go")
	require.NotNil(t, term)
	assert.Equal(t, "go", term.Name())
	assert.Equal(t, 2, term.Count())
	assert.Equal(t, []string{"p1", "p2"}, term.Pages().IDs())
	assert.Equal(t, []string{"p2", "p1"}, term.SortedPages(page.ByDateDesc).IDs())
	assert.Equal(t, []string{"p1", "p2"}, term.SortedPages(page.ByDateAsc).IDs())
	assert.Equal(t, "Term(go, 2 pages)", term.String())

	assert.Equal(t, 0, ti.Get("categories").Len())
}

func TestVocabularyTermsCollated(t *testing.T) {
	cfg := config.Taxonomies{Axes: map[string]string{"tags": "tag"}}
	collator := langs.NewLanguage("en", config.New()).Collator()
	ti := NewTaxonomyIndex(cfg, collator)

	p := newTestPage("p", day(1), nil)
	for _, name := range []string{"zebra", "Éclair", "apple", "eclair", "b"} {
		_, err := ti.Add("tags", name, p, 0)
		require.NoError(t, err)
	}

	var names []string
	for _, term := range ti.Get("tags").Terms() {
		names = append(names, term.Name())
	}
	assert.Equal(t, []string{"apple", "b", "eclair", "éclair", "zebra"}, names)
}

func TestTaxonomyIndexConcurrentAdd(t *testing.T) {
	cfg := config.Taxonomies{Axes: map[string]string{"tags": "tag", "categories": "category"}}
	ti := NewTaxonomyIndex(cfg, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := newTestPage(fmt.Sprintf("p%d", i), day(1), maps.Params{})
			for j := 0; j < 10; j++ {
				_, err := ti.Add("tags", fmt.Sprintf("T%d", j), p, i)
				assert.NoError(t, err)
				_, err = ti.Add("categories", "all", p, i)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, ti.Get("tags").Len())
	assert.Equal(t, 20, ti.Get("tags").Get("t3").Count())
	assert.Equal(t, 20, ti.Get("categories").Get("all").Count())
}
