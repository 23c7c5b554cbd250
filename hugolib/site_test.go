package hugolib

import (
	"bytes"
	"testing"

	jww "github.com/spf13/jwalterweatherman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/hugo-taxonomy/common/loggers"
	"github.com/sunwei/hugo-taxonomy/common/maps"
	"github.com/sunwei/hugo-taxonomy/config"
	"github.com/sunwei/hugo-taxonomy/deps"
	"github.com/sunwei/hugo-taxonomy/resources/page"
)

func TestSiteBuild(t *testing.T) {
	var logs bytes.Buffer
	s, err := NewSite(deps.DepsCfg{
		Cfg:    config.NewFrom(tagsAndCategories()),
		Logger: loggers.NewBasicLoggerForWriter(jww.LevelWarn, &logs),
	})
	require.NoError(t, err)
	assert.Nil(t, s.TaxonomyIndex())

	require.NoError(t, s.Build(page.Pages{
		newTestPage("tags/go", day(1), maps.Params{"description": "Gophers"}),
		newTestPage("posts/b", day(2), maps.Params{"tags": "go"}),
		newTestPage("posts/a", day(1), maps.Params{"tags": []string{"Go", "Rust"}}),
		newTestPage("posts/a", day(3), nil),
	}))

	assert.Equal(t, []string{"posts/a", "posts/b", "tags/go"}, s.RegularPages().IDs())
	assert.Equal(t, []string{"tags", "tags/go", "tags/rust"}, s.Taxonomies().Pages().IDs())
	assert.Equal(t, []string{"posts/a", "posts/b", "tags", "tags/go", "tags/rust"}, s.AllPages().IDs())
	assert.Equal(t, page.KindTerm, s.AllPages().Get("tags/go").Kind())
	assert.Equal(t, "Gophers", s.AllPages().Get("tags/go").Param("description"))
	assert.Equal(t, 2, s.TaxonomyIndex().Get("tags").Len())
	assert.Equal(t, 3, s.Stats().PagesGenerated)
	assert.Contains(t, logs.String(), `"posts/a"`)

	// Rebuild from scratch.
	require.NoError(t, s.Build(page.Pages{newTestPage("posts/c", day(1), nil)}))
	assert.Equal(t, []string{"posts/c"}, s.AllPages().IDs())
	assert.Equal(t, 0, s.Taxonomies().Len())
}

func TestNewSiteErrors(t *testing.T) {
	_, err := NewSite(deps.DepsCfg{})
	assert.Error(t, err)

	_, err = NewSite(deps.DepsCfg{Cfg: config.NewFrom(maps.Params{
		"taxonomies": maps.Params{"tags": "tag", "ignore": []string{"["}},
	})})
	assert.Error(t, err)
}
