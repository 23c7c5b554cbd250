package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/hugo-taxonomy/common/maps"
)

func TestDecodeTaxonomies(t *testing.T) {
	cfg := New()
	cfg.Set("taxonomies", map[string]any{
		"tags":       "tag",
		"Categories": "category",
		"series":     "disable",
		"authors":    false,
		"topics":     true,
		"sortOrder":  "ASC",
		"workers":    "4",
		"ignore":     "drafts/**",
	})

	tc, err := DecodeTaxonomies(cfg)
	require.NoError(t, err)

	assert.True(t, tc.Enabled())
	assert.Equal(t, map[string]string{"tags": "tag", "categories": "category", "topics": "topics"}, tc.Axes)
	assert.Equal(t, []string{"categories", "tags", "topics"}, tc.Plurals())
	assert.Equal(t, "category", tc.Singular("categories"))
	assert.Equal(t, SortOrderAsc, tc.SortOrder)
	assert.Equal(t, 4, tc.Workers)
	assert.Equal(t, []string{"drafts/**"}, tc.Ignore)
}

func TestDecodeTaxonomiesDisabled(t *testing.T) {
	for _, test := range []struct {
		name string
		cfg  Provider
	}{
		{"nil", nil},
		{"missing", New()},
		{"disabled", NewFrom(maps.Params{"taxonomies": map[string]any{"tags": "tag", "disabled": true}})},
		{"disable alias", NewFrom(maps.Params{"taxonomies": map[string]any{"tags": "tag", "disable": "true"}})},
		{"no axes", NewFrom(maps.Params{"taxonomies": map[string]any{"sortorder": "desc"}})},
	} {
		t.Run(test.name, func(t *testing.T) {
			tc, err := DecodeTaxonomies(test.cfg)
			require.NoError(t, err)
			assert.False(t, tc.Enabled())
		})
	}
}

func TestDecodeTaxonomiesErrors(t *testing.T) {
	_, err := DecodeTaxonomiesFrom("tags")
	assert.Error(t, err)

	_, err = DecodeTaxonomiesFrom(map[string]any{"tags": "tag", "sortorder": "random"})
	assert.Error(t, err)

	_, err = DecodeTaxonomiesFrom(map[string]any{"tags": map[string]any{"a": 1}})
	assert.Error(t, err)
}

func TestDecodeTaxonomiesDefaults(t *testing.T) {
	tc, err := DecodeTaxonomiesFrom(map[string]any{"tags": "tag"})
	require.NoError(t, err)
	assert.Equal(t, SortOrderDesc, tc.SortOrder)
	assert.Equal(t, 0, tc.Workers)
	assert.Empty(t, tc.Ignore)
}
