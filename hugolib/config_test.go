package hugolib

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/hugo-taxonomy/config"
)

func TestLoadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/site/config.toml", []byte(`
paginate = 3
titleCaseStyle = "AP"

[taxonomies]
Series = "serie"
tags = "tag"
`), 0644))

	cfg, files, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/site", Filename: "config.toml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/site/config.toml"}, files)

	assert.Equal(t, 3, cfg.GetInt("paginate"))
	assert.Equal(t, "page", cfg.GetString("paginatePath"))
	assert.Equal(t, "AP", cfg.GetString("titleCaseStyle"))
	assert.Equal(t, "en", cfg.GetString("defaultContentLanguage"))

	tc, err := config.DecodeTaxonomies(cfg)
	require.NoError(t, err)
	assert.True(t, tc.Enabled())
	// The site taxonomies replace the default ones.
	assert.Equal(t, map[string]string{"series": "serie", "tags": "tag"}, tc.Axes)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, files, err := LoadConfig(ConfigSourceDescriptor{Fs: afero.NewMemMapFs()})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, 10, cfg.GetInt("paginate"))
	assert.False(t, cfg.GetBool("removePathAccents"))

	tc, err := config.DecodeTaxonomies(cfg)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"tags": "tag", "categories": "category"}, tc.Axes)
	assert.Equal(t, config.SortOrderDesc, tc.SortOrder)
}

func TestLoadConfigErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.toml", []byte(`paginate = `), 0644))

	_, _, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, Filename: "config.toml"})
	assert.Error(t, err)

	_, _, err = LoadConfig(ConfigSourceDescriptor{Fs: fs, Filename: "missing.toml"})
	assert.Error(t, err)
}
