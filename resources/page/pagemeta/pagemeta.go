package pagemeta

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sunwei/hugo-taxonomy/common/maps"
)

// BuildConfigKey is the front matter key holding the BuildConfig.
const BuildConfigKey = "_build"

// BuildConfig holds configuration options about how to handle a Page in the
// build process.
type BuildConfig struct {
	// Whether to add it to any of the page collections.
	// Valid values: never, always, local.
	// Setting it to 'local' means they will be available via the local
	// page collections, e.g. $section.Pages, but not in any taxonomy.
	// Note: we accept bools too.
	List string

	// Whether to render it.
	// Valid values: never, always, link.
	// The value link means it will not be rendered, but it will get a URL.
	Render string

	set bool // BuildCfg is non-zero if this is set to true.
}

const (
	Never       = "never"
	Always      = "always"
	ListLocally = "local"
	Link        = "link"
)

var defaultBuildConfig = BuildConfig{
	List:   Always,
	Render: Always,
	set:    true,
}

// DecodeBuildConfig decodes m, usually the _build front matter map.
// A nil m gives the default config.
func DecodeBuildConfig(m any) (BuildConfig, error) {
	b := defaultBuildConfig
	if m == nil {
		return b, nil
	}

	src, err := maps.ToStringMapE(m)
	if err != nil {
		return b, fmt.Errorf("failed to decode %s: expected a map, got %T", BuildConfigKey, m)
	}
	mm := make(map[string]any, len(src))
	for k, v := range src {
		mm[k] = v
	}

	// Allow bools for list and render.
	for _, k := range []string{"list", "render"} {
		for kk, v := range mm {
			if !strings.EqualFold(kk, k) {
				continue
			}
			if bv, ok := v.(bool); ok {
				if bv {
					mm[kk] = Always
				} else {
					mm[kk] = Never
				}
			}
		}
	}

	if err := mapstructure.WeakDecode(mm, &b); err != nil {
		return b, fmt.Errorf("failed to decode %s: %w", BuildConfigKey, err)
	}

	b.List = strings.ToLower(b.List)
	b.Render = strings.ToLower(b.Render)

	switch b.List {
	case Always, Never, ListLocally:
	default:
		b.List = Always
	}

	switch b.Render {
	case Always, Never, Link:
	default:
		b.Render = Always
	}

	return b, nil
}

func (b BuildConfig) IsZero() bool {
	return !b.set
}

// Disable sets all options to their off value.
func (b *BuildConfig) Disable() {
	b.List = Never
	b.Render = Never
	b.set = true
}

// ShouldListInTaxonomies reports whether a page with this config can be a
// member of a taxonomy term.
func (b BuildConfig) ShouldListInTaxonomies() bool {
	return b.List == Always
}
