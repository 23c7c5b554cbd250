package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"github.com/sunwei/hugo-taxonomy/common/maps"
)

const (
	// TaxonomiesKey is the root configuration key for taxonomies.
	TaxonomiesKey = "taxonomies"

	// SortOrderDesc lists the newest pages first.
	SortOrderDesc = "desc"
	// SortOrderAsc lists the oldest pages first.
	SortOrderAsc = "asc"

	// An axis configured with this value is disabled.
	disableAxisValue = "disable"
)

// Keys in the taxonomies section that configure the feature itself and
// never name an axis.
var taxonomiesReservedKeys = map[string]bool{
	"disabled":  true,
	"disable":   true,
	"sortorder": true,
	"workers":   true,
	"ignore":    true,
}

// Taxonomies holds the decoded taxonomies configuration.
//
//	[taxonomies]
//	tags = "tag"
//	categories = "category"
//	series = "disable"
//	sortOrder = "desc"
//	ignore = ["drafts/**"]
type Taxonomies struct {
	// Disables the taxonomy feature as a whole.
	Disabled bool

	// Member page order on term pages, "desc" (default) or "asc".
	SortOrder string

	// Number of workers used to collect terms. Zero or less means one
	// per logical CPU times the worker multiplier.
	Workers int

	// Glob patterns matched against page IDs. Matching pages are not
	// collected into any term.
	Ignore []string

	// Axes maps the plural axis name to its singular label,
	// e.g. tags => tag.
	Axes map[string]string `mapstructure:"-"`
}

// Enabled reports whether taxonomy pages should be built at all.
func (t Taxonomies) Enabled() bool {
	return !t.Disabled && len(t.Axes) > 0
}

// Plurals returns the declared axis names, sorted.
func (t Taxonomies) Plurals() []string {
	plurals := make([]string, 0, len(t.Axes))
	for plural := range t.Axes {
		plurals = append(plurals, plural)
	}
	sort.Strings(plurals)
	return plurals
}

// Singular returns the singular label for the given axis.
func (t Taxonomies) Singular(plural string) string {
	return t.Axes[plural]
}

// DecodeTaxonomies decodes the taxonomies section in cfg.
// A missing section decodes to a disabled configuration.
func DecodeTaxonomies(cfg Provider) (Taxonomies, error) {
	if cfg == nil || !cfg.IsSet(TaxonomiesKey) {
		return Taxonomies{Disabled: true}, nil
	}
	return DecodeTaxonomiesFrom(cfg.Get(TaxonomiesKey))
}

// DecodeTaxonomiesFrom decodes a taxonomies section, typically a maps.Params.
func DecodeTaxonomiesFrom(v any) (Taxonomies, error) {
	t := Taxonomies{
		SortOrder: SortOrderDesc,
		Axes:      make(map[string]string),
	}

	if v == nil {
		t.Disabled = true
		return t, nil
	}

	m, ok := maps.ToParamsAndPrepare(v)
	if !ok {
		return t, fmt.Errorf("failed to decode %s config: expected a map, got %T", TaxonomiesKey, v)
	}

	options := make(map[string]any)
	for k, vv := range m {
		if taxonomiesReservedKeys[k] {
			options[k] = vv
			continue
		}
		singular, enabled, err := decodeAxis(vv)
		if err != nil {
			return t, fmt.Errorf("failed to decode %s.%s: %w", TaxonomiesKey, k, err)
		}
		if enabled {
			if singular == "" {
				singular = k
			}
			t.Axes[k] = singular
		}
	}

	if disable, found := options["disable"]; found {
		options["disabled"] = disable
		delete(options, "disable")
	}

	if err := mapstructure.WeakDecode(options, &t); err != nil {
		return t, fmt.Errorf("failed to decode %s config: %w", TaxonomiesKey, err)
	}

	t.SortOrder = strings.ToLower(t.SortOrder)
	switch t.SortOrder {
	case SortOrderAsc, SortOrderDesc:
	case "":
		t.SortOrder = SortOrderDesc
	default:
		return t, fmt.Errorf("invalid %s.sortOrder %q, expected %q or %q", TaxonomiesKey, t.SortOrder, SortOrderAsc, SortOrderDesc)
	}

	return t, nil
}

// decodeAxis decodes one axis entry: a singular label, the value "disable"
// or a bool.
func decodeAxis(v any) (singular string, enabled bool, err error) {
	switch vv := v.(type) {
	case bool:
		return "", vv, nil
	case string:
		if strings.EqualFold(vv, disableAxisValue) {
			return "", false, nil
		}
		return vv, true, nil
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return "", false, fmt.Errorf("expected a singular label, got %T", v)
		}
		return s, true, nil
	}
}
