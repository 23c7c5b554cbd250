package helpers

import (
	"strings"

	"github.com/jdkato/prose/transform"
	"github.com/sunwei/hugo-taxonomy/common/text"
)

// GetTitleFunc returns a func that can be used to transform a string to
// title case.
//
// The supported styles are
//
// - "" or "first" (upper case the first letter only)
// - "Go" (strings.Title)
// - "AP" (see https://www.apstylebook.com/)
// - "Chicago" (see http://www.chicagomanualofstyle.org/home.html)
//
// If an unknown style is provided, the first letter is upper cased.
func GetTitleFunc(style string) func(s string) string {
	switch strings.ToLower(style) {
	case "go":
		return strings.Title
	case "ap":
		tc := transform.NewTitleConverter(transform.APStyle)
		return tc.Title
	case "chicago":
		tc := transform.NewTitleConverter(transform.ChicagoStyle)
		return tc.Title
	default:
		return text.FirstUpper
	}
}
