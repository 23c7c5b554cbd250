package page

import "strings"

const (
	KindPage = "page"

	// The rest are node types; home page, sections etc.

	KindHome    = "home"
	KindSection = "section"

	// A taxonomy lists all the terms of one axis, e.g. /tags/.
	KindTaxonomy = "taxonomy"
	// A term lists the pages tagged with one term, e.g. /tags/go/.
	KindTerm = "term"
)

var kindMap = map[string]string{
	strings.ToLower(KindPage):     KindPage,
	strings.ToLower(KindHome):     KindHome,
	strings.ToLower(KindSection):  KindSection,
	strings.ToLower(KindTaxonomy): KindTaxonomy,
	strings.ToLower(KindTerm):     KindTerm,

	// Legacy names.
	"taxonomyterm": KindTaxonomy,
}

// GetKind gets the page kind given a string, empty if not found.
func GetKind(s string) string {
	return kindMap[strings.ToLower(s)]
}
