package helpers

import (
	"net/url"
	"strings"
)

// URLize is similar to MakePath, but with Unicode handling
// Example:
//
//	uri: Vim (text editor)
//	urlize: vim-text-editor
func (p *PathSpec) URLize(uri string) string {
	return p.URLEscape(collapseSlashes(p.MakePathSanitized(uri)))
}

// MakePathSanitized creates a Unicode-sanitized string, with the spaces replaced
func (p *PathSpec) MakePathSanitized(s string) string {
	if p.DisablePathToLower {
		return p.MakePath(s)
	}
	return strings.ToLower(p.MakePath(s))
}

// URLEscape escapes unicode letters.
// If uri cannot be parsed it is returned as is.
func (p *PathSpec) URLEscape(uri string) string {
	parsedURI, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return parsedURI.String()
}

// collapseSlashes reduces any run of slashes to one and trims slashes
// from both ends, e.g. "/tags//go/" => "tags/go".
func collapseSlashes(s string) string {
	if !strings.Contains(s, "/") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	var wasSlash bool
	for _, r := range s {
		if r == '/' {
			if wasSlash {
				continue
			}
			wasSlash = true
		} else {
			wasSlash = false
		}
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), "/")
}
