package tpl

import "strings"

// LayoutHandler tells whether a page of a given kind can be rendered.
// The rendering itself happens outside this module.
type LayoutHandler interface {
	HasLayout(kind string) bool
}

// KindLayouts is a LayoutHandler backed by a set of page kinds.
type KindLayouts map[string]bool

// NewKindLayouts creates a KindLayouts for the given page kinds.
func NewKindLayouts(kinds ...string) KindLayouts {
	l := make(KindLayouts)
	for _, kind := range kinds {
		l[strings.ToLower(kind)] = true
	}
	return l
}

// HasLayout reports whether there is a layout for kind.
func (l KindLayouts) HasLayout(kind string) bool {
	return l[strings.ToLower(kind)]
}

// AllLayouts is a LayoutHandler with a layout for every kind.
type AllLayouts struct{}

func (AllLayouts) HasLayout(kind string) bool {
	return true
}
