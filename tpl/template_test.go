package tpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindLayouts(t *testing.T) {
	l := NewKindLayouts("page", "Term")
	assert.True(t, l.HasLayout("term"))
	assert.True(t, l.HasLayout("PAGE"))
	assert.False(t, l.HasLayout("taxonomy"))

	var all LayoutHandler = AllLayouts{}
	assert.True(t, all.HasLayout("taxonomy"))
}
