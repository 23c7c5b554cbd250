package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ordinal int

func (o ordinal) Ordinal() int { return int(o) }

func TestCompareOrdinals(t *testing.T) {
	assert.Equal(t, -1, CompareOrdinals(ordinal(1), ordinal(2)))
	assert.Equal(t, 0, CompareOrdinals(ordinal(2), ordinal(2)))
	assert.Equal(t, 1, CompareOrdinals(ordinal(3), ordinal(2)))
}
