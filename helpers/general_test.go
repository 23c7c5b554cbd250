package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTitleFunc(t *testing.T) {
	title := "somewhere over the rainbow"

	assert.Equal(t, "Somewhere over the rainbow", GetTitleFunc("")(title))
	assert.Equal(t, "Somewhere over the rainbow", GetTitleFunc("first")(title))
	assert.Equal(t, "Somewhere Over The Rainbow", GetTitleFunc("go")(title))
	assert.Equal(t, "Somewhere over the Rainbow", GetTitleFunc("ap")(title))
	assert.Equal(t, "Somewhere Over the Rainbow", GetTitleFunc("Chicago")(title))
}
