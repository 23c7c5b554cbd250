package langs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sunwei/hugo-taxonomy/config"
	"golang.org/x/text/language"
)

func TestNewDefaultLanguage(t *testing.T) {
	l := NewDefaultLanguage(config.New())
	assert.Equal(t, "en", l.String())
	assert.Equal(t, language.English, l.Tag())

	cfg := config.New()
	cfg.Set("defaultContentLanguage", "NB")
	l = NewDefaultLanguage(cfg)
	assert.Equal(t, "nb", l.Lang)
	assert.Equal(t, "nb", l.Tag().String())
}

func TestNewLanguageInvalid(t *testing.T) {
	l := NewLanguage("not a language", config.New())
	assert.Equal(t, language.English, l.Tag())
}

func TestCollator(t *testing.T) {
	c := NewLanguage("en", config.New()).Collator()
	c.Lock()
	defer c.Unlock()

	assert.Equal(t, -1, c.CompareStrings("apple", "Banana"))
	assert.Equal(t, -1, c.CompareStrings("écrire", "zebra"))
	assert.Equal(t, 0, c.CompareStrings("go", "go"))
	assert.Equal(t, 1, c.CompareStrings("rust", "go"))
}
