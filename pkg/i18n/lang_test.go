package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formkit-go/formkit/pkg/i18n"
)

func TestMatchLanguage(t *testing.T) {
	supported := []string{"en", "de", "uk"}

	t.Run("exact match", func(t *testing.T) {
		assert.Equal(t, "de", i18n.MatchLanguage("de", supported, "en"))
	})

	t.Run("regional variant matches base language", func(t *testing.T) {
		assert.Equal(t, "de", i18n.MatchLanguage("de-AT", supported, "en"))
		assert.Equal(t, "en", i18n.MatchLanguage("en-US", supported, "uk"))
	})

	t.Run("quality values order preferences", func(t *testing.T) {
		assert.Equal(t, "de", i18n.MatchLanguage("fr;q=0.9, de;q=0.8, en;q=0.1", supported, "en"))
	})

	t.Run("no match falls back", func(t *testing.T) {
		assert.Equal(t, "en", i18n.MatchLanguage("ja", supported, "en"))
	})

	t.Run("weighted multi-tag header negotiates a regional variant", func(t *testing.T) {
		assert.Equal(t, "de", i18n.MatchLanguage("de-AT, en;q=0.5", []string{"de"}, "en"))
	})

	t.Run("malformed header falls back", func(t *testing.T) {
		assert.Equal(t, "en", i18n.MatchLanguage("!!!", supported, "en"))
		assert.Equal(t, "en", i18n.MatchLanguage(";;;", supported, "en"))
	})

	t.Run("empty inputs fall back", func(t *testing.T) {
		assert.Equal(t, "en", i18n.MatchLanguage("", supported, "en"))
		assert.Equal(t, "en", i18n.MatchLanguage("de", nil, "en"))
	})

	t.Run("unparsable supported tags are skipped", func(t *testing.T) {
		assert.Equal(t, "de", i18n.MatchLanguage("de", []string{"!!", "de"}, "en"))
	})
}
