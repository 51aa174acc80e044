package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"store keyword", "Where is the nearest STORE for chicken feed?", categoryLocation},
		{"address keyword", "give me the address of a supplier", categoryLocation},
		{"weather keyword", "what is the weather today", categoryExternal},
		{"stock price keyword", "tell me the stock price of infosys", categoryExternal},
		{"no keyword", "tell me about honey bee farming", categoryGeneral},
		{"location beats external", "weather at the shop location", categoryLocation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, categorize(tc.query))
		})
	}
}

func TestFallbackSelectsLanguageTable(t *testing.T) {
	for _, lang := range []string{LangEnglish, LangHindi, LangTamil, LangTelugu, LangKannada, LangMalayalam} {
		for _, query := range []string{"where to buy seeds", "today's news", "random question"} {
			text := Fallback(query, lang)
			assert.NotEmpty(t, text, "language %s query %q", lang, query)
			assert.Equal(t, fallbackResponses[lang][categorize(query)], text)
		}
	}
}

func TestFallbackUnknownLanguageUsesEnglish(t *testing.T) {
	text := Fallback("random question", "german")
	assert.Equal(t, fallbackResponses[LangEnglish][categoryGeneral], text)
}

func TestFallbackNormalizesLanguage(t *testing.T) {
	assert.Equal(t, Fallback("hello", "hindi"), Fallback("hello", "  Hindi "))
}
