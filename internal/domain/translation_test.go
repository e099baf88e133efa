package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationContent_LanguageKeys(t *testing.T) {
	content := TranslationContent{
		"title": {
			"en": "this is title",
			"zh": "This is title",
		},
		"body": {
			"en": "body",
			"fr": "corps",
		},
	}

	keys := content.LanguageKeys()
	assert.Equal(t, []string{"en", "fr", "zh"}, keys)
}

func TestTranslationContent_LanguageKeys_Empty(t *testing.T) {
	assert.Empty(t, TranslationContent{}.LanguageKeys())
	assert.Empty(t, TranslationContent{"title": {}}.LanguageKeys())
}

func TestTranslationContent_ScanValueRoundtrip(t *testing.T) {
	content := TranslationContent{
		"title": {"en": "Hi", "fr": "Salut"},
	}

	raw, err := content.Value()
	require.NoError(t, err)

	var decoded TranslationContent
	require.NoError(t, decoded.Scan(raw))
	assert.Equal(t, content, decoded)
}

func TestTranslationContent_ScanRejectsUnknownType(t *testing.T) {
	var content TranslationContent
	assert.Error(t, content.Scan(42))
}

func TestInvalidLanguageKeysError_Message(t *testing.T) {
	err := &InvalidLanguageKeysError{Keys: []string{"fr", "xx"}}
	assert.Equal(t,
		"The following language keys do not exist in the language tags table: fr, xx",
		err.Error(),
	)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize},
		{"negative page", -3, 10, 1, 10},
		{"size over max", 1, 500, 1, MaxPageSize},
		{"in range", 3, 25, 3, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := ClampPage(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, size)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
}
