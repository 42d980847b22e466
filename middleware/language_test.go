package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header means bilingual", "", ""},
		{"plain english", "en", "en"},
		{"plain arabic", "ar", "ar"},
		{"regional variant maps to primary", "ar-SA", "ar"},
		{"quality ordering", "en;q=0.5, ar;q=0.9", "ar"},
		{"first listed wins at equal quality", "en, ar", "en"},
		{"unsupported languages skipped", "fr, de;q=0.9, ar;q=0.8", "ar"},
		{"only unsupported", "fr-FR, de", ""},
		{"wildcard is not a language", "*", ""},
		{"messy whitespace", " ar-EG ; q=0.7 , en ; q=0.3 ", "ar"},
		{"case insensitive", "AR-sa", "ar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.header))
		})
	}
}
