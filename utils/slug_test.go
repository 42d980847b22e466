package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Electronics", "electronics"},
		{"spaces", "Home  Appliances", "home-appliances"},
		{"special characters dropped", "Kids' Toys & Games!", "kids-toys-games"},
		{"leading and trailing trimmed", "  -Fresh Produce-  ", "fresh-produce"},
		{"numbers kept", "Top 10 Deals", "top-10-deals"},
		{"arabic only falls back", "إلكترونيات", "category"},
		{"empty falls back", "", "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestDedupeSlug(t *testing.T) {
	deduped := DedupeSlug("electronics")
	assert.Regexp(t, `^electronics-\d{4}$`, deduped)
}
