package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBilingualResolve(t *testing.T) {
	full := Bilingual{EN: "Milk", AR: "حليب"}
	enOnly := Bilingual{EN: "Milk"}
	arOnly := Bilingual{AR: "حليب"}

	assert.Equal(t, "Milk", full.Resolve("en"))
	assert.Equal(t, "حليب", full.Resolve("ar"))

	// Missing variants fall back to the populated one.
	assert.Equal(t, "Milk", enOnly.Resolve("ar"))
	assert.Equal(t, "حليب", arOnly.Resolve("en"))

	// Unknown languages behave like English.
	assert.Equal(t, "Milk", full.Resolve("fr"))
}

func TestBilingualIsEmpty(t *testing.T) {
	assert.True(t, Bilingual{}.IsEmpty())
	assert.False(t, Bilingual{EN: "x"}.IsEmpty())
	assert.False(t, Bilingual{AR: "س"}.IsEmpty())
}
