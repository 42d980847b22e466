package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSKU(t *testing.T) {
	t.Run("english name prefix", func(t *testing.T) {
		sku := GenerateSKU("Olive Oil", "")
		assert.Regexp(t, `^OLIV-\d{6}$`, sku)
	})

	t.Run("short name", func(t *testing.T) {
		sku := GenerateSKU("Tea", "")
		assert.Regexp(t, `^TEA-\d{6}$`, sku)
	})

	t.Run("arabic-only name falls back to default prefix", func(t *testing.T) {
		sku := GenerateSKU("", "زيت زيتون")
		assert.Regexp(t, `^PROD-\d{6}$`, sku)
	})

	t.Run("empty names", func(t *testing.T) {
		sku := GenerateSKU("", "")
		assert.Regexp(t, `^PROD-\d{6}$`, sku)
	})
}
