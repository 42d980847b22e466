package utils

import (
	"fmt"
	"strings"
	"time"
)

// GenerateSKU builds a SKU from the product's English name (Arabic as
// fallback): up to four alphanumeric characters uppercased, then a
// timestamp suffix.
func GenerateSKU(nameEn, nameAr string) string {
	source := nameEn
	if source == "" {
		source = nameAr
	}
	if source == "" {
		source = "PROD"
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(source) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == 4 {
				break
			}
		}
	}

	prefix := b.String()
	if prefix == "" {
		prefix = "PROD"
	}

	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	return prefix + "-" + ts[len(ts)-6:]
}
