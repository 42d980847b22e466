package utils

import (
	"fmt"
	"strings"
	"time"
)

// Slugify derives a URL slug from a category name: lowercase, spaces to
// hyphens, everything outside [a-z0-9-] dropped, runs of hyphens collapsed.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune('-')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")

	if slug == "" {
		slug = "category"
	}
	return slug
}

// DedupeSlug appends a timestamp suffix for slugs that already exist.
func DedupeSlug(slug string) string {
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	return slug + "-" + ts[len(ts)-4:]
}
