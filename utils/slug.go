package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a business name into its public URL segment: lowercase ASCII
// with hyphens, accents folded away, capped at 50 chars. Uniqueness (the
// numeric suffix on collision) is the caller's job.
func Slugify(name string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		strings.ToLower(name),
	)
	if err != nil {
		folded = strings.ToLower(name)
	}

	slug := nonSlugChars.ReplaceAllString(folded, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 50 {
		slug = strings.Trim(slug[:50], "-")
	}
	return slug
}
