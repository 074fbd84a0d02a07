// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	valid    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Make transliterates s to ASCII, lowercases it and collapses every run of
// non-alphanumeric characters into a single hyphen, trimming hyphens at
// both ends. Make(Make(s)) == Make(s).
func Make(s string) string {
	ascii := strings.ToLower(unidecode.Unidecode(s))
	return strings.Trim(nonAlnum.ReplaceAllString(ascii, "-"), "-")
}

// IsValid reports whether s is already in slug form.
func IsValid(s string) bool {
	return valid.MatchString(s)
}

// Title turns a slug back into a display title: "about-us" -> "About Us".
func Title(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
