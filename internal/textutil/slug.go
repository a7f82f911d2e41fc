package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	nonWordPattern = regexp.MustCompile(`[^\w\s-]`)
	dashRunPattern = regexp.MustCompile(`[-\s]+`)
)

// Slug derives a filesystem-safe ASCII short name from a display name.
// The name is NFKD-decomposed so accented characters reduce to their base
// letters, non-ASCII runes are dropped, remaining punctuation is stripped,
// and runs of whitespace or dashes collapse to a single dash. Names made
// entirely of non-ASCII characters slug to the empty string; callers fall
// back to SanitizeToken in that case.
func Slug(value string) string {
	decomposed := norm.NFKD.String(value)

	var ascii strings.Builder
	ascii.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			ascii.WriteRune(r)
		}
	}

	out := nonWordPattern.ReplaceAllString(ascii.String(), "")
	out = strings.TrimSpace(out)
	return dashRunPattern.ReplaceAllString(out, "-")
}
