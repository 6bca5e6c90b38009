package text

import (
	"regexp"
	"strings"
)

var hyphenation = regexp.MustCompile(`(\p{L})-\n\s*`)

// Normalize joins words hyphenated across line breaks and collapses all
// whitespace into single spaces.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	text = hyphenation.ReplaceAllString(text, "${1}")

	return strings.Join(strings.Fields(text), " ")
}
