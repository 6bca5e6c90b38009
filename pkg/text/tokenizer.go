package text

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into parts small enough for a speech endpoint
// while keeping clauses together where possible.
type Tokenizer struct {
	MaxSize int

	Punctuation string
}

func NewTokenizer() Tokenizer {
	return Tokenizer{
		MaxSize: 100,

		Punctuation: "?!？！.,¡()[]¿…‥،;:—。，、：",
	}
}

func (t *Tokenizer) Tokenize(text string) []string {
	text = Normalize(text)

	if text == "" {
		return nil
	}

	var parts []string

	for _, clause := range t.splitClauses(text) {
		parts = append(parts, t.minimize(clause)...)
	}

	return t.merge(parts)
}

// splitClauses cuts after every punctuation rune. Periods and commas only
// count when followed by whitespace so numbers like 3.14 or 1,000 stay intact.
func (t *Tokenizer) splitClauses(text string) []string {
	var result []string

	runes := []rune(text)
	start := 0

	for i, r := range runes {
		if !strings.ContainsRune(t.Punctuation, r) {
			continue
		}

		if (r == '.' || r == ',') && i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}

		result = append(result, string(runes[start:i+1]))
		start = i + 1
	}

	if start < len(runes) {
		result = append(result, string(runes[start:]))
	}

	return result
}

// minimize breaks a clause longer than MaxSize at the last whitespace that
// fits, falling back to a hard cut at MaxSize runes.
func (t *Tokenizer) minimize(clause string) []string {
	var result []string

	clause = strings.TrimSpace(clause)

	for len([]rune(clause)) > t.MaxSize {
		runes := []rune(clause)

		cut := t.MaxSize

		for i := t.MaxSize; i > 0; i-- {
			if unicode.IsSpace(runes[i]) {
				cut = i
				break
			}
		}

		if head := strings.TrimSpace(string(runes[:cut])); head != "" {
			result = append(result, head)
		}

		clause = strings.TrimSpace(string(runes[cut:]))
	}

	if clause != "" {
		result = append(result, clause)
	}

	return result
}

// merge joins neighbouring parts as long as the result still fits, which
// keeps the number of upstream requests low.
func (t *Tokenizer) merge(parts []string) []string {
	var result []string
	var current string

	for _, p := range parts {
		if !isSpeakable(p) {
			continue
		}

		if current == "" {
			current = p
			continue
		}

		if len([]rune(current))+1+len([]rune(p)) <= t.MaxSize {
			current += " " + p
			continue
		}

		result = append(result, current)
		current = p
	}

	if current != "" {
		result = append(result, current)
	}

	return result
}

func isSpeakable(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSpace(r) {
			return true
		}
	}

	return false
}
