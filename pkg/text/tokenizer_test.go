package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeShort(t *testing.T) {
	tokenizer := NewTokenizer()

	require.Equal(t, []string{"hello"}, tokenizer.Tokenize("hello"))
	require.Equal(t, []string{"Hello, world. This is a test."}, tokenizer.Tokenize("Hello, world. This is a test."))
}

func TestTokenizeEmpty(t *testing.T) {
	tokenizer := NewTokenizer()

	require.Empty(t, tokenizer.Tokenize(""))
	require.Empty(t, tokenizer.Tokenize("   \n\t "))
	require.Empty(t, tokenizer.Tokenize("... !?"))
}

func TestTokenizeKeepsNumbers(t *testing.T) {
	tokenizer := NewTokenizer()
	tokenizer.MaxSize = 12

	parts := tokenizer.Tokenize("Pi is 3.14, roughly.")

	require.Equal(t, []string{"Pi is 3.14,", "roughly."}, parts)
}

func TestTokenizeLongText(t *testing.T) {
	tokenizer := NewTokenizer()

	input := strings.Repeat("the quick brown fox jumps over the lazy dog ", 10)
	parts := tokenizer.Tokenize(input)

	require.Greater(t, len(parts), 1)

	for i, p := range parts {
		require.LessOrEqual(t, len([]rune(p)), tokenizer.MaxSize, "part %d too long: %q", i, p)
	}

	require.Equal(t, Normalize(input), strings.Join(parts, " "))
}

func TestTokenizeLongWord(t *testing.T) {
	tokenizer := NewTokenizer()

	input := strings.Repeat("ä", 150)
	parts := tokenizer.Tokenize(input)

	require.Len(t, parts, 2)
	require.Len(t, []rune(parts[0]), 100)
	require.Len(t, []rune(parts[1]), 50)
}

func TestTokenizeClauses(t *testing.T) {
	tokenizer := NewTokenizer()
	tokenizer.MaxSize = 20

	parts := tokenizer.Tokenize("First clause here; second clause there. Third!")

	require.Equal(t, []string{"First clause here;", "second clause there.", "Third!"}, parts)
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "speech synthesis works", Normalize("speech syn-\nthesis\r\n   works  "))
	require.Equal(t, "a b", Normalize("\ta\n\nb\n"))
}
