// Package textproc provides text normalization and tokenization for keyword matching.
package textproc

import "strings"

// stopwords is a closed list of common English function words excluded from
// tokenizer output. Membership is checked after lowercasing.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {}, "has": {},
	"have": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"of": {}, "on": {}, "or": {}, "our": {}, "that": {}, "the": {},
	"their": {}, "this": {}, "to": {}, "was": {}, "were": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}

// Tokenize normalizes raw text into an ordered sequence of lexical tokens.
// The text is lowercased, every rune outside [a-z0-9] and whitespace becomes a
// space (stripping punctuation while preserving word boundaries), and the
// result is split on whitespace with stopwords removed. Empty input yields nil.
func Tokenize(text string) []string {
	normalized := normalize(text)

	var tokens []string
	for _, word := range strings.Fields(normalized) {
		if _, stop := stopwords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// IsStopword reports whether the given word is in the fixed stopword set.
// The check is case-insensitive.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// normalize lowercases text and replaces every rune that is not a lowercase
// letter, digit, or whitespace with a space. Applying normalize to its own
// output is a no-op.
func normalize(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return b.String()
}
