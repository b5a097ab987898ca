package spell

import "strings"

// punctuation is the ASCII punctuation set used for token splitting and
// rejoining decisions.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func isPunct(r rune) bool { return strings.ContainsRune(punctuation, r) }

// Tokenize splits text into whitespace-delimited tokens. A token ending in a
// punctuation character is split once: the character becomes its own token so
// the rewriter can keep it in place around substitutions. One-character
// punctuation tokens pass through unchanged.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) > 1 && isPunct(rune(tok[len(tok)-1])) {
			tokens = append(tokens, tok[:len(tok)-1], tok[len(tok)-1:])
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Normalize reduces a raw token to its dictionary form: ASCII letters only,
// lowercased. Every other character is dropped. Tokens without letters
// normalize to the empty string and are never looked up or flagged.
// Normalize is idempotent.
func Normalize(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteByte(byte(r))
		case r >= 'A' && r <= 'Z':
			b.WriteByte(byte(r) + 'a' - 'A')
		}
	}
	return b.String()
}

// MatchCase shapes word to follow the casing of source: title case when source
// is title-cased, upper case when source is all upper, unchanged otherwise.
// Only the letters of source decide, so punctuation around a token cannot
// promote its replacement. A source without letters leaves word unchanged.
func MatchCase(source, word string) string {
	src := letters(source)
	switch {
	case isTitle(src):
		return title(word)
	case src != "" && isUpper(src):
		return strings.ToUpper(word)
	}
	return word
}

// letters keeps only the ASCII letters of s, preserving their case.
func letters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

func isUpper(s string) bool { return strings.ToUpper(s) == s }

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
