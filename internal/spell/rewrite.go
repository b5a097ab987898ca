package spell

import "strings"

// Rewrite rebuilds text from tokens with replacements applied by token index.
// Tokens are joined with single spaces, except that no space precedes a token
// whose first character is punctuation, which keeps split-off trailing
// punctuation attached to the word before it. Original spacing and newlines
// are not reconstructed; that is an accepted limitation of the rejoin rule.
func Rewrite(tokens []string, replacements map[int]string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if r, ok := replacements[i]; ok {
			tok = r
		}
		if i > 0 && !startsWithPunct(tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// JoinTokens rejoins tokens without substitutions.
func JoinTokens(tokens []string) string { return Rewrite(tokens, nil) }

func startsWithPunct(tok string) bool {
	return tok != "" && isPunct(rune(tok[0]))
}
