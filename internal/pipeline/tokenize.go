package pipeline

import "regexp"

// wordSeparatorRegex matches runs of characters that are neither letters, marks nor digits.
// Marks are kept so that a combining accent does not split a word when the
// tokenizer runs on unfolded text.
var wordSeparatorRegex = regexp.MustCompile(`[^\p{L}\p{M}\p{N}]+`)

// TokenizeFilter splits every element into word tokens.
// Whitespace, punctuation and symbols separate tokens; empty pieces are dropped,
// so one input string yields zero or more tokens.
type TokenizeFilter struct{}

// Transform tokenizes every element and concatenates the tokens in input order.
func (TokenizeFilter) Transform(batch []string) []string {
	tokens := make([]string, 0, len(batch))
	for _, s := range batch {
		tokens = append(tokens, Tokenize(s)...)
	}
	return tokens
}

// Tokenize splits a single string into word tokens.
func Tokenize(text string) []string {
	tokens := make([]string, 0) // Initialize as empty slice, not nil
	if text == "" {
		return tokens
	}
	for _, s := range wordSeparatorRegex.Split(text, -1) {
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}
