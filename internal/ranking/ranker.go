// Package ranking computes the similarity score between a field's tokens and
// the search term's tokens.
//
// Every (field token, term token) pair is scored and the pair scores are
// summed, so a field with several tokens close to the term outranks a field
// with a single one. A pair score combines two parts:
//   - a prefix score rewarding a shared case-insensitive leading substring,
//     0.1 per character for up to 5 characters;
//   - a fuzzy score rewarding a small Levenshtein distance between the term
//     token and the start of the field token, skipped for one-character terms.
package ranking

import (
	"unicode"
	"unicode/utf8"

	"github.com/gcbaptista/go-simplified-search/internal/typoutil"
)

const (
	// MaxPrefixLength is the number of leading characters compared by PrefixScore.
	MaxPrefixLength = 5
	// PrefixCharScore is awarded per matching leading character.
	PrefixCharScore = 0.1
)

// fuzzyScores maps an edit distance to its score; distances not listed score 0.
var fuzzyScores = map[int]float64{
	0: 5,
	1: 3,
	2: 1,
}

// Score sums PairScore over the full cross product of fieldTokens and termTokens.
// It returns 0 when either sequence is empty.
func Score(fieldTokens, termTokens []string) float64 {
	score := 0.0
	for _, fieldToken := range fieldTokens {
		for _, termToken := range termTokens {
			score += PairScore(fieldToken, termToken)
		}
	}
	return score
}

// PairScore scores a single field token against a single term token.
func PairScore(fieldToken, termToken string) float64 {
	score := PrefixScore(fieldToken, termToken)
	if utf8.RuneCountInString(termToken) > 1 {
		score += FuzzyScore(fieldToken, termToken)
	}
	return score
}

// PrefixScore returns 0.1 for every leading character the two tokens share,
// compared case-insensitively, up to MaxPrefixLength characters.
// Counting stops at the first mismatch. The result is in [0, 0.5].
func PrefixScore(fieldToken, termToken string) float64 {
	fieldRunes := []rune(fieldToken)
	termRunes := []rune(termToken)

	n := min(len(fieldRunes), len(termRunes), MaxPrefixLength)

	score := 0.0
	for i := 0; i < n; i++ {
		if unicode.ToUpper(fieldRunes[i]) != unicode.ToUpper(termRunes[i]) {
			break
		}
		score += PrefixCharScore
	}
	return score
}

// FuzzyScore compares the term token with the start of the field token.
// The field token is cut to one character more than the term, so trailing
// content in a long field is not penalized and a term missing one character
// still matches. Distance 0 scores 5, 1 scores 3, 2 scores 1, anything else 0.
func FuzzyScore(fieldToken, termToken string) float64 {
	maxLength := utf8.RuneCountInString(termToken) + 1
	fieldToken = typoutil.TruncateRunes(fieldToken, maxLength)

	distance := typoutil.CalculateLevenshteinDistance(fieldToken, termToken)
	return fuzzyScores[distance]
}
