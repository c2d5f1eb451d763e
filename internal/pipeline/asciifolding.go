package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldingReplacer covers letters with no canonical decomposition into a base letter plus marks.
var foldingReplacer = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "TH",
	"ı", "i",
)

// ASCIIFoldingFilter maps accented and diacritic characters to their closest
// plain ASCII equivalent, e.g. "é" -> "e" and "ß" -> "ss".
// Characters without an ASCII equivalent are left as they are.
type ASCIIFoldingFilter struct{}

// Transform folds every element. The output has the same length as the input.
func (ASCIIFoldingFilter) Transform(batch []string) []string {
	result := make([]string, len(batch))
	for i, s := range batch {
		result[i] = Fold(s)
	}
	return result
}

// Fold removes diacritics from s.
func Fold(s string) string {
	if isASCII(s) {
		return s
	}
	// A fresh transformer per call; transform.Chain keeps internal state and is not safe for concurrent use.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return foldingReplacer.Replace(folded)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
