package ranking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const scoreDelta = 1e-9

func TestPrefixScore(t *testing.T) {
	tests := []struct {
		name       string
		fieldToken string
		termToken  string
		want       float64
	}{
		{"identical", "hello", "hello", 0.5},
		{"term shorter than field", "category", "cat", 0.3},
		{"case insensitive", "Hello", "hELLo", 0.5},
		{"first character differs", "bat", "cat", 0},
		{"stops at first mismatch", "caterpillar", "catalog", 0.3},
		{"no credit after a gap", "abxde", "abcde", 0.2},
		{"capped at five characters", "abcdefgh", "abcdefgh", 0.5},
		{"empty field token", "", "cat", 0},
		{"empty term token", "cat", "", 0},
		{"non ascii case folding", "ÉCOLE", "école", 0.5},
		{"single character", "cat", "c", 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrefixScore(tt.fieldToken, tt.termToken)
			assert.InDelta(t, tt.want, got, scoreDelta)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 0.5)
		})
	}
}

func TestPrefixScore_FiveCharacterMatchIsExactlyHalf(t *testing.T) {
	assert.Equal(t, 0.5, PrefixScore("searching", "SEARCHED"))
}

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name       string
		fieldToken string
		termToken  string
		want       float64
	}{
		{"distance 0", "cat", "cat", 5},
		{"field one longer", "cats", "cat", 3},
		{"long field is truncated", "category", "cat", 3},
		{"trailing content is ignored", "catalogue", "cat", 3},
		{"substitution", "bat", "cat", 3},
		{"field missing a character", "ct", "cat", 3},
		{"transposition is distance 2", "cta", "cat", 1},
		{"distance 3", "dog", "cat", 0},
		{"longer term with two edits", "catalog", "catalogue", 1},
		{"field much shorter", "c", "cat", 1},
		{"empty field", "", "cat", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FuzzyScore(tt.fieldToken, tt.termToken))
		})
	}
}

func TestPairScore(t *testing.T) {
	tests := []struct {
		name       string
		fieldToken string
		termToken  string
		want       float64
	}{
		{"exact match", "cat", "cat", 5.3},
		{"plural", "cats", "cat", 3.3},
		{"typo in first character", "bat", "cat", 3},
		{"unrelated", "dog", "cat", 0},
		{"single character term skips fuzzy", "cat", "c", 0.1},
		{"single character term without prefix", "x", "c", 0},
		{"single character exact", "c", "c", 0.1},
		{"two character term uses fuzzy", "ca", "ca", 5.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PairScore(tt.fieldToken, tt.termToken), scoreDelta)
		})
	}
}

func TestScore(t *testing.T) {
	t.Run("empty sequences", func(t *testing.T) {
		assert.Equal(t, 0.0, Score(nil, []string{"cat"}))
		assert.Equal(t, 0.0, Score([]string{"cat"}, nil))
		assert.Equal(t, 0.0, Score([]string{}, []string{}))
	})

	t.Run("sums the cross product", func(t *testing.T) {
		got := Score([]string{"cat", "dog"}, []string{"cat", "dog"})
		assert.InDelta(t, 2*5.3, got, scoreDelta)
	})

	t.Run("unmatched term tokens add nothing", func(t *testing.T) {
		assert.InDelta(t, 5.3, Score([]string{"cat"}, []string{"cat", "xyzzy"}), scoreDelta)
	})

	t.Run("additive across field tokens", func(t *testing.T) {
		single := Score([]string{"cat"}, []string{"cat"})
		double := Score([]string{"cat", "cat"}, []string{"cat"})
		assert.InDelta(t, 2*single, double, scoreDelta)
	})

	t.Run("non matches score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Score([]string{"zebra", "quokka"}, []string{"cat"}))
	})
}

func BenchmarkScore(b *testing.B) {
	fieldTokens := strings.Fields(strings.Repeat("the quick brown fox jumps over the lazy dog ", 20))
	termTokens := []string{"quikc", "fox"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Score(fieldTokens, termTokens)
	}
}
