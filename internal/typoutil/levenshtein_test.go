package typoutil

import (
	"strings"
	"testing"
)

func TestCalculateLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 0},
		{"a empty", "", "hello", 5},
		{"b empty", "hello", "", 5},
		{"identical", "hello", "hello", 0},
		{"simple substitution", "kitten", "sitten", 1},
		{"simple insertion", "apple", "applye", 1},
		{"simple deletion", "banana", "banna", 1},
		{"multiple edits", "saturday", "sunday", 3},
		{"order matters reverse", "applye", "apple", 1},
		{"longer strings", "algorithm", "altruistic", 6},
		{"transposition counts twice", "ab", "ba", 2},
		{"unicode chars (same len)", "cliché", "cliche", 1}, // é -> e is 1 substitution
		{"unicode chars (diff len)", "résumé", "resume", 2}, // é -> e twice is 2 substitutions
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLevenshteinDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CalculateLevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"shorter than limit", "cat", 5, "cat"},
		{"exact limit", "cats", 4, "cats"},
		{"longer than limit", "category", 4, "cate"},
		{"zero limit", "cat", 0, ""},
		{"negative limit", "cat", -1, ""},
		{"multibyte runes", "éééé", 2, "éé"},
		{"multibyte within byte length", "éa", 2, "éa"},
		{"empty", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateRunes(tt.s, tt.n)
			if got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
		})
	}
}

func BenchmarkCalculateLevenshteinDistance(b *testing.B) {
	a := strings.Repeat("search", 3)
	c := strings.Repeat("serach", 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CalculateLevenshteinDistance(a, c)
	}
}
