package pipeline

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple lowercase", "hello world", []string{"hello", "world"}},
		{"with punctuation", "hello, world!", []string{"hello", "world"}},
		{"with numbers", "item123 test", []string{"item123", "test"}},
		{"leading/trailing spaces", "  hello world  ", []string{"hello", "world"}},
		{"multiple spaces between words", "hello   world", []string{"hello", "world"}},
		{"case is preserved", "Hello World", []string{"Hello", "World"}},
		{"string with hyphen", "state-of-the-art", []string{"state", "of", "the", "art"}},
		{"string with underscore", "my_variable_name", []string{"my", "variable", "name"}},
		{"mixed with numbers and symbols", "API_v1.0-beta!", []string{"API", "v1", "0", "beta"}},
		{"only symbols", "!@#$%^", []string{}},
		{"only numbers", "12345 67890", []string{"12345", "67890"}},
		{"newlines and tabs", "first\nsecond\tthird", []string{"first", "second", "third"}},
		{"accented letters stay in word", "café crème", []string{"café", "crème"}},
		{"combining mark stays in word", "cafe\u0301 au lait", []string{"cafe\u0301", "au", "lait"}},
		{"non latin script", "привет мир", []string{"привет", "мир"}},
		{"special chars in middle", "word1!@#word2", []string{"word1", "word2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeFilter_ExpandsBatch(t *testing.T) {
	got := TokenizeFilter{}.Transform([]string{"one two", "", "three"})
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeFilter.Transform = %v, want %v", got, want)
	}
}
