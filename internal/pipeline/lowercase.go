package pipeline

import "strings"

// LowercaseFilter maps every character to its lowercase form.
// strings.ToLower uses Unicode case mappings and does not depend on a locale.
type LowercaseFilter struct{}

// Transform lowercases every element. The output has the same length as the input.
func (LowercaseFilter) Transform(batch []string) []string {
	result := make([]string, len(batch))
	for i, s := range batch {
		result[i] = strings.ToLower(s)
	}
	return result
}
