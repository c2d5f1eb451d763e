package model

import (
	"strings"

	"github.com/gcbaptista/go-simplified-search/internal/fieldbuilder"
)

// Document is a flexible map representing a JSON document.
// The documentID is optional; when present it lets clients fetch the document back.
// Example: doc["title"], doc["year"]
type Document map[string]interface{}

// GetDocumentID returns the documentID if it's stored in the document map under "documentID" key.
func (d Document) GetDocumentID() (string, bool) {
	if id, ok := d["documentID"]; ok {
		if str, sok := id.(string); sok {
			if str != "" {
				return str, true
			}
		}
	}
	return "", false
}

// SearchableText returns the text of the given fields, one per line, in the order given.
// Missing fields are skipped. With no fields, every value except the documentID
// is used, ordered by field name.
func (d Document) SearchableText(fields ...string) string {
	if len(fields) == 0 {
		values := make(map[string]interface{}, len(d))
		for k, v := range d {
			if k != "documentID" {
				values[k] = v
			}
		}
		return fieldbuilder.Text(values)
	}

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		if text := fieldbuilder.Text(d[field]); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// FieldSelector returns a selector extracting the given fields of a document.
func FieldSelector(fields []string) func(Document) string {
	return func(d Document) string {
		return d.SearchableText(fields...)
	}
}
