// Package fieldbuilder derives a default searchable text for values of any type.
//
// Types that know how to describe themselves implement Searchable. For other
// types the text is assembled from the value itself: strings are used as is,
// fmt.Stringer values through String, primitives through fmt.Sprint, and maps
// and structs by writing each readable value on its own line.
package fieldbuilder

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/gcbaptista/go-simplified-search/internal/search"
)

// Searchable is implemented by types that provide their own searchable text.
type Searchable interface {
	SearchableText() string
}

// For returns the default field selector for T.
func For[T any]() search.FieldSelector[T] {
	return func(item T) string {
		return Text(item)
	}
}

// Text returns the searchable text of value. Nil values yield "".
func Text(value any) string {
	return reflectText(reflect.ValueOf(value), 0)
}

// maxDepth bounds recursion into nested maps, slices and structs.
const maxDepth = 4

func directText(value any) (string, bool) {
	switch v := value.(type) {
	case Searchable:
		return v.SearchableText(), true
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case error:
		return v.Error(), true
	}
	return "", false
}

func reflectText(v reflect.Value, depth int) string {
	if !v.IsValid() || depth > maxDepth {
		return ""
	}

	if v.CanInterface() {
		// Pointers and interfaces are handled below so a nil value never reaches a method call.
		if k := v.Kind(); k != reflect.Pointer && k != reflect.Interface {
			if text, ok := directText(v.Interface()); ok {
				return text
			}
		}
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return ""
		}
		// The dynamic value may itself be a nil pointer.
		return reflectText(v.Elem(), depth)

	case reflect.Pointer:
		if v.IsNil() {
			return ""
		}
		if v.CanInterface() {
			if text, ok := directText(v.Interface()); ok {
				return text
			}
		}
		return reflectText(v.Elem(), depth)

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v.Interface())

	case reflect.String:
		return v.String()

	case reflect.Slice, reflect.Array:
		lines := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			lines = appendLine(lines, reflectText(v.Index(i), depth+1))
		}
		return strings.Join(lines, "\n")

	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		lines := make([]string, 0, len(keys))
		for _, key := range keys {
			lines = appendLine(lines, reflectText(v.MapIndex(key), depth+1))
		}
		return strings.Join(lines, "\n")

	case reflect.Struct:
		t := v.Type()
		lines := make([]string, 0, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			lines = appendLine(lines, reflectText(v.Field(i), depth+1))
		}
		return strings.Join(lines, "\n")
	}

	return ""
}

func appendLine(lines []string, text string) []string {
	if text == "" {
		return lines
	}
	return append(lines, text)
}
