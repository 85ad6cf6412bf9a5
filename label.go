package datatable

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LabelFunc derives a column label from a heading key.
type LabelFunc func(key string) string

// DeriveLabel returns the header label for the heading key.
//
// The key is converted with SnakeCaseToTitle.
// If hidden contains the key then an empty label is returned,
// the column itself is still rendered so that header
// and body cells stay aligned.
// An empty key results in an empty label.
func DeriveLabel(key string, hidden HeadingSet) string {
	if key == "" || hidden.Has(key) {
		return ""
	}
	return SnakeCaseToTitle(key)
}

// SnakeCaseToTitle converts a snake_case key into a label
// of space separated words with the first character of
// every underscore delimited segment in upper case.
// Empty segments are skipped.
//
//	SnakeCaseToTitle("registry_project_id") == "Registry Project Id"
func SnakeCaseToTitle(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, segment := range strings.Split(key, "_") {
		if segment == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		first, size := utf8.DecodeRuneInString(segment)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(segment[size:])
	}
	return b.String()
}

// TitleLabel returns SnakeCaseToTitle for keys containing
// an underscore and the capitalized SpacePascalCase of
// all other keys so camelCase keys of raw payloads
// also get readable labels.
func TitleLabel(key string) string {
	if strings.ContainsRune(key, '_') {
		return SnakeCaseToTitle(key)
	}
	return SnakeCaseToTitle(SpacePascalCase(key))
}

// SpacePascalCase inserts spaces before upper case
// characters within PascalCase like names.
// It also replaces underscore '_' characters with spaces.
func SpacePascalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	lastWasUpper := true
	lastWasSpace := true
	for _, r := range name {
		if r == '_' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasUpper = false
			lastWasSpace = true
			continue
		}
		isUpper := unicode.IsUpper(r)
		if isUpper && !lastWasUpper && !lastWasSpace {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		lastWasUpper = isUpper
		lastWasSpace = unicode.IsSpace(r)
	}
	return strings.TrimSpace(b.String())
}
