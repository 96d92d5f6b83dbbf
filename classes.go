package frcmp

import (
	"fmt"
	"strings"
)

// Classes joins class name fragments with single spaces.
//
// Arguments may be strings, []string, fmt.Stringer values, or nested
// []any lists; nesting is flattened in order. Empty strings and nils
// contribute nothing, as does any value of an unsupported type.
// Duplicates are legal and preserved - no normalization is applied.
//
//	frcmp.Classes("fr-notice", props.Class, []string{"fr-hidden"})
//
// Vocabulary-checked composition lives in fr.Cx; Classes is the open
// counterpart for caller-supplied fragments.
func Classes(parts ...any) string {
	var b strings.Builder
	appendClasses(&b, parts)
	return b.String()
}

// ClassIf returns class when cond is true, otherwise the empty string.
// Composes with Classes, which drops empty fragments:
//
//	frcmp.Classes("fr-input", frcmp.ClassIf(invalid, "fr-input--error"))
func ClassIf(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

func appendClasses(b *strings.Builder, parts []any) {
	for _, part := range parts {
		switch v := part.(type) {
		case nil:
		case string:
			writeClass(b, v)
		case []string:
			for _, s := range v {
				writeClass(b, s)
			}
		case []any:
			appendClasses(b, v)
		case fmt.Stringer:
			writeClass(b, v.String())
		}
	}
}

func writeClass(b *strings.Builder, class string) {
	if class == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(class)
}
