// Package fr exposes the design system's stylesheet classes as a closed,
// generated vocabulary of Go constants, plus the Cx composer every
// component uses instead of embedding class strings in markup.
//
// The vocabulary (classnames.go) and the severity sets (severity.go) are
// generated from the stylesheet by 'frcmp generate'. Component code refers
// to classes through the generated constants:
//
//	class := fr.Cx(fr.Notice, fr.If(props.Small, fr.NoticeSm))
//
// A class name outside the vocabulary is a programming error, not data:
// Cx panics on unknown tokens so typos surface in development instead of
// silently producing unstyled markup.
//
// Because the vocabulary is compiled in while the stylesheet is served by
// the host, the two can drift. Hosts verify at startup:
//
//	fr.MustVerifyStylesheet(cssBytes)
//
// which fails fast when the stylesheet no longer defines every class the
// binary was generated against.
package fr

import (
	"fmt"
	"strings"

	"github.com/pthm/frcmp/internal/cssscan"
)

// ClassName is one class from the design system stylesheet. Values are
// the generated constants in classnames.go; the zero value is skipped by
// Cx.
type ClassName string

// String implements fmt.Stringer so class names flow through open
// composers like frcmp.Classes.
func (c ClassName) String() string {
	return string(c)
}

// classNames indexes the generated vocabulary for membership checks.
var classNames = func() map[ClassName]struct{} {
	m := make(map[ClassName]struct{}, len(allClassNames))
	for _, c := range allClassNames {
		m[c] = struct{}{}
	}
	return m
}()

// Cond pairs a class with a condition. Build with If.
type Cond struct {
	Class ClassName
	When  bool
}

// If returns a conditional entry for Cx: the class is included only when
// cond is true.
//
//	fr.Cx(fr.Btn, fr.If(small, fr.BtnSm))
func If(cond bool, class ClassName) Cond {
	return Cond{Class: class, When: cond}
}

// Cx joins class name tokens into a single class attribute value.
//
// Each argument is a ClassName, a Cond (via If), or a []ClassName.
// Entries whose condition is false and zero-value class names contribute
// nothing. Order is preserved and duplicates are kept; callers own
// de-duplication if they want it.
//
// Cx panics when a token is not part of the generated vocabulary or when
// an argument has an unsupported type. Both are programming errors.
func Cx(args ...any) string {
	var sb strings.Builder
	for _, arg := range args {
		switch v := arg.(type) {
		case ClassName:
			appendClass(&sb, v)
		case Cond:
			if v.When {
				appendClass(&sb, v.Class)
			}
		case []ClassName:
			for _, c := range v {
				appendClass(&sb, c)
			}
		case nil:
			// skip
		default:
			panic(fmt.Sprintf("fr: Cx argument must be ClassName, Cond or []ClassName, got %T", arg))
		}
	}
	return sb.String()
}

func appendClass(sb *strings.Builder, c ClassName) {
	if c == "" {
		return
	}
	if !Valid(c) {
		panic(fmt.Sprintf("fr: unknown class name %q", string(c)))
	}
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString(string(c))
}

// Valid reports whether c is part of the generated vocabulary.
func Valid(c ClassName) bool {
	_, ok := classNames[c]
	return ok
}

// All returns the full vocabulary, sorted. The slice is a copy.
func All() []ClassName {
	return append([]ClassName(nil), allClassNames...)
}

// StylesheetError reports vocabulary classes missing from a stylesheet.
type StylesheetError struct {
	Missing []ClassName
}

func (e *StylesheetError) Error() string {
	names := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		names[i] = string(c)
	}
	return fmt.Sprintf("fr: stylesheet is missing %d vocabulary class(es): %s",
		len(e.Missing), strings.Join(names, ", "))
}

// VerifyStylesheet checks the generated vocabulary against the class
// names actually defined by css. It returns a *StylesheetError listing
// every missing class, or nil when the stylesheet covers the vocabulary.
//
// Call this once at startup with the stylesheet the host serves; a
// version mismatch between the generated constants and the deployed CSS
// is a configuration error and should stop the process.
func VerifyStylesheet(css []byte) error {
	defined := cssscan.Set(css)

	var missing []ClassName
	for _, c := range All() {
		if _, ok := defined[string(c)]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &StylesheetError{Missing: missing}
	}
	return nil
}

// MustVerifyStylesheet is VerifyStylesheet that panics on mismatch.
func MustVerifyStylesheet(css []byte) {
	if err := VerifyStylesheet(css); err != nil {
		panic(err)
	}
}

// severitySuffixes derives the severity suffixes for a block prefix by
// collecting every "<prefix>--<suffix>" class in the vocabulary, minus
// the excluded sentinel suffixes (size and icon modifiers, which share
// the modifier syntax but are not severities).
//
// The generated sets in severity.go are produced by the same rule at
// generation time; TestSeveritySetsMatchVocabulary keeps them honest.
func severitySuffixes(prefix ClassName, exclude ...string) []string {
	skip := make(map[string]struct{}, len(exclude))
	for _, s := range exclude {
		skip[s] = struct{}{}
	}

	// allClassNames is sorted, so the result is too.
	marker := string(prefix) + "--"
	var out []string
	for _, c := range allClassNames {
		name := string(c)
		if !strings.HasPrefix(name, marker) {
			continue
		}
		suffix := name[len(marker):]
		if _, ok := skip[suffix]; ok {
			continue
		}
		out = append(out, suffix)
	}
	return out
}
