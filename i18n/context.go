package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type langKey struct{}

// WithLanguage returns a context carrying the active language. Resolve
// the language once per request (ResolveLanguage or Middleware) and
// components read it back through Tr.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, langKey{}, tag)
}

// Language returns the language carried by ctx, if any.
func Language(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(langKey{}).(language.Tag)
	return tag, ok
}
