package frcmp

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LinkRenderer renders a navigation anchor for href with the given extra
// attributes. Children are passed through templ's child mechanism:
//
//	link := renderer("/articles/42", templ.Attributes{"class": "fr-link"})
//	link.Render(templ.WithChildren(ctx, label), w)
//
// The component kit renders every navigational link through one of
// these, so hosts with client-side routing can substitute their router's
// link primitive once at setup instead of per call site. Absence of an
// override falls back to DefaultLink.
type LinkRenderer func(href string, attrs templ.Attributes) templ.Component

// DefaultLink renders a plain anchor element.
//
// The href is sanitized with templ's URL policy: unsafe schemes render
// as the templ failed-sanitization marker rather than the raw value.
func DefaultLink(href string, attrs templ.Attributes) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		if _, err := io.WriteString(w, `<a href="`+templ.EscapeString(string(templ.URL(href)))+`"`); err != nil {
			return err
		}
		if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `>`); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</a>`)
		return err
	})
}
