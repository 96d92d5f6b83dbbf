package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp/fr"
)

// write emits parts to w in order, stopping at the first error. The
// renderers are sequences of these; caller-supplied values must be
// escaped before they get here.
func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

// text wraps s as an escaped text component, for passing labels as link
// children.
func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// writeCloseButton renders a dismiss control labelled with label and
// carrying attrs: the host's wiring for controlled dismissal, or the
// hx- attributes of a wired action for server dismissal.
func writeCloseButton(ctx context.Context, w io.Writer, label string, attrs templ.Attributes) error {
	if err := write(w, `<button class="`, fr.Cx(fr.BtnClose, fr.Btn), `" title="`, templ.EscapeString(label), `"`); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
		return err
	}
	return write(w, `>`, templ.EscapeString(label), `</button>`)
}

// writeLabel renders a form field label, with the hint text nested
// inside it the way the stylesheet expects.
func writeLabel(w io.Writer, forID, label, hint string) error {
	if err := write(w, `<label class="`, fr.Cx(fr.Label), `" for="`, templ.EscapeString(forID), `">`, templ.EscapeString(label)); err != nil {
		return err
	}
	if hint != "" {
		if err := write(w, `<span class="`, fr.Cx(fr.HintText), `">`, templ.EscapeString(hint), `</span>`); err != nil {
			return err
		}
	}
	return write(w, `</label>`)
}
