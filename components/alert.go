package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp"
	"github.com/pthm/frcmp/fr"
)

// AlertProps configures Kit.Alert.
type AlertProps struct {
	// ID overrides the generated root id.
	ID string
	// Severity selects the alert variant; the zero value renders as
	// info.
	Severity fr.AlertSeverity
	// Title heads the alert. Small alerts render only the description,
	// so Title is ignored when Small is set.
	Title string
	Desc  string
	// Small renders the compact variant.
	Small bool
	// Dismiss selects the close behavior; nil means none.
	Dismiss Dismiss
	// Class appends caller classes to the root element.
	Class string
}

// Alert renders a contextual alert box. The returned component
// implements frcmp.HandleExposer with the root element's id.
func (k *Kit) Alert(props AlertProps) templ.Component {
	id := frcmp.NewAutoID(props.ID, "fr-alert")
	comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if c, ok := props.Dismiss.(DismissControlled); ok && c.Closed {
			return nil
		}

		severity := props.Severity
		if severity == "" {
			severity = fr.AlertSeverityInfo
		}

		class := frcmp.Classes(
			fr.Cx(fr.Alert, severity.ClassName(), fr.If(props.Small, fr.AlertSm)),
			props.Class,
		)
		if err := write(w, `<div class="`, class, `" id="`, templ.EscapeString(id.String()), `">`); err != nil {
			return err
		}

		if !props.Small && props.Title != "" {
			if err := write(w, `<h3 class="`, fr.Cx(fr.AlertTitle), `">`, templ.EscapeString(props.Title), `</h3>`); err != nil {
				return err
			}
		}
		if props.Desc != "" {
			if err := write(w, `<p>`, templ.EscapeString(props.Desc), `</p>`); err != nil {
				return err
			}
		}

		switch d := props.Dismiss.(type) {
		case DismissControlled:
			if err := writeCloseButton(ctx, w, k.alert.Tr(ctx, "dismiss"), d.Attrs); err != nil {
				return err
			}
		case DismissServer:
			if err := writeCloseButton(ctx, w, k.alert.Tr(ctx, "dismiss"), d.Attrs); err != nil {
				return err
			}
		}

		return write(w, `</div>`)
	})
	return frcmp.WithHandle(comp, id.String())
}
