package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp"
	"github.com/pthm/frcmp/fr"
)

// BadgeProps configures Kit.Badge.
type BadgeProps struct {
	Label string
	// Severity colors the badge; the zero value renders the neutral
	// badge with no severity class.
	Severity fr.BadgeSeverity
	// Small renders the compact variant.
	Small bool
	// NoIcon drops the severity icon.
	NoIcon bool
	// Class appends caller classes.
	Class string
}

// Badge renders a status label.
func (k *Kit) Badge(props BadgeProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := frcmp.Classes(
			fr.Cx(
				fr.Badge,
				fr.If(props.Severity != "", props.Severity.ClassName()),
				fr.If(props.Small, fr.BadgeSm),
				fr.If(props.NoIcon, fr.BadgeNoIcon),
			),
			props.Class,
		)
		return write(w, `<p class="`, class, `">`, templ.EscapeString(props.Label), `</p>`)
	})
}

// BadgeGroup arranges badges in the stylesheet's group layout, one list
// item per badge.
func (k *Kit) BadgeGroup(badges ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<ul class="`, fr.Cx(fr.BadgesGroup), `">`); err != nil {
			return err
		}
		for _, badge := range badges {
			if err := write(w, `<li>`); err != nil {
				return err
			}
			if err := badge.Render(ctx, w); err != nil {
				return err
			}
			if err := write(w, `</li>`); err != nil {
				return err
			}
		}
		return write(w, `</ul>`)
	})
}
