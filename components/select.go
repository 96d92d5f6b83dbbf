package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp"
	"github.com/pthm/frcmp/fr"
)

// SelectOption is one entry in a select list.
type SelectOption struct {
	Label    string
	Value    string
	Selected bool
	Disabled bool
}

// SelectProps configures Kit.Select.
type SelectProps struct {
	// ID overrides the generated select id. The label's for attribute
	// and the message container's id derive from it.
	ID string
	// Name is the form field name.
	Name  string
	Label string
	// Hint renders inside the label as secondary text.
	Hint    string
	Options []SelectOption
	// Placeholder is the disabled leading option shown until a real
	// selection is made. Empty uses the built-in localized text.
	Placeholder string
	Disabled    bool
	// State and StateMessage render a validation message tied to the
	// select by aria-describedby.
	State        State
	StateMessage string
	// Attrs adds attributes to the select element, typically hx- wiring
	// from an action.
	Attrs templ.Attributes
	// Class appends caller classes to the group element.
	Class string
}

// Select renders a native select with its label, placeholder and
// validation message. The returned component implements
// frcmp.HandleExposer with the select's id; the message container id is
// always "<id>-messages".
func (k *Kit) Select(props SelectProps) templ.Component {
	id := frcmp.NewAutoID(props.ID, "fr-select")
	comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		selectID := id.String()
		messagesID := selectID + "-messages"

		class := frcmp.Classes(
			fr.Cx(
				fr.SelectGroup,
				fr.If(props.State == StateError, fr.SelectGroupError),
				fr.If(props.State == StateValid, fr.SelectGroupValid),
				fr.If(props.Disabled, fr.SelectGroupDisabled),
			),
			props.Class,
		)
		if err := write(w, `<div class="`, class, `">`); err != nil {
			return err
		}

		if err := writeLabel(w, selectID, props.Label, props.Hint); err != nil {
			return err
		}

		if err := write(w,
			`<select class="`, fr.Cx(fr.Select), `" id="`, templ.EscapeString(selectID), `" name="`, templ.EscapeString(props.Name), `"`,
			` aria-describedby="`, templ.EscapeString(messagesID), `"`,
		); err != nil {
			return err
		}
		if props.Disabled {
			if err := write(w, ` disabled`); err != nil {
				return err
			}
		}
		if err := templ.RenderAttributes(ctx, w, props.Attrs); err != nil {
			return err
		}
		if err := write(w, `>`); err != nil {
			return err
		}

		selected := false
		for _, opt := range props.Options {
			if opt.Selected {
				selected = true
				break
			}
		}

		placeholder := props.Placeholder
		if placeholder == "" {
			placeholder = k.sel.Tr(ctx, "placeholder")
		}
		if err := write(w, `<option value="" disabled hidden`); err != nil {
			return err
		}
		if !selected {
			if err := write(w, ` selected`); err != nil {
				return err
			}
		}
		if err := write(w, `>`, templ.EscapeString(placeholder), `</option>`); err != nil {
			return err
		}

		for _, opt := range props.Options {
			if err := write(w, `<option value="`, templ.EscapeString(opt.Value), `"`); err != nil {
				return err
			}
			if opt.Selected {
				if err := write(w, ` selected`); err != nil {
					return err
				}
			}
			if opt.Disabled {
				if err := write(w, ` disabled`); err != nil {
					return err
				}
			}
			if err := write(w, `>`, templ.EscapeString(opt.Label), `</option>`); err != nil {
				return err
			}
		}

		if err := write(w, `</select>`); err != nil {
			return err
		}

		if err := writeMessagesGroup(w, messagesID, props.State, props.StateMessage); err != nil {
			return err
		}

		return write(w, `</div>`)
	})
	return frcmp.WithHandle(comp, id.String())
}
