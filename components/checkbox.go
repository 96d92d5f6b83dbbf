package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp"
	"github.com/pthm/frcmp/fr"
)

// CheckboxProps configures Kit.Checkbox.
type CheckboxProps struct {
	// ID overrides the generated input id. The label's for attribute
	// and the message container's id derive from it.
	ID string
	// Name is the form field name.
	Name string
	// Value is the submitted value; empty falls back to the browser
	// default.
	Value string
	Label string
	// Hint renders inside the label as secondary text.
	Hint     string
	Checked  bool
	Disabled bool
	// Small renders the compact variant.
	Small bool
	// State and StateMessage render a validation message tied to the
	// input by aria-describedby.
	State        State
	StateMessage string
	// Attrs adds attributes to the input element, typically hx- wiring
	// from an action.
	Attrs templ.Attributes
	// Class appends caller classes to the group element.
	Class string
}

// Checkbox renders a single checkbox with its label, hint and
// validation message. The returned component implements
// frcmp.HandleExposer with the input's id; the message container id is
// always "<id>-messages".
func (k *Kit) Checkbox(props CheckboxProps) templ.Component {
	id := frcmp.NewAutoID(props.ID, "fr-checkbox")
	comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		inputID := id.String()
		messagesID := inputID + "-messages"

		class := frcmp.Classes(
			fr.Cx(fr.CheckboxGroup, fr.If(props.Small, fr.CheckboxGroupSm)),
			props.Class,
		)
		if err := write(w,
			`<div class="`, class, `">`,
			`<input type="checkbox" id="`, templ.EscapeString(inputID), `" name="`, templ.EscapeString(props.Name), `"`,
		); err != nil {
			return err
		}
		if props.Value != "" {
			if err := write(w, ` value="`, templ.EscapeString(props.Value), `"`); err != nil {
				return err
			}
		}
		if err := write(w, ` aria-describedby="`, templ.EscapeString(messagesID), `"`); err != nil {
			return err
		}
		if props.Checked {
			if err := write(w, ` checked`); err != nil {
				return err
			}
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

		if err := writeLabel(w, inputID, props.Label, props.Hint); err != nil {
			return err
		}
		if err := writeMessagesGroup(w, messagesID, props.State, props.StateMessage); err != nil {
			return err
		}

		return write(w, `</div>`)
	})
	return frcmp.WithHandle(comp, id.String())
}
