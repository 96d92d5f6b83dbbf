package components

import (
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp/fr"
)

// State marks a form field's validation status. StateDefault renders no
// message; the others add a message line below the field, tied to it by
// aria-describedby so assistive tech announces changes.
type State string

const (
	StateDefault State = ""
	StateError   State = "error"
	StateValid   State = "valid"
	StateInfo    State = "info"
)

// messageClass maps a non-default state to its fr-message modifier.
func (s State) messageClass() fr.ClassName {
	switch s {
	case StateValid:
		return fr.MessageValid
	case StateInfo:
		return fr.MessageInfo
	default:
		return fr.MessageError
	}
}

// writeMessagesGroup renders the field's message container. The
// container and its id render even without a message, so the field's
// aria-describedby always points at a live region and state swaps only
// change its contents.
func writeMessagesGroup(w io.Writer, id string, state State, message string) error {
	if err := write(w, `<div class="`, fr.Cx(fr.MessagesGroup), `" id="`, templ.EscapeString(id), `" aria-live="polite">`); err != nil {
		return err
	}
	if state != StateDefault && message != "" {
		if err := write(w,
			`<p class="`, fr.Cx(fr.Message, state.messageClass()), `" id="`, templ.EscapeString(id+"-"+string(state)), `">`,
			templ.EscapeString(message),
			`</p>`,
		); err != nil {
			return err
		}
	}
	return write(w, `</div>`)
}
