package components

import "github.com/a-h/templ"

// Dismiss selects a notice or alert's close behavior. The set is
// closed: DismissNone, DismissControlled and DismissServer are the only
// variants, and every render handles all three. A nil Dismiss means
// DismissNone.
//
// The split keeps ownership of the open/closed state explicit.
// Controlled dismissal belongs to the host, which re-renders with the
// flag flipped; server dismissal belongs to a wired action, whose swap
// removes the element.
type Dismiss interface {
	dismiss()
}

// DismissNone renders no close control. Equivalent to a nil Dismiss.
type DismissNone struct{}

func (DismissNone) dismiss() {}

// DismissControlled renders a close button wired by the host, which
// owns the open/closed state. When Closed is true the component renders
// nothing; re-rendering with Closed false is what brings it back.
type DismissControlled struct {
	Closed bool
	// Attrs is the host's wiring for the close button, often hx- or
	// data- attributes toggling the host's own state.
	Attrs templ.Attributes
}

func (DismissControlled) dismiss() {}

// DismissServer renders a close button carrying the attributes of a
// wired action, typically c.Wire("dismiss", props).Attrs(). The server
// owns the state; the action's swap removes or replaces the element.
type DismissServer struct {
	Attrs templ.Attributes
}

func (DismissServer) dismiss() {}
