package frcmp

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

// Hydrater is implemented by components to reconstruct rich objects from
// the lean, serializable values carried in props. Called exactly once
// per request, before rendering or any action handler.
//
// Hydration keeps URL-encoded props minimal: props carry IDs, Hydrate
// fetches the full records from stores or caches.
//
//	func (c *StatusNotice) Hydrate(ctx context.Context, props *NoticeProps) error {
//	    props.Status = c.store.Status(ctx, props.StatusID)
//	    return nil
//	}
//
// Handlers can safely assume hydrated props are complete.
type Hydrater[P any] interface {
	Hydrate(ctx context.Context, props *P) error
}

// Renderer is implemented by components to produce templ output. Called
// for GET requests and after action handlers that return OK or Err.
//
// Render receives fully-hydrated props and should be pure: it reads
// props and produces HTML without side effects.
//
//	func (c *StatusNotice) Render(ctx context.Context, props NoticeProps) templ.Component {
//	    return c.kit.Notice(props.View())
//	}
//
// Handlers that return Skip or Redirect bypass Render.
type Renderer[P any] interface {
	Render(ctx context.Context, props P) templ.Component
}

// Lifecycle is the pair of methods a concrete component must provide.
// Component.Bind takes one and wires it into request dispatch.
type Lifecycle[P any] interface {
	Hydrater[P]
	Renderer[P]
}

// Mountable is what the Registry accepts. Component[P] implements it;
// the unexported method keeps unrelated types out, so only types
// embedding *Component[P] can be registered.
type Mountable interface {
	Prefix() string
	ServeHTTP(w http.ResponseWriter, r *http.Request)

	configure(reg *Registry)
}

// HandleExposer is implemented by rendered components that expose the id
// of their root element, so hosts can address the element from scripts,
// anchors or HTMX targets without parsing markup.
//
//	notice := kit.Notice(props)
//	if h, ok := notice.(frcmp.HandleExposer); ok {
//	    target = "#" + h.HandleID()
//	}
type HandleExposer interface {
	HandleID() string
}

type handleComponent struct {
	templ.Component
	id string
}

func (h handleComponent) HandleID() string {
	return h.id
}

// WithHandle pairs a rendered component with the id of its root element.
// The result implements HandleExposer in addition to templ.Component.
func WithHandle(c templ.Component, id string) templ.Component {
	return handleComponent{Component: c, id: id}
}
