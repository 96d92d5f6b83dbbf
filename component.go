package frcmp

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// ActionFunc is the handler signature for component actions.
//
// Handlers receive decoded, hydrated props plus the raw request for
// access to form fields outside the props channel, and return a Result
// describing what to render and which HTMX side effects to emit.
type ActionFunc[P any] func(ctx context.Context, props P, r *http.Request) Result[P]

// actionDef holds metadata about a registered action.
type actionDef struct {
	name   string
	method string
}

type action[P any] struct {
	actionDef
	handler ActionFunc[P]
}

// Component[P] is the base type embedded by interactive components.
// P is the Props type for the component.
//
// Embedding *Component[P] gives the concrete type action registration,
// URL generation and the HTTP dispatch loop. Constructors register
// actions, then call Bind so dispatch can reach Hydrate and Render:
//
//	type StatusNotice struct {
//	    *frcmp.Component[NoticeProps]
//	    store *Store
//	}
//
//	func NewStatusNotice(store *Store) *StatusNotice {
//	    c := &StatusNotice{
//	        Component: frcmp.New[NoticeProps]("status-notice"),
//	        store:     store,
//	    }
//	    c.Action("dismiss", c.dismiss)
//	    c.Bind(c)
//	    return c
//	}
//
// Each instance receives a deterministic URL prefix derived from its
// name and the source location of the New call, so two instances never
// collide without manual coordination.
type Component[P any] struct {
	name      string
	prefix    string
	sensitive bool
	actions   map[string]*action[P]
	parent    Lifecycle[P]
	encoder   *Encoder
	registry  *Registry
	onError   func(http.ResponseWriter, *http.Request, error)
	log       zerolog.Logger
}

// RoutePrefix is the path under which every component serves. Mount the
// registry handler here.
const RoutePrefix = "/_c/"

// New creates a component base with the given name.
//
// Props are signed by default: visible in URLs but tamper-proof. Call
// Sensitive to switch to full encryption when props carry data clients
// must not read.
func New[P any](name string) *Component[P] {
	prefix := RoutePrefix + name + "-" + componentHash(name, 1)
	return &Component[P]{
		name:    name,
		prefix:  prefix,
		actions: make(map[string]*action[P]),
		log:     zerolog.Nop(),
	}
}

// Sensitive switches the component to encrypted props.
//
// Signed mode (the default) keeps props debuggable - they are readable
// base64 in URLs. Encrypted mode makes them opaque; use it for user
// ids, tokens or anything clients should not see.
func (c *Component[P]) Sensitive() *Component[P] {
	c.sensitive = true
	return c
}

// Name returns the component's name.
func (c *Component[P]) Name() string {
	return c.name
}

// Prefix returns the component's URL prefix. All of its routes are
// mounted under this prefix.
func (c *Component[P]) Prefix() string {
	return c.prefix
}

// IsSensitive reports whether the component uses encrypted props.
func (c *Component[P]) IsSensitive() bool {
	return c.sensitive
}

// Bind attaches the concrete component embedding this base, giving
// dispatch access to its Hydrate and Render. Call it once from the
// constructor, after registering actions. Registration panics if a
// component was never bound.
func (c *Component[P]) Bind(parent Lifecycle[P]) {
	c.parent = parent
}

// SetOnError sets a per-component error handler that takes precedence
// over the registry's OnError. Use it when one component needs its own
// error markup, such as rendering an inline alert in place.
func (c *Component[P]) SetOnError(fn func(http.ResponseWriter, *http.Request, error)) {
	c.onError = fn
}

// OnError returns the per-component error handler, or nil.
func (c *Component[P]) OnError() func(http.ResponseWriter, *http.Request, error) {
	return c.onError
}

// Action registers a named action handler. Actions default to POST;
// chain Method to override:
//
//	c.Action("dismiss", c.dismiss)
//	c.Action("raw", c.raw).Method(http.MethodGet)
//
// Names are semantic (dismiss, approve, reload), not HTTP verbs. The
// framework hydrates props before the handler runs and renders after it
// returns OK or Err.
func (c *Component[P]) Action(name string, handler ActionFunc[P]) *ActionBuilder {
	a := &action[P]{
		actionDef: actionDef{name: name, method: http.MethodPost},
		handler:   handler,
	}
	c.actions[name] = a
	return &ActionBuilder{action: &a.actionDef}
}

// Wire returns an Action builder for a registered action, with props
// encoded into the URL. Templates attach the attributes it produces:
//
//	<button { c.Wire("dismiss", props).Target("#notice").SwapDelete().Attrs()... }>
//
// Wire panics on an unknown action name - a typo, caught in development.
func (c *Component[P]) Wire(name string, props P) *Action {
	a, ok := c.actions[name]
	if !ok {
		panic(fmt.Sprintf("frcmp: component %q has no action %q", c.name, name))
	}
	return NewAction(c.buildURL(name, props), a.method)
}

// Refresh returns an Action builder for the default render (GET). Use
// it to re-render the component with updated props, typically wired to
// an event:
//
//	c.Refresh(props).OnEvent("filters:changed").Attrs()
func (c *Component[P]) Refresh(props P) *Action {
	return NewAction(c.buildURL("", props), http.MethodGet)
}

// Lazy returns a placeholder that loads the component when scrolled
// into view, deferring below-the-fold content.
func (c *Component[P]) Lazy(props P, placeholder templ.Component) templ.Component {
	return lazyComponent(c.buildURL("", props), placeholder, "intersect once")
}

// Defer returns a placeholder that loads the component after the page
// finishes loading. Use for non-critical content that should not block
// the initial render.
func (c *Component[P]) Defer(props P, placeholder templ.Component) templ.Component {
	return lazyComponent(c.buildURL("", props), placeholder, "load")
}

// ServeHTTP dispatches requests under the component's prefix: the bare
// prefix renders, a path suffix selects the action of that name.
func (c *Component[P]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if c.parent == nil {
		panic(fmt.Sprintf("frcmp: component %q has no lifecycle bound; call Bind in its constructor", c.name))
	}

	ctx := r.Context()

	props, err := c.decodeProps(r)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, c.prefix), "/")

	if name == "" {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := c.parent.Hydrate(ctx, &props); err != nil {
			c.fail(w, r, fmt.Errorf("%w: %s: %w", ErrHydrationFailed, c.name, err))
			return
		}
		c.apply(w, r, OK(props))
		return
	}

	a, ok := c.actions[name]
	if !ok {
		c.fail(w, r, fmt.Errorf("%w: action %q", ErrNotFound, name))
		return
	}
	if r.Method != a.method {
		w.Header().Set("Allow", a.method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := c.parent.Hydrate(ctx, &props); err != nil {
		c.fail(w, r, fmt.Errorf("%w: %s: %w", ErrHydrationFailed, c.name, err))
		return
	}

	c.apply(w, r, a.handler(ctx, props, r))
}

// configure is called by Registry.Add; it seals Mountable so only types
// embedding *Component[P] can register.
func (c *Component[P]) configure(reg *Registry) {
	if c.parent == nil {
		panic(fmt.Sprintf("frcmp: component %q has no lifecycle bound; call Bind in its constructor", c.name))
	}
	c.registry = reg
	c.encoder = reg.encoder
	c.log = reg.log.With().Str("component", c.name).Logger()
}

// decodeProps reads the encoded props from the query string, falling
// back to the form body for mutating requests. Absent props decode to
// the zero value.
func (c *Component[P]) decodeProps(r *http.Request) (P, error) {
	var props P

	encoded := r.URL.Query().Get("p")
	if encoded == "" && r.Method != http.MethodGet && r.Method != http.MethodHead {
		encoded = r.PostFormValue("p")
	}
	if encoded == "" {
		return props, nil
	}

	if c.encoder == nil {
		return props, fmt.Errorf("%w: %s has no encoder", ErrNotRegistered, c.name)
	}
	if err := c.encoder.Decode(encoded, c.sensitive, &props); err != nil {
		return props, WrapDecodeError(err)
	}
	return props, nil
}

// apply turns a handler Result into the HTTP response: headers and HTMX
// side effects first, then redirect, skip or render.
func (c *Component[P]) apply(w http.ResponseWriter, r *http.Request, res Result[P]) {
	if err := res.GetErr(); err != nil {
		c.fail(w, r, err)
		return
	}

	h := w.Header()
	for k, v := range res.GetHeaders() {
		h.Set(k, v)
	}
	if trigger := BuildTriggerHeader(res.GetTrigger(), res.GetTriggerData()); trigger != "" {
		h.Set("HX-Trigger", trigger)
	}
	if after := res.GetTriggerAfterSettle(); after != "" {
		h.Set("HX-Trigger-After-Settle", after)
	}

	if url := res.GetRedirect(); url != "" {
		h.Set("HX-Redirect", url)
		w.WriteHeader(http.StatusOK)
		return
	}

	if res.ShouldSkip() {
		status := res.GetStatus()
		if status == 0 {
			status = http.StatusNoContent
		}
		w.WriteHeader(status)
		return
	}

	h.Set("Content-Type", "text/html; charset=utf-8")
	if status := res.GetStatus(); status != 0 {
		w.WriteHeader(status)
	}

	ctx := r.Context()
	if err := c.parent.Render(ctx, res.GetProps()).Render(ctx, w); err != nil {
		// Headers are gone; all that is left is to log.
		c.log.Error().Err(err).Str("path", r.URL.Path).Msg("render failed")
		return
	}
	if oob := RenderAlertsOOB(res.GetFlashes()); oob != "" {
		if _, err := io.WriteString(w, oob); err != nil {
			c.log.Error().Err(err).Msg("flash render failed")
		}
	}
}

func (c *Component[P]) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.log.Error().Err(err).Str("path", r.URL.Path).Str("method", r.Method).Msg("component request failed")

	if c.onError != nil {
		c.onError(w, r, err)
		return
	}
	if c.registry != nil && c.registry.OnError != nil {
		c.registry.OnError(w, r, err)
		return
	}
	defaultOnError(w, r, err)
}

// buildURL constructs the URL for an action with encoded props. An
// empty action means the default render.
func (c *Component[P]) buildURL(action string, props P) string {
	path := c.prefix + "/"
	if action != "" {
		path = c.prefix + "/" + action
	}

	if c.encoder == nil {
		c.log.Warn().Str("action", action).Msg("building URL before registration; props dropped")
		return path
	}

	encoded, err := c.encoder.Encode(props, c.sensitive)
	if err != nil {
		c.log.Error().Err(err).Str("action", action).Msg("encode props failed; props dropped")
		return path
	}
	return path + "?p=" + encoded
}

// componentHash derives a deterministic hash from the component name and
// the source location of the constructor call, so every instance gets a
// unique prefix without manual coordination.
func componentHash(name string, skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	var input string
	if ok {
		// Base filename only, for portability across build environments.
		input = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, name)
	} else {
		input = name
	}
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:4])
}

// lazyComponent renders a placeholder that swaps in content on trigger.
func lazyComponent(url string, placeholder templ.Component, trigger string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div hx-get="%s" hx-trigger="%s" hx-swap="outerHTML">`, url, trigger)
		if err != nil {
			return err
		}
		if placeholder != nil {
			if err := placeholder.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</div>`)
		return err
	})
}
