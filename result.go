package frcmp

// Result[P] is returned from action handlers to control rendering and
// side effects.
//
// Handlers never write to the ResponseWriter themselves; they describe
// the outcome and the framework applies it after the handler returns:
// headers first, then redirect, skip or render.
//
//	// Success - re-render with updated props
//	return frcmp.OK(props)
//
//	// Success with a flash alert
//	return frcmp.OK(props).Flash(frcmp.FlashSuccess, "Préférences enregistrées")
//
//	// Domain failure - routed through the registry's OnError
//	return frcmp.Err(props, err)
//
//	// Dismissal - nothing to render, the client swap removes the element
//	return frcmp.Skip[NoticeProps]()
//
//	// Post-action navigation
//	return frcmp.Redirect[NoticeProps]("/tableau-de-bord")
//
//	// Broadcast an event for loosely-coupled listeners
//	return frcmp.OK(props).Trigger("notice:dismissed", map[string]any{"id": props.ID})
//
// Result is not error-as-value abuse: errors still travel through Err,
// the rest is rendering intent.
type Result[P any] struct {
	props              P
	err                error
	redirect           string
	flashes            []Flash
	trigger            string
	triggerData        map[string]any
	triggerAfterSettle string
	headers            map[string]string
	status             int
	skip               bool
}

// OK creates a success result. The framework renders the component with
// the given props.
func OK[P any](props P) Result[P] {
	return Result[P]{props: props}
}

// Err creates an error result routed through the registry's OnError
// handler. Props are carried along so OnError can render a fallback.
//
// Decode and hydration failures reach OnError automatically; handlers
// return Err for domain failures only (validation, not found,
// permission denied).
func Err[P any](props P, err error) Result[P] {
	return Result[P]{props: props, err: err}
}

// Skip creates a result with no rendered body. The response is 204
// unless Status overrides it.
//
// Use when the client-side swap already does the work, such as a
// dismiss wired with SwapDelete: the element disappears on the client
// and the server has nothing to say beyond headers.
func Skip[P any]() Result[P] {
	return Result[P]{skip: true}
}

// Redirect creates a result that navigates via the HX-Redirect header.
// HTMX performs a client-side redirect; no rendering occurs.
func Redirect[P any](url string) Result[P] {
	return Result[P]{redirect: url}
}

// Flash appends a one-time alert rendered out-of-band into the
// #fr-alerts group. Levels are the design system's alert severities
// (FlashSuccess, FlashError, FlashWarning, FlashInfo).
//
// Multiple flashes chain; each renders as its own alert:
//
//	return frcmp.OK(props).
//	    Flash(frcmp.FlashSuccess, "Demande envoyée").
//	    Flash(frcmp.FlashInfo, "Un courriel de confirmation arrive")
func (r Result[P]) Flash(level, message string) Result[P] {
	r.flashes = append(r.flashes, Flash{Level: level, Message: message})
	return r
}

// Trigger emits an event via the HX-Trigger header so other components
// can react without coupling to this one:
//
//	// Emitter:
//	return frcmp.OK(props).Trigger("notice:dismissed")
//
//	// Emitter with data (listeners receive it as request params):
//	return frcmp.OK(props).Trigger("filters:changed", map[string]any{"status": "active"})
//
//	// Listener, in a template:
//	c.Refresh(props).OnEvent("filters:changed").Attrs()
func (r Result[P]) Trigger(event string, data ...map[string]any) Result[P] {
	r.trigger = event
	if len(data) > 0 {
		r.triggerData = data[0]
	}
	return r
}

// PushURL updates the browser URL via the HX-Push-Url header. Combine
// with TriggerURLSync when the URL is shared state other components
// read:
//
//	return frcmp.OK(props).
//	    PushURL("/annuaire?statut=publie").
//	    TriggerURLSync()
func (r Result[P]) PushURL(url string) Result[P] {
	return r.Header("HX-Push-Url", url)
}

// TriggerURLSync emits "url:sync" after the swap settles, so components
// listening for it re-read their state from the updated browser URL.
// After-settle ordering prevents listeners reading the stale URL.
func (r Result[P]) TriggerURLSync() Result[P] {
	r.triggerAfterSettle = "url:sync"
	return r
}

// Header sets a custom response header.
func (r Result[P]) Header(key, value string) Result[P] {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
	return r
}

// Status sets the HTTP status code. The default is 200 for rendered
// results and 204 for Skip.
func (r Result[P]) Status(code int) Result[P] {
	r.status = code
	return r
}

// GetProps returns the props carried by the result.
func (r Result[P]) GetProps() P {
	return r.props
}

// GetErr returns the error, if any.
func (r Result[P]) GetErr() error {
	return r.err
}

// GetRedirect returns the redirect URL.
func (r Result[P]) GetRedirect() string {
	return r.redirect
}

// GetFlashes returns the flash messages.
func (r Result[P]) GetFlashes() []Flash {
	return r.flashes
}

// GetTrigger returns the trigger event name.
func (r Result[P]) GetTrigger() string {
	return r.trigger
}

// GetTriggerData returns the trigger event data.
func (r Result[P]) GetTriggerData() map[string]any {
	return r.triggerData
}

// GetTriggerAfterSettle returns the after-settle trigger event name.
func (r Result[P]) GetTriggerAfterSettle() string {
	return r.triggerAfterSettle
}

// GetHeaders returns the custom response headers.
func (r Result[P]) GetHeaders() map[string]string {
	return r.headers
}

// GetStatus returns the status code, 0 meaning the default.
func (r Result[P]) GetStatus() int {
	return r.status
}

// ShouldSkip reports whether the result renders no body.
func (r Result[P]) ShouldSkip() bool {
	return r.skip
}
