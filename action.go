package frcmp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
)

// ActionBuilder configures action registration. Returned by
// Component.Action to allow an optional method override:
//
//	c.Action("dismiss", c.dismiss)                      // POST by default
//	c.Action("reload", c.reload).Method(http.MethodGet)
type ActionBuilder struct {
	action *actionDef
}

// Method overrides the default POST method for an action. Use GET for
// idempotent reads and DELETE for semantic removals:
//
//	c.Action("remove", c.remove).Method(http.MethodDelete)
func (ab *ActionBuilder) Method(m string) *ActionBuilder {
	ab.action.method = m
	return ab
}

// Action builds the HTMX attributes that wire an element to a component
// route. Obtained from Component.Wire or Component.Refresh and finished
// with Attrs:
//
//	<button { c.Wire("dismiss", props).Target("#notice").SwapDelete().Attrs()... }>
//
// The zero configuration targets the triggering element and swaps
// outerHTML, which replaces the component in place.
type Action struct {
	url       string
	method    string
	target    string
	swap      SwapMode
	trigger   string
	confirm   string
	indicator string
	pushURL   bool
	vals      map[string]any
}

// NewAction creates a builder for url and method. Component.Wire and
// Component.Refresh call this with encoded-props URLs; reach for it
// directly only to wire routes outside the component system.
func NewAction(url, method string) *Action {
	return &Action{
		url:    url,
		method: method,
		swap:   SwapOuter,
	}
}

// URL returns the action URL, including encoded props.
func (a *Action) URL() string {
	return a.url
}

// Target sets an explicit hx-target selector.
func (a *Action) Target(selector string) *Action {
	a.target = selector
	return a
}

// TargetThis targets the triggering element itself.
func (a *Action) TargetThis() *Action {
	a.target = "this"
	return a
}

// TargetClosest targets the closest ancestor matching selector.
func (a *Action) TargetClosest(selector string) *Action {
	a.target = "closest " + selector
	return a
}

// TargetFind targets the first descendant matching selector.
func (a *Action) TargetFind(selector string) *Action {
	a.target = "find " + selector
	return a
}

// TargetNext targets the next sibling matching selector.
func (a *Action) TargetNext(selector string) *Action {
	a.target = "next " + selector
	return a
}

// TargetPrevious targets the previous sibling matching selector.
func (a *Action) TargetPrevious(selector string) *Action {
	a.target = "previous " + selector
	return a
}

// Swap sets the swap mode. Shortcuts below cover the common modes.
func (a *Action) Swap(mode SwapMode) *Action {
	a.swap = mode
	return a
}

// SwapOuter replaces the whole target element (the default).
func (a *Action) SwapOuter() *Action { return a.Swap(SwapOuter) }

// SwapInner replaces the target element's contents.
func (a *Action) SwapInner() *Action { return a.Swap(SwapInner) }

// SwapBeforeEnd appends to the target's contents.
func (a *Action) SwapBeforeEnd() *Action { return a.Swap(SwapBeforeEnd) }

// SwapAfterEnd inserts after the target element.
func (a *Action) SwapAfterEnd() *Action { return a.Swap(SwapAfterEnd) }

// SwapBeforeBegin inserts before the target element.
func (a *Action) SwapBeforeBegin() *Action { return a.Swap(SwapBeforeBegin) }

// SwapAfterBegin prepends to the target's contents.
func (a *Action) SwapAfterBegin() *Action { return a.Swap(SwapAfterBegin) }

// SwapDelete removes the target element; the response body is ignored.
// The natural pairing for dismiss actions that return Skip.
func (a *Action) SwapDelete() *Action { return a.Swap(SwapDelete) }

// SwapNone discards the response.
func (a *Action) SwapNone() *Action { return a.Swap(SwapNone) }

// Every polls the action at the given interval.
func (a *Action) Every(d time.Duration) *Action {
	a.trigger = "every " + formatDuration(d)
	return a
}

// OnEvent triggers when event fires anywhere on the page. Pair with
// Result.Trigger on the emitting side.
func (a *Action) OnEvent(event string) *Action {
	a.trigger = event + " from:body"
	return a
}

// OnLoad triggers once when the element loads.
func (a *Action) OnLoad() *Action {
	a.trigger = "load"
	return a
}

// OnIntersect triggers once when the element scrolls into view.
func (a *Action) OnIntersect() *Action {
	a.trigger = "intersect once"
	return a
}

// OnRevealed triggers when the element is first revealed.
func (a *Action) OnRevealed() *Action {
	a.trigger = "revealed"
	return a
}

// Confirm shows a confirmation dialog before sending the request.
func (a *Action) Confirm(message string) *Action {
	a.confirm = message
	return a
}

// Indicator shows the matched element while the request is in flight.
func (a *Action) Indicator(selector string) *Action {
	a.indicator = selector
	return a
}

// PushURL pushes the action URL into browser history.
func (a *Action) PushURL() *Action {
	a.pushURL = true
	return a
}

// Vals sends extra values with the request as hx-vals JSON.
func (a *Action) Vals(vals map[string]any) *Action {
	a.vals = vals
	return a
}

// Attrs renders the accumulated configuration as templ attributes.
func (a *Action) Attrs() templ.Attributes {
	attrs := templ.Attributes{}

	switch a.method {
	case http.MethodPost:
		attrs["hx-post"] = a.url
	case http.MethodPut:
		attrs["hx-put"] = a.url
	case http.MethodPatch:
		attrs["hx-patch"] = a.url
	case http.MethodDelete:
		attrs["hx-delete"] = a.url
	default:
		attrs["hx-get"] = a.url
	}

	if a.swap != "" {
		attrs["hx-swap"] = string(a.swap)
	}
	if a.target != "" {
		attrs["hx-target"] = a.target
	}
	if a.trigger != "" {
		attrs["hx-trigger"] = a.trigger
	}
	if a.confirm != "" {
		attrs["hx-confirm"] = a.confirm
	}
	if a.indicator != "" {
		attrs["hx-indicator"] = a.indicator
	}
	if a.pushURL {
		attrs["hx-push-url"] = "true"
	}
	if len(a.vals) > 0 {
		if data, err := json.Marshal(a.vals); err == nil {
			attrs["hx-vals"] = string(data)
		}
	}

	return attrs
}

// AsLink renders the action as a plain href with no HTMX attributes,
// for full-page navigations and downloads.
func (a *Action) AsLink() templ.Attributes {
	return templ.Attributes{"href": a.url}
}

// formatDuration renders d the way hx-trigger expects: whole seconds
// when at least a second, milliseconds below that.
func formatDuration(d time.Duration) string {
	if d >= time.Second {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}
