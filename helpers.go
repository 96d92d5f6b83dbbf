package frcmp

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response with the HTML
// content type. Use it for pages and fragments outside the component
// system; registered components render themselves.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    frcmp.Render(w, r, pageLayout(content))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX reports whether the request originated from HTMX, which sends
// HX-Request: true on every request. Use it to serve a fragment to
// HTMX and the full page to direct navigation:
//
//	if frcmp.IsHTMX(r) {
//	    return frcmp.Render(w, r, fragment)
//	}
//	return frcmp.Render(w, r, fullPage)
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsBoosted reports whether the request is a boosted navigation
// (hx-boost), where a regular link or form was intercepted by HTMX.
// Boosted requests usually want the content area without the layout
// shell.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("HX-Boosted") == "true"
}

// CurrentURL returns the URL the browser is currently on, from the
// HX-Current-URL header. Empty for non-HTMX requests.
func CurrentURL(r *http.Request) string {
	return r.Header.Get("HX-Current-URL")
}

// TriggerName returns the name attribute of the element that triggered
// the request, or empty. Lets form handlers distinguish submit buttons.
func TriggerName(r *http.Request) string {
	return r.Header.Get("HX-Trigger-Name")
}

// TriggerID returns the id attribute of the element that triggered the
// request, or empty.
func TriggerID(r *http.Request) string {
	return r.Header.Get("HX-Trigger")
}

// TargetID returns the id of the element that will receive the
// response (hx-target), or empty.
func TargetID(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// BuildTriggerHeader formats an HX-Trigger header value.
//
// A bare event name stays a bare name; an event with data becomes the
// JSON object form, where HTMX delivers the data as evt.detail:
//
//	BuildTriggerHeader("notice:dismissed", nil)
//	    -> "notice:dismissed"
//	BuildTriggerHeader("filters:changed", map[string]any{"status": "active"})
//	    -> {"filters:changed":{"status":"active"}}
//
// Returns empty when there is no event.
func BuildTriggerHeader(trigger string, data map[string]any) string {
	if trigger == "" {
		return ""
	}
	if data == nil {
		return trigger
	}

	payload, err := json.Marshal(map[string]any{trigger: data})
	if err != nil {
		return trigger
	}
	return string(payload)
}
