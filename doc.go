// Package frcmp is a server-rendered component kit for the French
// government design system (DSFR), built on Go, Templ templates, and
// HTMX.
//
// The kit has two halves. The components package renders the design
// system's building blocks (Notice, Alert, Badge, Card, Checkbox,
// Select) as templ components, resolving their classes through the
// generated vocabulary in the fr package, their text through the i18n
// registry, and their navigation through a pluggable link renderer.
// This package provides the second half: the runtime that makes
// components interactive over HTMX without client-side code.
//
// # Core Concepts
//
// Interactive components embed *Component[P] where P is the Props type.
// Props must be serializable and should contain only IDs or minimal
// data - rich objects are reconstructed during hydration.
//
//	type StatusNotice struct {
//	    *frcmp.Component[NoticeProps]
//	    store *Store
//	}
//
// The lifecycle is formalized through two required interfaces:
//   - Hydrater[P]: Hydrate(ctx, *P) reconstructs rich objects from IDs
//   - Renderer[P]: Render(ctx, P) produces the templ.Component output
//
// Bind attaches the concrete component to the embedded base; after that
// the base serves HTTP itself: decode props, hydrate, dispatch, render.
//
//	func NewStatusNotice(store *Store) *StatusNotice {
//	    c := &StatusNotice{Component: frcmp.New[NoticeProps]("status-notice"), store: store}
//	    c.Action("dismiss", c.dismiss)
//	    c.Bind(c)
//	    return c
//	}
//
// # Actions and Routing
//
// Actions are registered with semantic names and dispatched by URL
// suffix. Templates wire them with the Action builder:
//
//	c.Wire("dismiss", props).Target("#notice").SwapDelete().Attrs()
//
// Each component receives a unique URL prefix based on its name and
// source location hash. The registry prevents prefix collisions at
// registration time.
//
// # Security Model
//
// Props are encoded in URLs and form values using one of two modes:
//   - Signed (default): HMAC-authenticated msgpack, visible but tamper-proof
//   - Encrypted: AES-GCM encrypted, opaque to clients (use .Sensitive())
//
// CSRF protection is automatic - mutating methods (POST/PUT/DELETE/PATCH)
// require the HX-Request: true header that HTMX sends, preventing
// cross-origin attacks without additional tokens.
//
// # Component Communication
//
// Components communicate through events and flash messages:
//
//	// Emitter sends event with data:
//	return frcmp.OK(props).Trigger("notice:dismissed", map[string]any{"id": props.ID})
//
//	// Listener responds to the event in a template:
//	c.Refresh(props).OnEvent("notice:dismissed").Attrs()
//
// Flash messages render as design-system alerts swapped out-of-band
// into the #fr-alerts container:
//
//	return frcmp.OK(props).Flash(frcmp.FlashSuccess, "Préférences enregistrées")
//
// # Registration and Routing
//
// Components are registered explicitly with a Registry:
//
//	reg := frcmp.NewRegistry(encryptionKey)
//	reg.Add(statusNotice, cardList)
//	http.Handle("/_c/", reg.Handler())
//
// The registry provides centralized error handling via the OnError
// callback and verifies components at registration time, not during
// requests.
//
// # Stylesheet Contract
//
// Markup produced by the kit only uses classes from the generated
// vocabulary (package fr). Hosts verify the vocabulary against the
// stylesheet they actually serve during startup:
//
//	fr.MustVerifyStylesheet(cssBytes)
//
// Run 'frcmp generate' after a design system upgrade to regenerate the
// vocabulary and the derived severity sets.
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit registration (no init() side effects)
//   - Explicit lifecycle (Hydrate/Render interfaces, Bind)
//   - Explicit communication (Events, not global state)
//   - Explicit security (Signed vs Encrypted via .Sensitive())
package frcmp
