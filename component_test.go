package frcmp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

type noticeProps struct {
	ID     string
	Count  int64
	Closed bool
}

func (p noticeProps) EncodeProps() map[string]any {
	return map[string]any{
		"id":     p.ID,
		"count":  p.Count,
		"closed": p.Closed,
	}
}

func (p *noticeProps) DecodeProps(m map[string]any) error {
	if v, ok := m["id"].(string); ok {
		p.ID = v
	}
	if v, ok := m["count"]; ok {
		switch n := v.(type) {
		case int64:
			p.Count = n
		case float64:
			p.Count = int64(n)
		}
	}
	if v, ok := m["closed"].(bool); ok {
		p.Closed = v
	}
	return nil
}

// testNotice is a minimal interactive component exercising the full
// dispatch path: hydration, default render and a dismiss action.
type testNotice struct {
	*Component[noticeProps]

	hydrateCalls int
	hydrateErr   error
}

func newTestNotice() *testNotice {
	c := &testNotice{Component: New[noticeProps]("test-notice")}
	c.Action("dismiss", c.dismiss)
	c.Action("increment", c.increment)
	c.Bind(c)
	return c
}

func (c *testNotice) Hydrate(ctx context.Context, props *noticeProps) error {
	c.hydrateCalls++
	if c.hydrateErr != nil {
		return c.hydrateErr
	}
	if props.ID == "" {
		props.ID = "fr-notice-defaut"
	}
	return nil
}

func (c *testNotice) Render(ctx context.Context, props noticeProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="fr-notice fr-notice--info" id="%s"><p class="fr-notice__title">Compteur %d</p></div>`,
			props.ID, props.Count)
		return err
	})
}

func (c *testNotice) dismiss(ctx context.Context, props noticeProps, r *http.Request) Result[noticeProps] {
	return Skip[noticeProps]().Trigger("notice:dismissed")
}

func (c *testNotice) increment(ctx context.Context, props noticeProps, r *http.Request) Result[noticeProps] {
	props.Count++
	return OK(props).Flash(FlashSuccess, "Compteur mis à jour")
}

func newTestRegistry() *Registry {
	return NewRegistry([]byte("test-key-for-component-tests"))
}

func serveThrough(reg *Registry, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)
	return rec
}

func TestComponentPrefix(t *testing.T) {
	c := newTestNotice()

	if !strings.HasPrefix(c.Prefix(), "/_c/test-notice-") {
		t.Errorf("Prefix() = %q, want /_c/test-notice-<hash>", c.Prefix())
	}

	hash := strings.TrimPrefix(c.Prefix(), "/_c/test-notice-")
	if len(hash) != 8 {
		t.Errorf("prefix hash %q has length %d, want 8", hash, len(hash))
	}
}

func TestComponentPrefixDeterministic(t *testing.T) {
	a := newTestNotice()
	b := newTestNotice()

	if a.Prefix() != b.Prefix() {
		t.Errorf("same constructor produced different prefixes: %q vs %q", a.Prefix(), b.Prefix())
	}
}

func TestComponentName(t *testing.T) {
	c := newTestNotice()
	if c.Name() != "test-notice" {
		t.Errorf("Name() = %q, want %q", c.Name(), "test-notice")
	}
}

func TestComponentSensitive(t *testing.T) {
	c := newTestNotice()
	if c.IsSensitive() {
		t.Error("IsSensitive() = true before Sensitive(), want false")
	}

	c.Component.Sensitive()
	if !c.IsSensitive() {
		t.Error("IsSensitive() = false after Sensitive(), want true")
	}
}

func TestRegistryAddPrefixCollision(t *testing.T) {
	reg := newTestRegistry()
	reg.Add(newTestNotice())

	defer func() {
		if recover() == nil {
			t.Error("Add() with a colliding prefix should panic")
		}
	}()
	reg.Add(newTestNotice())
}

func TestComponentWire(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	a := c.Wire("dismiss", noticeProps{ID: "n1"})
	url := a.URL()

	if !strings.HasPrefix(url, c.Prefix()+"/dismiss?p=") {
		t.Errorf("Wire URL = %q, want prefix/dismiss?p=...", url)
	}

	attrs := a.Attrs()
	if attrs["hx-post"] != url {
		t.Errorf("dismiss should wire as POST, got attrs %v", attrs)
	}
}

func TestComponentWireUnknownAction(t *testing.T) {
	c := newTestNotice()

	defer func() {
		if recover() == nil {
			t.Error("Wire() with an unknown action should panic")
		}
	}()
	c.Wire("nonexistent", noticeProps{})
}

func TestComponentWireBeforeRegistration(t *testing.T) {
	c := newTestNotice()

	url := c.Wire("dismiss", noticeProps{ID: "n1"}).URL()
	if url != c.Prefix()+"/dismiss" {
		t.Errorf("Wire URL before registration = %q, want bare path without props", url)
	}
}

func TestComponentRefresh(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	a := c.Refresh(noticeProps{ID: "n1", Count: 3})
	if !strings.HasPrefix(a.URL(), c.Prefix()+"/?p=") {
		t.Errorf("Refresh URL = %q, want prefix/?p=...", a.URL())
	}

	attrs := a.Attrs()
	if _, ok := attrs["hx-get"]; !ok {
		t.Errorf("Refresh should wire as GET, got attrs %v", attrs)
	}
}

func TestComponentRenderDispatch(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	url := c.Refresh(noticeProps{ID: "fr-notice-7", Count: 42}).URL()
	rec := serveThrough(reg, httptest.NewRequest("GET", url, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if c.hydrateCalls != 1 {
		t.Errorf("Hydrate called %d times, want 1", c.hydrateCalls)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `id="fr-notice-7"`) {
		t.Errorf("body should carry the decoded props id: %s", body)
	}
	if !strings.Contains(body, "Compteur 42") {
		t.Errorf("body should carry the decoded count: %s", body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
}

func TestComponentRenderWithoutProps(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	rec := serveThrough(reg, httptest.NewRequest("GET", c.Prefix()+"/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `id="fr-notice-defaut"`) {
		t.Errorf("hydration should fill defaults for zero props: %s", rec.Body.String())
	}
}

func TestComponentRenderWrongMethod(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	req := httptest.NewRequest("POST", c.Prefix()+"/", nil)
	req.Header.Set("HX-Request", "true")
	rec := serveThrough(reg, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Errorf("Allow = %q, want %q", allow, "GET, HEAD")
	}
}

func TestComponentActionDispatch(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	url := c.Wire("dismiss", noticeProps{ID: "n1"}).URL()
	req := httptest.NewRequest("POST", url, nil)
	req.Header.Set("HX-Request", "true")
	rec := serveThrough(reg, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204 for a skip result", rec.Code)
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "notice:dismissed" {
		t.Errorf("HX-Trigger = %q, want %q", trigger, "notice:dismissed")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("skip result should have an empty body, got %q", rec.Body.String())
	}
}

func TestComponentActionRendersAndFlashes(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	url := c.Wire("increment", noticeProps{ID: "n1", Count: 1}).URL()
	req := httptest.NewRequest("POST", url, nil)
	req.Header.Set("HX-Request", "true")
	rec := serveThrough(reg, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Compteur 2") {
		t.Errorf("body should carry the incremented count: %s", body)
	}
	if !strings.Contains(body, `hx-swap-oob="beforeend"`) {
		t.Errorf("body should append the flash OOB swap: %s", body)
	}
	if !strings.Contains(body, "Compteur mis à jour") {
		t.Errorf("body should carry the flash message: %s", body)
	}
}

func TestComponentUnknownAction(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	req := httptest.NewRequest("POST", c.Prefix()+"/nonexistent", nil)
	req.Header.Set("HX-Request", "true")
	rec := serveThrough(reg, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for an unknown action", rec.Code)
	}
}

func TestComponentActionWrongMethod(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	req := httptest.NewRequest("GET", c.Prefix()+"/dismiss", nil)
	rec := serveThrough(reg, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow = %q, want POST", allow)
	}
}

func TestComponentTamperedProps(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	url := c.Refresh(noticeProps{ID: "n1"}).URL()
	rec := serveThrough(reg, httptest.NewRequest("GET", url+"AAAA", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for tampered props", rec.Code)
	}
}

func TestComponentHydrationError(t *testing.T) {
	c := newTestNotice()
	c.hydrateErr = errors.New("source indisponible")
	reg := newTestRegistry()
	reg.Add(c)

	rec := serveThrough(reg, httptest.NewRequest("GET", c.Prefix()+"/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 for a hydration failure", rec.Code)
	}
}

func TestComponentRedirect(t *testing.T) {
	c := &testNotice{Component: New[noticeProps]("redirect-notice")}
	c.Action("archive", func(ctx context.Context, props noticeProps, r *http.Request) Result[noticeProps] {
		return Redirect[noticeProps]("/archives")
	})
	c.Bind(c)

	reg := newTestRegistry()
	reg.Add(c)

	req := httptest.NewRequest("POST", c.Prefix()+"/archive", nil)
	req.Header.Set("HX-Request", "true")
	rec := serveThrough(reg, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for a redirect result", rec.Code)
	}
	if loc := rec.Header().Get("HX-Redirect"); loc != "/archives" {
		t.Errorf("HX-Redirect = %q, want /archives", loc)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("redirect should have an empty body, got %q", rec.Body.String())
	}
}

func TestHandlerRequiresHTMXForMutations(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	t.Run("POST without HX-Request is forbidden", func(t *testing.T) {
		rec := serveThrough(reg, httptest.NewRequest("POST", c.Prefix()+"/dismiss", nil))
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("GET without HX-Request passes", func(t *testing.T) {
		rec := serveThrough(reg, httptest.NewRequest("GET", c.Prefix()+"/", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestComponentOnErrorPrecedence(t *testing.T) {
	c := newTestNotice()
	c.hydrateErr = errors.New("source indisponible")

	reg := newTestRegistry()
	registryCalled := false
	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		registryCalled = true
		w.WriteHeader(http.StatusBadGateway)
	}
	reg.Add(c)

	c.SetOnError(func(w http.ResponseWriter, r *http.Request, err error) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := serveThrough(reg, httptest.NewRequest("GET", c.Prefix()+"/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want the per-component handler's 418", rec.Code)
	}
	if registryCalled {
		t.Error("registry OnError should not run when the component has its own handler")
	}

	c.SetOnError(nil)
	rec = serveThrough(reg, httptest.NewRequest("GET", c.Prefix()+"/", nil))
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want the registry handler's 502", rec.Code)
	}
}

func TestComponentLazy(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	placeholder := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p>Chargement...</p>`)
		return err
	})

	html, err := RenderString(context.Background(), c.Lazy(noticeProps{ID: "n1"}, placeholder))
	if err != nil {
		t.Fatalf("rendering lazy placeholder: %v", err)
	}

	if !strings.Contains(html, `hx-get="`+c.Prefix()+`/?p=`) {
		t.Errorf("lazy placeholder should load the component URL: %s", html)
	}
	if !strings.Contains(html, `hx-trigger="intersect once"`) {
		t.Errorf("lazy placeholder should trigger on intersect: %s", html)
	}
	if !strings.Contains(html, "Chargement...") {
		t.Errorf("lazy placeholder should render the placeholder content: %s", html)
	}
}

func TestComponentDefer(t *testing.T) {
	c := newTestNotice()
	reg := newTestRegistry()
	reg.Add(c)

	html, err := RenderString(context.Background(), c.Defer(noticeProps{}, nil))
	if err != nil {
		t.Fatalf("rendering deferred placeholder: %v", err)
	}

	if !strings.Contains(html, `hx-trigger="load"`) {
		t.Errorf("deferred placeholder should trigger on load: %s", html)
	}
}

func TestComponentServeHTTPUnbound(t *testing.T) {
	c := New[noticeProps]("unbound-notice")

	defer func() {
		if recover() == nil {
			t.Error("ServeHTTP on an unbound component should panic")
		}
	}()
	c.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", c.Prefix()+"/", nil))
}

func TestRegistryAddUnbound(t *testing.T) {
	c := New[noticeProps]("unbound-add")
	reg := newTestRegistry()

	defer func() {
		if recover() == nil {
			t.Error("Add() with an unbound component should panic")
		}
	}()
	reg.Add(c)
}
