package frcmp

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// TestResult holds the output of rendering a component under test,
// with convenience assertions over HTML, headers, status, events,
// flashes and redirects.
type TestResult struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string
	Flashes         []Flash
	RedirectURL     string
}

// RenderString renders any templ component to a string. The workhorse
// for asserting on presentational component markup:
//
//	html, err := frcmp.RenderString(ctx, kit.Notice(props))
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// TestRender runs Hydrate and Render directly, bypassing HTTP and the
// props codec. Use it for pure unit tests of rendering logic where the
// test controls props; for the full action lifecycle use TestAction.
//
//	result, err := frcmp.TestRender(comp, props)
//	if !result.HTMLContains("fr-notice") {
//	    t.Fatal("missing notice markup")
//	}
func TestRender[P any](comp Lifecycle[P], props P) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), comp, props)
}

// TestRenderWithContext is TestRender with a caller-supplied context,
// for components that read request-scoped values such as the active
// language:
//
//	ctx := i18n.WithLanguage(context.Background(), language.French)
//	result, err := frcmp.TestRenderWithContext(ctx, comp, props)
func TestRenderWithContext[P any](ctx context.Context, comp Lifecycle[P], props P) (*TestResult, error) {
	if err := comp.Hydrate(ctx, &props); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := comp.Render(ctx, props).Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestAction simulates a request against a component's HTTP dispatch:
// decoding, hydration, handler execution and Result processing all run.
// Obtain actionURL from Wire or Refresh on a registered component:
//
//	result, err := frcmp.TestAction(comp, comp.Wire("dismiss", props).URL(),
//	    http.MethodPost, nil)
//	if !result.HasStatus(http.StatusNoContent) {
//	    t.Fatal("expected dismissal")
//	}
func TestAction(comp Mountable, actionURL, method string, formData map[string]string) (*TestResult, error) {
	return TestActionWithContext(context.Background(), comp, actionURL, method, formData)
}

// TestActionWithContext is TestAction with a caller-supplied context.
func TestActionWithContext(ctx context.Context, comp Mountable, actionURL, method string, formData map[string]string) (*TestResult, error) {
	return NewTestRequest(method, actionURL).
		WithFormValues(formData).
		WithContext(ctx).
		Execute(comp)
}

// TestGet simulates a GET (render) request against a component.
func TestGet(comp Mountable, url string) (*TestResult, error) {
	return TestAction(comp, url, http.MethodGet, nil)
}

// TestPost simulates a POST request against a component.
func TestPost(comp Mountable, url string, formData map[string]string) (*TestResult, error) {
	return TestAction(comp, url, http.MethodPost, formData)
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// HasEvent checks if an event was triggered.
func (r *TestResult) HasEvent(event string) bool {
	for _, e := range r.TriggeredEvents {
		if strings.Contains(e, event) {
			return true
		}
	}
	return false
}

// HasFlash checks if a flash with the given level and message was set.
func (r *TestResult) HasFlash(level, message string) bool {
	for _, f := range r.Flashes {
		if f.Level == level && f.Message == message {
			return true
		}
	}
	return false
}

// HasFlashLevel checks if any flash with the given level was set.
func (r *TestResult) HasFlashLevel(level string) bool {
	for _, f := range r.Flashes {
		if f.Level == level {
			return true
		}
	}
	return false
}

// WasRedirected checks if the response carried a redirect.
func (r *TestResult) WasRedirected() bool {
	return r.RedirectURL != ""
}

// RedirectedTo checks if the response redirected to a specific URL.
func (r *TestResult) RedirectedTo(url string) bool {
	return r.RedirectURL == url
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// TestRequestBuilder builds test requests when the wrappers above are
// not fine-grained enough:
//
//	result, err := frcmp.NewTestRequest(http.MethodPost, actionURL).
//	    WithFormData("reason", "lu").
//	    WithHeader("HX-Target", "notice-1").
//	    Execute(comp)
type TestRequestBuilder struct {
	method   string
	url      string
	formData map[string]string
	headers  map[string]string
	ctx      context.Context
}

// NewTestRequest creates a test request builder.
func NewTestRequest(method, url string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:   method,
		url:      url,
		formData: make(map[string]string),
		headers:  make(map[string]string),
		ctx:      context.Background(),
	}
}

// WithFormData adds one form value to the request.
func (b *TestRequestBuilder) WithFormData(key, value string) *TestRequestBuilder {
	b.formData[key] = value
	return b
}

// WithFormValues adds multiple form values to the request.
func (b *TestRequestBuilder) WithFormValues(data map[string]string) *TestRequestBuilder {
	for k, v := range data {
		b.formData[k] = v
	}
	return b
}

// WithHeader adds a header to the request.
func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers[key] = value
	return b
}

// WithContext sets the request context.
func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// Execute runs the request against the component's dispatch and
// collects the response.
func (b *TestRequestBuilder) Execute(comp Mountable) (*TestResult, error) {
	form := url.Values{}
	for k, v := range b.formData {
		form.Set(k, v)
	}

	req := httptest.NewRequest(b.method, b.url, strings.NewReader(form.Encode()))
	req = req.WithContext(b.ctx)
	req.Header.Set("HX-Request", "true")
	if len(b.formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	comp.ServeHTTP(rec, req)

	result := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "" {
		result.TriggeredEvents = parseTriggerHeader(trigger)
	}
	if redirect := rec.Header().Get("HX-Redirect"); redirect != "" {
		result.RedirectURL = redirect
	}
	result.Flashes = parseFlashesFromHTML(result.HTML)

	return result, nil
}

// parseTriggerHeader parses an HX-Trigger header value into event
// names. The header is either a bare name, a comma-separated list, or
// the JSON object form whose top-level keys are the events.
func parseTriggerHeader(trigger string) []string {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil
	}

	if strings.HasPrefix(trigger, "{") {
		var events []string
		// Scan for top-level keys only; values may nest objects.
		depth := 0
		inString := false
		stringStart := -1

		for i := 0; i < len(trigger); i++ {
			c := trigger[i]

			if inString && c == '\\' && i+1 < len(trigger) {
				i++
				continue
			}

			if c == '"' {
				if !inString {
					inString = true
					stringStart = i + 1
				} else {
					stringEnd := i
					inString = false

					if depth == 1 {
						j := i + 1
						for j < len(trigger) && (trigger[j] == ' ' || trigger[j] == '\t') {
							j++
						}
						// A key is a string followed by ':'.
						if j < len(trigger) && trigger[j] == ':' {
							events = append(events, trigger[stringStart:stringEnd])
						}
					}
					stringStart = -1
				}
			} else if !inString {
				if c == '{' {
					depth++
				} else if c == '}' {
					depth--
				}
			}
		}
		return events
	}

	parts := strings.Split(trigger, ",")
	events := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			events = append(events, p)
		}
	}
	return events
}

// parseFlashesFromHTML extracts flashes from the OOB alert markup
// RenderAlertsOOB produces: <div class="fr-alert fr-alert--LEVEL
// fr-alert--sm" ...><p>MESSAGE</p></div>.
func parseFlashesFromHTML(html string) []Flash {
	var flashes []Flash

	const prefix = `<div class="fr-alert fr-alert--`
	idx := 0
	for {
		start := strings.Index(html[idx:], prefix)
		if start == -1 {
			break
		}
		start += idx + len(prefix)

		levelEnd := strings.IndexAny(html[start:], ` "`)
		if levelEnd == -1 {
			break
		}
		level := html[start : start+levelEnd]

		contentStart := strings.Index(html[start:], "<p>")
		if contentStart == -1 {
			break
		}
		contentStart += start + len("<p>")

		contentEnd := strings.Index(html[contentStart:], "</p>")
		if contentEnd == -1 {
			break
		}
		message := html[contentStart : contentStart+contentEnd]

		flashes = append(flashes, Flash{Level: level, Message: message})
		idx = contentStart + contentEnd
	}

	return flashes
}

// MockHydrater wraps a component with a replacement hydration function,
// so tests inject data without real stores:
//
//	mock := frcmp.NewMockHydrater(comp, func(ctx context.Context, props *Props) error {
//	    props.Status = testStatus
//	    return nil
//	})
//	result, err := frcmp.TestRender[Props](mock, props)
type MockHydrater[P any] struct {
	Component    Lifecycle[P]
	HydrateFunc  func(ctx context.Context, props *P) error
	hydrateProps *P
}

// NewMockHydrater creates a MockHydrater wrapping comp.
func NewMockHydrater[P any](comp Lifecycle[P], hydrateFn func(ctx context.Context, props *P) error) *MockHydrater[P] {
	return &MockHydrater[P]{
		Component:   comp,
		HydrateFunc: hydrateFn,
	}
}

// Hydrate calls the replacement hydrate function.
func (m *MockHydrater[P]) Hydrate(ctx context.Context, props *P) error {
	m.hydrateProps = props
	return m.HydrateFunc(ctx, props)
}

// Render delegates to the wrapped component.
func (m *MockHydrater[P]) Render(ctx context.Context, props P) templ.Component {
	return m.Component.Render(ctx, props)
}

// LastHydratedProps returns the props from the last Hydrate call, for
// asserting what hydration saw.
func (m *MockHydrater[P]) LastHydratedProps() *P {
	return m.hydrateProps
}
