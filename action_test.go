package frcmp

import (
	"strings"
	"testing"
	"time"
)

func TestNewAction(t *testing.T) {
	a := NewAction("/_c/notice-abc123/dismiss?p=xyz", "POST")

	if a.URL() != "/_c/notice-abc123/dismiss?p=xyz" {
		t.Errorf("URL() = %q, want %q", a.URL(), "/_c/notice-abc123/dismiss?p=xyz")
	}

	attrs := a.Attrs()
	if attrs["hx-post"] != "/_c/notice-abc123/dismiss?p=xyz" {
		t.Errorf("attrs[hx-post] = %v, want the action URL", attrs["hx-post"])
	}
	if attrs["hx-swap"] != string(SwapOuter) {
		t.Errorf("attrs[hx-swap] = %v, want %q (default)", attrs["hx-swap"], SwapOuter)
	}
}

func TestActionMethods(t *testing.T) {
	tests := []struct {
		method   string
		wantAttr string
	}{
		{"GET", "hx-get"},
		{"POST", "hx-post"},
		{"PUT", "hx-put"},
		{"PATCH", "hx-patch"},
		{"DELETE", "hx-delete"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			a := NewAction("/test", tt.method)
			attrs := a.Attrs()

			if attrs[tt.wantAttr] != "/test" {
				t.Errorf("attrs[%s] = %v, want /test", tt.wantAttr, attrs[tt.wantAttr])
			}
		})
	}
}

func TestActionTarget(t *testing.T) {
	tests := []struct {
		name   string
		action *Action
		want   string
	}{
		{"Target", NewAction("/t", "GET").Target("#notice-zone"), "#notice-zone"},
		{"TargetThis", NewAction("/t", "GET").TargetThis(), "this"},
		{"TargetClosest", NewAction("/t", "GET").TargetClosest(".fr-notice"), "closest .fr-notice"},
		{"TargetFind", NewAction("/t", "GET").TargetFind(".fr-notice__body"), "find .fr-notice__body"},
		{"TargetNext", NewAction("/t", "GET").TargetNext(".fr-card"), "next .fr-card"},
		{"TargetPrevious", NewAction("/t", "GET").TargetPrevious(".fr-card"), "previous .fr-card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := tt.action.Attrs()
			if attrs["hx-target"] != tt.want {
				t.Errorf("attrs[hx-target] = %v, want %q", attrs["hx-target"], tt.want)
			}
		})
	}
}

func TestActionSwap(t *testing.T) {
	tests := []struct {
		name   string
		action *Action
		want   SwapMode
	}{
		{"SwapOuter", NewAction("/t", "GET").SwapOuter(), SwapOuter},
		{"SwapInner", NewAction("/t", "GET").SwapInner(), SwapInner},
		{"SwapBeforeEnd", NewAction("/t", "GET").SwapBeforeEnd(), SwapBeforeEnd},
		{"SwapAfterEnd", NewAction("/t", "GET").SwapAfterEnd(), SwapAfterEnd},
		{"SwapBeforeBegin", NewAction("/t", "GET").SwapBeforeBegin(), SwapBeforeBegin},
		{"SwapAfterBegin", NewAction("/t", "GET").SwapAfterBegin(), SwapAfterBegin},
		{"SwapDelete", NewAction("/t", "GET").SwapDelete(), SwapDelete},
		{"SwapNone", NewAction("/t", "GET").SwapNone(), SwapNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := tt.action.Attrs()
			if attrs["hx-swap"] != string(tt.want) {
				t.Errorf("attrs[hx-swap] = %v, want %q", attrs["hx-swap"], tt.want)
			}
		})
	}
}

func TestActionTriggers(t *testing.T) {
	t.Run("Every", func(t *testing.T) {
		a := NewAction("/t", "GET").Every(30 * time.Second)
		attrs := a.Attrs()
		if attrs["hx-trigger"] != "every 30s" {
			t.Errorf("attrs[hx-trigger] = %v, want %q", attrs["hx-trigger"], "every 30s")
		}
	})

	t.Run("OnEvent", func(t *testing.T) {
		a := NewAction("/t", "GET").OnEvent("notice:dismissed")
		attrs := a.Attrs()
		if attrs["hx-trigger"] != "notice:dismissed from:body" {
			t.Errorf("attrs[hx-trigger] = %v, want %q", attrs["hx-trigger"], "notice:dismissed from:body")
		}
	})

	t.Run("OnLoad", func(t *testing.T) {
		a := NewAction("/t", "GET").OnLoad()
		attrs := a.Attrs()
		if attrs["hx-trigger"] != "load" {
			t.Errorf("attrs[hx-trigger] = %v, want %q", attrs["hx-trigger"], "load")
		}
	})

	t.Run("OnIntersect", func(t *testing.T) {
		a := NewAction("/t", "GET").OnIntersect()
		attrs := a.Attrs()
		if attrs["hx-trigger"] != "intersect once" {
			t.Errorf("attrs[hx-trigger] = %v, want %q", attrs["hx-trigger"], "intersect once")
		}
	})

	t.Run("OnRevealed", func(t *testing.T) {
		a := NewAction("/t", "GET").OnRevealed()
		attrs := a.Attrs()
		if attrs["hx-trigger"] != "revealed" {
			t.Errorf("attrs[hx-trigger] = %v, want %q", attrs["hx-trigger"], "revealed")
		}
	})
}

func TestActionUX(t *testing.T) {
	t.Run("Confirm", func(t *testing.T) {
		a := NewAction("/t", "DELETE").Confirm("Confirmez-vous la suppression ?")
		attrs := a.Attrs()
		if attrs["hx-confirm"] != "Confirmez-vous la suppression ?" {
			t.Errorf("attrs[hx-confirm] = %v", attrs["hx-confirm"])
		}
	})

	t.Run("Indicator", func(t *testing.T) {
		a := NewAction("/t", "POST").Indicator("#spinner")
		attrs := a.Attrs()
		if attrs["hx-indicator"] != "#spinner" {
			t.Errorf("attrs[hx-indicator] = %v, want #spinner", attrs["hx-indicator"])
		}
	})

	t.Run("PushURL", func(t *testing.T) {
		a := NewAction("/t", "GET").PushURL()
		attrs := a.Attrs()
		if attrs["hx-push-url"] != "true" {
			t.Errorf("attrs[hx-push-url] = %v, want true", attrs["hx-push-url"])
		}
	})

	t.Run("Vals", func(t *testing.T) {
		a := NewAction("/t", "POST").Vals(map[string]any{"categorie": "sante"})
		attrs := a.Attrs()
		vals, ok := attrs["hx-vals"].(string)
		if !ok {
			t.Fatalf("attrs[hx-vals] is %T, want string", attrs["hx-vals"])
		}
		if !strings.Contains(vals, `"categorie":"sante"`) {
			t.Errorf("attrs[hx-vals] = %v, want JSON with categorie", vals)
		}
	})
}

func TestActionAsLink(t *testing.T) {
	a := NewAction("/_c/card-abc123?p=xyz", "GET")
	attrs := a.AsLink()

	if attrs["href"] != "/_c/card-abc123?p=xyz" {
		t.Errorf("AsLink()[href] = %v, want the action URL", attrs["href"])
	}
	if len(attrs) != 1 {
		t.Errorf("AsLink() returned %d attrs, want 1", len(attrs))
	}
}

func TestActionChaining(t *testing.T) {
	a := NewAction("/_c/notice-abc123/dismiss", "POST").
		TargetClosest(".fr-notice").
		SwapDelete().
		Confirm("Masquer cet avis ?").
		Indicator("#spinner")

	attrs := a.Attrs()
	if attrs["hx-post"] != "/_c/notice-abc123/dismiss" {
		t.Errorf("attrs[hx-post] = %v", attrs["hx-post"])
	}
	if attrs["hx-target"] != "closest .fr-notice" {
		t.Errorf("attrs[hx-target] = %v", attrs["hx-target"])
	}
	if attrs["hx-swap"] != string(SwapDelete) {
		t.Errorf("attrs[hx-swap] = %v", attrs["hx-swap"])
	}
	if attrs["hx-confirm"] != "Masquer cet avis ?" {
		t.Errorf("attrs[hx-confirm] = %v", attrs["hx-confirm"])
	}
	if attrs["hx-indicator"] != "#spinner" {
		t.Errorf("attrs[hx-indicator] = %v", attrs["hx-indicator"])
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "500ms"},
		{time.Second, "1s"},
		{30 * time.Second, "30s"},
		{2 * time.Minute, "120s"},
		{1500 * time.Millisecond, "1s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatDuration(tt.d)
			if got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
