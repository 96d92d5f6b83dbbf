package components

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm/frcmp/fr"
)

func TestBadgePlain(t *testing.T) {
	kit := MustKit()
	html := render(t, context.Background(), kit.Badge(BadgeProps{Label: "Brouillon"}))

	assert.Equal(t, `<p class="fr-badge">Brouillon</p>`, html)
}

func TestBadgeSeverity(t *testing.T) {
	kit := MustKit()
	tests := []struct {
		severity fr.BadgeSeverity
		class    string
	}{
		{fr.BadgeSeverityError, "fr-badge--error"},
		{fr.BadgeSeverityInfo, "fr-badge--info"},
		{fr.BadgeSeverityNew, "fr-badge--new"},
		{fr.BadgeSeveritySuccess, "fr-badge--success"},
		{fr.BadgeSeverityWarning, "fr-badge--warning"},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			html := render(t, context.Background(), kit.Badge(BadgeProps{
				Label:    "Statut",
				Severity: tt.severity,
			}))
			assert.Contains(t, html, `class="fr-badge `+tt.class+`"`)
		})
	}
}

func TestBadgeModifiers(t *testing.T) {
	kit := MustKit()
	html := render(t, context.Background(), kit.Badge(BadgeProps{
		Label:    "Validé",
		Severity: fr.BadgeSeveritySuccess,
		Small:    true,
		NoIcon:   true,
	}))

	assert.Contains(t, html, `class="fr-badge fr-badge--success fr-badge--sm fr-badge--no-icon"`)
}

func TestBadgeEscapesLabel(t *testing.T) {
	kit := MustKit()
	html := render(t, context.Background(), kit.Badge(BadgeProps{Label: "<em>html</em>"}))

	assert.NotContains(t, html, "<em>")
	assert.Contains(t, html, "&lt;em&gt;html&lt;/em&gt;")
}

func TestBadgeGroup(t *testing.T) {
	kit := MustKit()
	html := render(t, context.Background(), kit.BadgeGroup(
		kit.Badge(BadgeProps{Label: "Nouveau", Severity: fr.BadgeSeverityNew}),
		kit.Badge(BadgeProps{Label: "Santé"}),
	))

	assert.Contains(t, html, `<ul class="fr-badges-group">`)
	assert.Contains(t, html, `<li><p class="fr-badge fr-badge--new">Nouveau</p></li>`)
	assert.Contains(t, html, `<li><p class="fr-badge">Santé</p></li>`)
}

func TestBadgeGroupEmpty(t *testing.T) {
	kit := MustKit()
	html := render(t, context.Background(), kit.BadgeGroup())

	assert.Equal(t, `<ul class="fr-badges-group"></ul>`, html)
}
