package frcmp

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp/fr"
)

// Flash levels. These are the design system's alert severities, so a
// flash renders as a correctly-styled fr-alert without mapping.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash is a one-time notification attached to an action result.
//
// Flashes render as small design-system alerts swapped out-of-band into
// the #fr-alerts group, independently of the component markup the
// action returns:
//
//	return frcmp.OK(props).Flash(frcmp.FlashSuccess, "Préférences enregistrées")
//	return frcmp.Err(props, err).Flash(frcmp.FlashError, "Échec de l'enregistrement")
type Flash struct {
	Level   string // success, error, warning, info
	Message string
}

// RenderAlertsOOB renders flashes as out-of-band swap HTML appended to
// the #fr-alerts group. The framework appends this after the component
// body when a Result carries flashes.
//
// Each flash is a small alert. Levels must be alert severities; an empty
// level renders as info and anything else panics through the class
// vocabulary. data-auto-dismiss is read by the client extension, which
// removes the alert after the delay in milliseconds.
func RenderAlertsOOB(flashes []Flash) string {
	if len(flashes) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div id="fr-alerts" hx-swap-oob="beforeend">`)

	for _, f := range flashes {
		severity := fr.AlertSeverity(f.Level)
		if severity == "" {
			severity = fr.AlertSeverityInfo
		}
		sb.WriteString(`<div class="`)
		sb.WriteString(fr.Cx(fr.Alert, severity.ClassName(), fr.AlertSm))
		sb.WriteString(`" data-auto-dismiss="3000"><p>`)
		sb.WriteString(html.EscapeString(f.Message))
		sb.WriteString(`</p></div>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

// AlertGroup returns the container targeted by flash OOB swaps. Add it
// once to the page layout, typically near the end of <body>, and
// position it with host CSS:
//
//	@frcmp.AlertGroup()
func AlertGroup() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="fr-alerts"></div>`)
		return err
	})
}
