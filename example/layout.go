package main

import (
	"context"
	"io"

	"github.com/a-h/templ"

	ui "github.com/pthm/frcmp/components"
	"github.com/pthm/frcmp/example/components"
	"github.com/pthm/frcmp/fr"
	"github.com/pthm/frcmp/i18n"
)

// page wraps the demo content in the HTML shell: stylesheet, htmx, a
// maintenance notice and the language switcher. Theme preselects the
// card grid's filter and comes from the URL, which stays the source of
// truth for full page loads.
func page(theme string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := "fr"
		if tag, ok := i18n.Language(ctx); ok {
			lang = tag.String()
		}

		if err := write(w,
			`<!DOCTYPE html>`,
			`<html lang="`, templ.EscapeString(lang), `">`,
			`<head>`,
			`<meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>Mises à jour du service public</title>`,
			`<link rel="stylesheet" href="/assets/dsfr.min.css">`,
			`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`,
			`</head>`,
			`<body>`,
		); err != nil {
			return err
		}

		notice := components.C.Notice.View(ui.DismissibleNoticeProps{
			ID:       "maintenance-2026-09",
			Severity: string(fr.NoticeSeverityWarning),
			Title:    "Maintenance planifiée",
			Desc:     "Le service sera indisponible dimanche de 6 h à 8 h.",
		})
		if err := notice.Render(ctx, w); err != nil {
			return err
		}

		if err := write(w,
			`<header class="`, fr.Cx(fr.Container, fr.Mt4w, fr.Mb4w), `">`,
			`<nav aria-label="Sélection de la langue">`,
			`<a class="`, fr.Cx(fr.Link, fr.LinkSm), `" href="/?lang=fr" hreflang="fr">Français</a> `,
			`<a class="`, fr.Cx(fr.Link, fr.LinkSm), `" href="/?lang=en" hreflang="en">English</a>`,
			`</nav>`,
			`<h1>Mises à jour du service public</h1>`,
			`<p>Les dernières évolutions des démarches et services, par thème.</p>`,
			`</header>`,
			`<main class="`, fr.Cx(fr.Container, fr.Mb4w), `">`,
		); err != nil {
			return err
		}

		grid := components.C.Cards.View(components.CardGridProps{Theme: theme})
		if err := grid.Render(ctx, w); err != nil {
			return err
		}

		return write(w, `</main></body></html>`)
	})
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
