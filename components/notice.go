package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp"
	"github.com/pthm/frcmp/fr"
)

// NoticeLink is the optional consultation link at the end of a notice.
type NoticeLink struct {
	Label string
	Href  string
	// Blank opens the link in a new tab.
	Blank bool
}

// NoticeProps configures Kit.Notice.
type NoticeProps struct {
	// ID overrides the generated root id. Set it where analytics or
	// anchors must address the notice under a stable name.
	ID string
	// Severity selects the banner variant; the zero value renders as
	// info. A value outside the stylesheet vocabulary panics at render,
	// like any unknown class token.
	Severity fr.NoticeSeverity
	Title    string
	// Desc is the body text after the title.
	Desc string
	// Link renders through the kit's link renderer.
	Link *NoticeLink
	// Dismiss selects the close behavior; nil means none.
	Dismiss Dismiss
	// Class appends caller classes to the root element.
	Class string
}

// Notice renders an information banner pinned above the page content.
// The returned component implements frcmp.HandleExposer with the root
// element's id.
//
// With DismissControlled{Closed: true} the component renders nothing;
// with DismissServer the close button carries the wired action's
// attributes and the server decides what replaces the banner.
func (k *Kit) Notice(props NoticeProps) templ.Component {
	id := frcmp.NewAutoID(props.ID, "fr-notice")
	comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if c, ok := props.Dismiss.(DismissControlled); ok && c.Closed {
			return nil
		}

		severity := props.Severity
		if severity == "" {
			severity = fr.NoticeSeverityInfo
		}

		if err := write(w,
			`<div class="`, frcmp.Classes(fr.Cx(fr.Notice, severity.ClassName()), props.Class), `" id="`, templ.EscapeString(id.String()), `">`,
			`<div class="`, fr.Cx(fr.Container), `">`,
			`<div class="`, fr.Cx(fr.NoticeBody), `">`,
			`<p>`,
			`<span class="`, fr.Cx(fr.NoticeTitle), `">`, templ.EscapeString(props.Title), `</span>`,
		); err != nil {
			return err
		}

		if props.Desc != "" {
			if err := write(w, `<span class="`, fr.Cx(fr.NoticeDesc), `">`, templ.EscapeString(props.Desc), `</span>`); err != nil {
				return err
			}
		}

		if props.Link != nil {
			attrs := templ.Attributes{"class": fr.Cx(fr.NoticeLink)}
			if props.Link.Blank {
				attrs["target"] = "_blank"
				attrs["rel"] = "noopener external"
			}
			link := k.link(props.Link.Href, attrs)
			if err := link.Render(templ.WithChildren(ctx, text(props.Link.Label)), w); err != nil {
				return err
			}
		}

		if err := write(w, `</p>`); err != nil {
			return err
		}

		switch d := props.Dismiss.(type) {
		case DismissControlled:
			if err := writeCloseButton(ctx, w, k.notice.Tr(ctx, "dismiss"), d.Attrs); err != nil {
				return err
			}
		case DismissServer:
			if err := writeCloseButton(ctx, w, k.notice.Tr(ctx, "dismiss"), d.Attrs); err != nil {
				return err
			}
		}

		return write(w, `</div></div></div>`)
	})
	return frcmp.WithHandle(comp, id.String())
}
