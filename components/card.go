package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp"
	"github.com/pthm/frcmp/fr"
)

// CardImage is the illustration in a card's header.
type CardImage struct {
	Src string
	Alt string
}

// CardProps configures Kit.Card.
type CardProps struct {
	// ID overrides the generated root id.
	ID    string
	Title string
	// Href turns the title into a link, routed through the kit's link
	// renderer. Empty renders the title as plain text.
	Href string
	Desc string
	// Detail is the context line above the title (a date, a tag line).
	Detail string
	// EndDetail is the context line below the description.
	EndDetail string
	// Start renders before the detail line, typically a badge group.
	Start templ.Component
	// End renders before the end detail line.
	End templ.Component
	// Footer renders in the card's footer slot.
	Footer templ.Component
	Img    *CardImage
	// Horizontal lays the card out side by side instead of stacked.
	Horizontal bool
	// Small renders the compact variant.
	Small bool
	// Shadow adds the elevated variant.
	Shadow bool
	// Enlarge stretches the title link over the whole card surface.
	Enlarge bool
	// Class appends caller classes to the root element.
	Class string
}

// Card renders a clickable content card. The title link goes through
// the kit's link renderer; the returned component implements
// frcmp.HandleExposer with the root element's id.
//
// Source order follows the stylesheet's contract: the body renders
// before the header, and the stylesheet places the image visually
// first.
func (k *Kit) Card(props CardProps) templ.Component {
	id := frcmp.NewAutoID(props.ID, "fr-card")
	comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := frcmp.Classes(
			fr.Cx(
				fr.Card,
				fr.If(props.Horizontal, fr.CardHorizontal),
				fr.If(props.Small, fr.CardSm),
				fr.If(props.Shadow, fr.CardShadow),
				fr.If(props.Enlarge, fr.EnlargeLink),
			),
			props.Class,
		)
		if err := write(w,
			`<div class="`, class, `" id="`, templ.EscapeString(id.String()), `">`,
			`<div class="`, fr.Cx(fr.CardBody), `">`,
			`<div class="`, fr.Cx(fr.CardContent), `">`,
		); err != nil {
			return err
		}

		if props.Start != nil || props.Detail != "" {
			if err := write(w, `<div class="`, fr.Cx(fr.CardStart), `">`); err != nil {
				return err
			}
			if props.Start != nil {
				if err := props.Start.Render(ctx, w); err != nil {
					return err
				}
			}
			if props.Detail != "" {
				if err := write(w, `<p class="`, fr.Cx(fr.CardDetail), `">`, templ.EscapeString(props.Detail), `</p>`); err != nil {
					return err
				}
			}
			if err := write(w, `</div>`); err != nil {
				return err
			}
		}

		if err := write(w, `<h3 class="`, fr.Cx(fr.CardTitle), `">`); err != nil {
			return err
		}
		if props.Href != "" {
			link := k.link(props.Href, nil)
			if err := link.Render(templ.WithChildren(ctx, text(props.Title)), w); err != nil {
				return err
			}
		} else if err := write(w, templ.EscapeString(props.Title)); err != nil {
			return err
		}
		if err := write(w, `</h3>`); err != nil {
			return err
		}

		if props.Desc != "" {
			if err := write(w, `<p class="`, fr.Cx(fr.CardDesc), `">`, templ.EscapeString(props.Desc), `</p>`); err != nil {
				return err
			}
		}

		if props.End != nil || props.EndDetail != "" {
			if err := write(w, `<div class="`, fr.Cx(fr.CardEnd), `">`); err != nil {
				return err
			}
			if props.End != nil {
				if err := props.End.Render(ctx, w); err != nil {
					return err
				}
			}
			if props.EndDetail != "" {
				if err := write(w, `<p class="`, fr.Cx(fr.CardDetail), `">`, templ.EscapeString(props.EndDetail), `</p>`); err != nil {
					return err
				}
			}
			if err := write(w, `</div>`); err != nil {
				return err
			}
		}

		if err := write(w, `</div>`); err != nil {
			return err
		}

		if props.Footer != nil {
			if err := write(w, `<div class="`, fr.Cx(fr.CardFooter), `">`); err != nil {
				return err
			}
			if err := props.Footer.Render(ctx, w); err != nil {
				return err
			}
			if err := write(w, `</div>`); err != nil {
				return err
			}
		}

		if err := write(w, `</div>`); err != nil {
			return err
		}

		if props.Img != nil {
			if err := write(w,
				`<div class="`, fr.Cx(fr.CardHeader), `">`,
				`<div class="`, fr.Cx(fr.CardImg), `">`,
				`<img class="`, fr.Cx(fr.ResponsiveImg), `" src="`, templ.EscapeString(string(templ.URL(props.Img.Src))), `" alt="`, templ.EscapeString(props.Img.Alt), `">`,
				`</div></div>`,
			); err != nil {
				return err
			}
		}

		return write(w, `</div>`)
	})
	return frcmp.WithHandle(comp, id.String())
}
