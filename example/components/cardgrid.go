package components

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp"
	ui "github.com/pthm/frcmp/components"
	"github.com/pthm/frcmp/fr"
)

// gridID is the stable root id the filter select targets.
const gridID = "article-cards"

// CardGridProps carries the selected theme across requests. Articles
// and Themes are loaded during hydration and never encoded.
type CardGridProps struct {
	Theme string

	Articles []Article
	Themes   []string
}

func (p CardGridProps) EncodeProps() map[string]any {
	return map[string]any{"theme": p.Theme}
}

func (p *CardGridProps) DecodeProps(data map[string]any) error {
	if v, ok := data["theme"].(string); ok {
		p.Theme = v
	}
	return nil
}

// CardGrid lists service updates as cards behind a theme filter. The
// select fires a GET action on change and the whole grid swaps, so a
// filter never loses the select state.
type CardGrid struct {
	*frcmp.Component[CardGridProps]
	kit   *ui.Kit
	store ArticleStore
}

// NewCardGrid creates the grid. Register it with a frcmp.Registry
// before rendering pages that embed it.
func NewCardGrid(kit *ui.Kit, store ArticleStore) *CardGrid {
	c := &CardGrid{
		Component: frcmp.New[CardGridProps](gridID),
		kit:       kit,
		store:     store,
	}
	c.Action("filter", c.filter).Method(http.MethodGet)
	c.Bind(c)
	return c
}

// Hydrate loads the theme list and the articles matching the filter.
func (c *CardGrid) Hydrate(ctx context.Context, props *CardGridProps) error {
	themes := c.store.Themes()
	if props.Theme != "" && !slices.Contains(themes, props.Theme) {
		return fmt.Errorf("unknown theme %q", props.Theme)
	}
	props.Themes = themes
	props.Articles = c.store.List(props.Theme)
	return nil
}

// Render produces the filter select and the card grid under one root,
// so the filter action can swap both together.
func (c *CardGrid) Render(ctx context.Context, props CardGridProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		options := make([]ui.SelectOption, 0, len(props.Themes)+1)
		options = append(options, ui.SelectOption{
			Label:    "Tous les thèmes",
			Value:    "",
			Selected: props.Theme == "",
		})
		for _, t := range props.Themes {
			options = append(options, ui.SelectOption{
				Label:    t,
				Value:    t,
				Selected: t == props.Theme,
			})
		}

		if err := write(w, `<div id="`, gridID, `">`); err != nil {
			return err
		}

		sel := c.kit.Select(ui.SelectProps{
			ID:      gridID + "-theme",
			Name:    "theme",
			Label:   "Thème",
			Hint:    "Filtrer les mises à jour par thème",
			Options: options,
			Class:   fr.Cx(fr.Mb4w),
			// htmx triggers selects on change; the select's own
			// name=value pair rides along in the query string.
			Attrs: c.Wire("filter", props).Target("#" + gridID).Attrs(),
		})
		if err := sel.Render(ctx, w); err != nil {
			return err
		}

		if len(props.Articles) == 0 {
			return write(w,
				`<p>Aucune mise à jour pour ce thème.</p>`,
				`</div>`,
			)
		}

		if err := write(w, `<div class="`, fr.Cx(fr.GridRow, fr.GridRowGutters), `">`); err != nil {
			return err
		}
		for _, a := range props.Articles {
			if err := write(w, `<div class="`, fr.Cx(fr.Col12, fr.ColMd6, fr.ColLg4), `">`); err != nil {
				return err
			}
			card := c.kit.Card(ui.CardProps{
				ID:      "article-" + a.ID,
				Title:   a.Title,
				Href:    "/articles/" + a.ID,
				Desc:    a.Desc,
				Detail:  "Publié le " + a.Date.Format("02/01/2006"),
				Start:   c.badges(a),
				Enlarge: true,
			})
			if err := card.Render(ctx, w); err != nil {
				return err
			}
			if err := write(w, `</div>`); err != nil {
				return err
			}
		}
		return write(w, `</div></div>`)
	})
}

// badges builds the card's badge group: the theme, plus a severity
// badge for fresh updates.
func (c *CardGrid) badges(a Article) templ.Component {
	badges := []templ.Component{
		c.kit.Badge(ui.BadgeProps{Label: a.Theme, Small: true, NoIcon: true}),
	}
	if a.New {
		badges = append(badges, c.kit.Badge(ui.BadgeProps{
			Label:    "Nouveau",
			Severity: fr.BadgeSeverityNew,
			Small:    true,
		}))
	}
	return c.kit.BadgeGroup(badges...)
}

// View renders the grid inline for the initial page paint, running the
// same hydration a component request would.
func (c *CardGrid) View(props CardGridProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := props
		if err := c.Hydrate(ctx, &p); err != nil {
			return err
		}
		return c.Render(ctx, p).Render(ctx, w)
	})
}

// filter applies the newly selected theme and reloads the articles.
// Hydration ran before this handler with the previous theme, so the
// reload is explicit.
func (c *CardGrid) filter(ctx context.Context, props CardGridProps, r *http.Request) frcmp.Result[CardGridProps] {
	props.Theme = r.FormValue("theme")
	if err := c.Hydrate(ctx, &props); err != nil {
		return frcmp.Err(props, err)
	}
	return frcmp.OK(props)
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
