package components

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/a-h/templ"

	"github.com/pthm/frcmp"
	"github.com/pthm/frcmp/fr"
)

// NoticeStore records which notices have been dismissed. The
// interactive notice consults it during hydration and writes to it from
// the dismiss action. Implementations choose the scope; the in-memory
// store is process-wide, a production store would key on the session.
type NoticeStore interface {
	Dismissed(ctx context.Context, noticeID string) (bool, error)
	SetDismissed(ctx context.Context, noticeID string) error
}

// MemoryNoticeStore is a process-wide NoticeStore for single-instance
// deployments and tests.
type MemoryNoticeStore struct {
	mu        sync.RWMutex
	dismissed map[string]bool
}

// NewMemoryNoticeStore creates an empty store.
func NewMemoryNoticeStore() *MemoryNoticeStore {
	return &MemoryNoticeStore{dismissed: make(map[string]bool)}
}

func (s *MemoryNoticeStore) Dismissed(ctx context.Context, noticeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dismissed[noticeID], nil
}

func (s *MemoryNoticeStore) SetDismissed(ctx context.Context, noticeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissed[noticeID] = true
	return nil
}

// DismissibleNoticeProps travel the wire for the interactive notice.
// ID names the notice in the store and must be stable across renders;
// Closed is filled during hydration and never encoded.
type DismissibleNoticeProps struct {
	ID       string
	Severity string
	Title    string
	Desc     string

	Closed bool
}

func (p DismissibleNoticeProps) EncodeProps() map[string]any {
	return map[string]any{
		"id":       p.ID,
		"severity": p.Severity,
		"title":    p.Title,
		"desc":     p.Desc,
	}
}

func (p *DismissibleNoticeProps) DecodeProps(data map[string]any) error {
	if v, ok := data["id"].(string); ok {
		p.ID = v
	}
	if v, ok := data["severity"].(string); ok {
		p.Severity = v
	}
	if v, ok := data["title"].(string); ok {
		p.Title = v
	}
	if v, ok := data["desc"].(string); ok {
		p.Desc = v
	}
	return nil
}

// DismissibleNotice is the server-backed notice banner: the close
// button posts to the action runtime, the dismissal lands in the store,
// and the swap removes the banner. Once dismissed, later renders
// produce nothing until the store forgets the id.
//
//	notice := components.NewDismissibleNotice(kit, store)
//	reg.Add(notice)
//
//	// In the page template:
//	@notice.View(components.DismissibleNoticeProps{
//	    ID:       "maintenance-2026-03",
//	    Severity: string(fr.NoticeSeverityWarning),
//	    Title:    "Maintenance planifiée",
//	})
type DismissibleNotice struct {
	*frcmp.Component[DismissibleNoticeProps]
	kit   *Kit
	store NoticeStore
}

// NewDismissibleNotice creates the component. Register it with a
// frcmp.Registry before rendering pages that embed it.
func NewDismissibleNotice(kit *Kit, store NoticeStore) *DismissibleNotice {
	c := &DismissibleNotice{
		Component: frcmp.New[DismissibleNoticeProps]("dismissible-notice"),
		kit:       kit,
		store:     store,
	}
	c.Action("dismiss", c.dismiss)
	c.Bind(c)
	return c
}

// Hydrate validates the props and loads the dismissal state. An empty
// id is rejected: without a stable name the dismissal could not be
// recorded.
func (c *DismissibleNotice) Hydrate(ctx context.Context, props *DismissibleNoticeProps) error {
	if props.ID == "" {
		return fmt.Errorf("notice id is required")
	}
	if props.Severity != "" && !fr.NoticeSeverity(props.Severity).Valid() {
		return fmt.Errorf("unknown notice severity %q", props.Severity)
	}

	dismissed, err := c.store.Dismissed(ctx, props.ID)
	if err != nil {
		return fmt.Errorf("load dismissal state: %w", err)
	}
	props.Closed = dismissed
	return nil
}

// Render produces the banner with a wired close button, or nothing once
// the notice has been dismissed.
func (c *DismissibleNotice) Render(ctx context.Context, props DismissibleNoticeProps) templ.Component {
	if props.Closed {
		return templ.NopComponent
	}
	return c.kit.Notice(NoticeProps{
		ID:       props.ID,
		Severity: fr.NoticeSeverity(props.Severity),
		Title:    props.Title,
		Desc:     props.Desc,
		Dismiss: DismissServer{
			Attrs: c.Wire("dismiss", props).
				TargetClosest("." + string(fr.Notice)).
				SwapDelete().
				Attrs(),
		},
	})
}

// View renders the notice inline for the initial page paint, running
// the same hydration a component request would. Later interactions go
// through the action runtime.
func (c *DismissibleNotice) View(props DismissibleNoticeProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := props
		if err := c.Hydrate(ctx, &p); err != nil {
			return err
		}
		return c.Render(ctx, p).Render(ctx, w)
	})
}

func (c *DismissibleNotice) dismiss(ctx context.Context, props DismissibleNoticeProps, r *http.Request) frcmp.Result[DismissibleNoticeProps] {
	if err := c.store.SetDismissed(ctx, props.ID); err != nil {
		return frcmp.Err(props, fmt.Errorf("record dismissal: %w", err))
	}
	return frcmp.Skip[DismissibleNoticeProps]().Trigger("notice:dismissed", map[string]any{"id": props.ID})
}
