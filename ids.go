package frcmp

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// idCounter feeds generated ids. Process-wide so two components with the
// same prefix never collide within one page render.
var idCounter atomic.Uint64

// AutoID allocates a stable DOM id for one component instance.
//
// An explicit id always wins and is returned unchanged - the caller
// asserts its uniqueness. Otherwise the first String call allocates
// "<prefix>-<n>" from the process-wide counter and every later call on
// the same instance returns the same value, so ids survive re-renders
// and aria wiring (aria-describedby, htmlFor) stays consistent.
//
// Generated ids are unique within a process, not across restarts. Use an
// explicit id where analytics need a stable name across deploys.
type AutoID struct {
	explicit string
	prefix   string
	once     sync.Once
	id       string
}

// NewAutoID returns an allocator that yields explicit when non-empty and
// otherwise generates from prefix.
func NewAutoID(explicit, prefix string) *AutoID {
	return &AutoID{explicit: explicit, prefix: prefix}
}

// String returns the allocated id, allocating on first use.
func (a *AutoID) String() string {
	if a.explicit != "" {
		return a.explicit
	}
	a.once.Do(func() {
		a.id = a.prefix + "-" + strconv.FormatUint(idCounter.Add(1), 10)
	})
	return a.id
}
