// Package i18n implements the per-component message registry for frcmp
// components.
//
// Each component owns a namespace: a base-language message table that
// defines the legal key set, plus any number of translated tables.
// Lookups resolve the active language from the request context, match
// it against the registered languages (so es-MX finds es), and fall
// back to the base table for anything a translation does not cover.
// A key missing from the base table is a structural error: it is
// logged and rendered as a visible ⟦key⟧ marker, never as blank text.
//
// The registry is an explicit object constructed at startup; there is
// no package-level instance. The components kit builds one with the
// built-in French and English catalogs; applications can construct
// their own and add namespaces for custom components:
//
//	reg := i18n.New(language.French)
//	ns := reg.MustNamespace("banner", i18n.Messages{
//	    "close": "Fermer",
//	})
//	ns.AddTranslations(language.English, i18n.Messages{
//	    "close": "Close",
//	})
package i18n

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Messages is one language's message table for a component: lookup key
// to message text.
type Messages map[string]string

// Registry holds the message namespaces of every registered component.
//
// Registration happens at startup (single writer); lookups are
// read-many and safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	base   language.Tag
	spaces map[string]*Namespace
	log    zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger missing-key lookups and catalog loads
// report through. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(reg *Registry) {
		reg.log = log
	}
}

// New creates a registry whose reference language is base. Every
// namespace's base table is in this language, and lookups fall back to
// it when no registered language matches.
func New(base language.Tag, opts ...Option) *Registry {
	reg := &Registry{
		base:   base,
		spaces: make(map[string]*Namespace),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Base returns the registry's reference language.
func (reg *Registry) Base() language.Tag {
	return reg.base
}

// Namespace registers a component's base-language table and returns the
// handle the component translates through. The base table defines the
// legal key set for the namespace: AddTranslations rejects keys outside
// it. Registering the same component twice is a configuration error.
func (reg *Registry) Namespace(component string, base Messages) (*Namespace, error) {
	if component == "" {
		return nil, NewConfigError(component, "component name is required", nil)
	}
	if len(base) == 0 {
		return nil, NewConfigError(component, "base message table is required", nil)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.spaces[component]; exists {
		return nil, NewConfigError(component, "namespace already registered", nil)
	}

	ns := &Namespace{
		reg:       reg,
		component: component,
		base:      copyMessages(base),
		tables:    make(map[language.Tag]Messages),
	}
	ns.rebuildLocked()
	reg.spaces[component] = ns
	return ns, nil
}

// MustNamespace is Namespace, panicking on error. For initializing
// built-in component namespaces where a failure is a programming error.
func (reg *Registry) MustNamespace(component string, base Messages) *Namespace {
	ns, err := reg.Namespace(component, base)
	if err != nil {
		panic(err)
	}
	return ns
}

// Lookup returns a registered namespace by component name.
func (reg *Registry) Lookup(component string) (*Namespace, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	ns, ok := reg.spaces[component]
	return ns, ok
}

// Reset removes every namespace. Explicit teardown for tests that
// register components repeatedly against a shared registry.
func (reg *Registry) Reset() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.spaces = make(map[string]*Namespace)
}

// Tags returns the distinct languages registered across all namespaces,
// base first, the rest in stable order.
func (reg *Registry) Tags() []language.Tag {
	reg.mu.RLock()
	spaces := make([]*Namespace, 0, len(reg.spaces))
	for _, ns := range reg.spaces {
		spaces = append(spaces, ns)
	}
	reg.mu.RUnlock()

	seen := map[language.Tag]bool{reg.base: true}
	var rest []language.Tag
	for _, ns := range spaces {
		for _, tag := range ns.Languages() {
			if !seen[tag] {
				seen[tag] = true
				rest = append(rest, tag)
			}
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })

	return append([]language.Tag{reg.base}, rest...)
}

// Namespace is one component's message tables across languages. Obtain
// one from Registry.Namespace; the zero value is not usable.
type Namespace struct {
	reg       *Registry
	component string

	mu      sync.RWMutex
	base    Messages
	tables  map[language.Tag]Messages
	tags    []language.Tag // base first
	matcher language.Matcher
}

// Component returns the component name the namespace belongs to.
func (ns *Namespace) Component() string {
	return ns.component
}

// AddTranslations registers msgs for tag. Keys must exist in the base
// table; unknown keys are a configuration error naming them. A language
// registered twice keeps the last table. The base language itself
// cannot be re-registered here; its table is fixed at Namespace time.
func (ns *Namespace) AddTranslations(tag language.Tag, msgs Messages) error {
	if tag == ns.reg.base {
		return NewConfigError(ns.component,
			fmt.Sprintf("language %s is the base language; its table is defined by Namespace", tag), nil)
	}
	if len(msgs) == 0 {
		return NewConfigError(ns.component,
			fmt.Sprintf("empty message table for language %s", tag), nil)
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	var unknown []string
	for key := range msgs {
		if _, ok := ns.base[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return NewConfigError(ns.component,
			fmt.Sprintf("language %s has keys outside the base table: %s", tag, strings.Join(unknown, ", ")), nil)
	}

	ns.tables[tag] = copyMessages(msgs)
	ns.rebuildLocked()
	return nil
}

// rebuildLocked recomputes the matcher tag list. Caller holds mu (or
// has exclusive access during construction).
func (ns *Namespace) rebuildLocked() {
	rest := make([]language.Tag, 0, len(ns.tables))
	for tag := range ns.tables {
		rest = append(rest, tag)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })

	ns.tags = append([]language.Tag{ns.reg.base}, rest...)
	ns.matcher = language.NewMatcher(ns.tags)
}

// Tr resolves key in the language carried by ctx (see WithLanguage),
// falling back to the base language when the context carries none.
// Lookup never fails visibly: a missing key renders as ⟦key⟧.
func (ns *Namespace) Tr(ctx context.Context, key string) string {
	tag, ok := Language(ctx)
	if !ok {
		tag = ns.reg.base
	}
	return ns.TrTag(tag, key)
}

// TrTag resolves key for an explicit language. The closest registered
// language serves first (es-MX finds es); keys its table does not cover
// fall back to the base table. A key absent from the base table is a
// structural error: logged, and returned as ⟦key⟧ so the gap shows in
// rendered output instead of disappearing.
func (ns *Namespace) TrTag(tag language.Tag, key string) string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	_, idx, _ := ns.matcher.Match(tag)
	if idx > 0 {
		if msg, ok := ns.tables[ns.tags[idx]][key]; ok {
			return msg
		}
	}
	if msg, ok := ns.base[key]; ok {
		return msg
	}

	ns.reg.log.Error().
		Str("component", ns.component).
		Str("key", key).
		Msg("message key missing from base table")
	return "⟦" + key + "⟧"
}

// Languages returns the languages this namespace serves, base first.
func (ns *Namespace) Languages() []language.Tag {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	out := make([]language.Tag, len(ns.tags))
	copy(out, ns.tags)
	return out
}

func copyMessages(src Messages) Messages {
	out := make(Messages, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
