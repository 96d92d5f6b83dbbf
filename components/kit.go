// Package components builds the design system's UI components as templ
// values: Notice, Alert, Badge, Card, Checkbox and Select, plus the
// server-dismissible notice wired through the frcmp action runtime.
//
// Components are methods on a Kit, the explicit setup object carrying
// the pieces every component shares: the i18n registry built-in texts
// resolve through, the link renderer navigation goes through, and a
// logger. Construct one kit at startup:
//
//	kit := components.MustKit(
//	    components.WithLinkRenderer(appRouter.Link),
//	    components.WithLogger(log),
//	)
//
//	@kit.Notice(components.NoticeProps{
//	    Severity: fr.NoticeSeverityWarning,
//	    Title:    "Vigilance orange",
//	})
//
// Class attributes always come from the generated fr vocabulary, ids
// from the analytics-safe allocator, and user-facing texts from the
// kit's message namespaces, so a host overriding the language,
// navigation or logging configures the kit once instead of every call
// site.
package components

import (
	"embed"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/pthm/frcmp"
	"github.com/pthm/frcmp/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// Kit holds the shared setup the components render with. Construct
// with NewKit; the zero value is not usable.
type Kit struct {
	reg  *i18n.Registry
	link frcmp.LinkRenderer
	log  zerolog.Logger

	notice *i18n.Namespace
	alert  *i18n.Namespace
	sel    *i18n.Namespace
}

// Option configures a Kit.
type Option func(*Kit)

// WithI18n replaces the kit's message registry. The registry must
// already carry the built-in component namespaces; load them with
// LoadBuiltinMessages before adding application namespaces:
//
//	reg := i18n.New(language.French)
//	components.LoadBuiltinMessages(reg)
//	kit, err := components.NewKit(components.WithI18n(reg))
func WithI18n(reg *i18n.Registry) Option {
	return func(k *Kit) {
		k.reg = reg
	}
}

// WithLinkRenderer routes every component link through fn. Hosts with
// their own navigation layer configure this once at setup; the default
// renders plain anchors.
func WithLinkRenderer(fn frcmp.LinkRenderer) Option {
	return func(k *Kit) {
		k.link = fn
	}
}

// WithLogger sets the kit's logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(k *Kit) {
		k.log = log
	}
}

// NewKit creates a component kit. Without options it carries the
// built-in French base and English messages and renders plain anchors.
//
// NewKit fails when the message registry does not cover the built-in
// component namespaces; that is a startup misconfiguration, surfaced
// before anything renders.
func NewKit(opts ...Option) (*Kit, error) {
	k := &Kit{
		link: frcmp.DefaultLink,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(k)
	}

	if k.reg == nil {
		reg := i18n.New(language.French)
		if err := LoadBuiltinMessages(reg); err != nil {
			return nil, err
		}
		k.reg = reg
	}

	for _, bind := range []struct {
		name string
		dst  **i18n.Namespace
	}{
		{"notice", &k.notice},
		{"alert", &k.alert},
		{"select", &k.sel},
	} {
		ns, ok := k.reg.Lookup(bind.name)
		if !ok {
			return nil, i18n.NewConfigError(bind.name, "built-in namespace missing from registry", nil)
		}
		*bind.dst = ns
	}

	return k, nil
}

// MustKit is NewKit, panicking on error.
func MustKit(opts ...Option) *Kit {
	k, err := NewKit(opts...)
	if err != nil {
		panic(err)
	}
	return k
}

// LoadBuiltinMessages loads the built-in component catalogs (French
// base plus English) into reg. NewKit calls it on the default registry;
// call it yourself when supplying a registry via WithI18n.
func LoadBuiltinMessages(reg *i18n.Registry) error {
	return reg.LoadFS(locales, "locales/*.yaml")
}

// I18n returns the kit's message registry, for resolving request
// languages and registering application namespaces alongside the
// built-in ones.
func (k *Kit) I18n() *i18n.Registry {
	return k.reg
}
