package frcmp

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"
)

// Registry mounts components and routes requests to them.
//
// Components are registered explicitly at startup; the registry wires
// each one to the shared props encoder and a scoped logger, then serves
// everything under the component path prefix:
//
//	reg := frcmp.NewRegistry(key, frcmp.WithLogger(log))
//	reg.Add(statusNotice, cardList)
//	http.Handle("/_c/", reg.Handler())
type Registry struct {
	mu         sync.RWMutex
	mux        *http.ServeMux
	encoder    *Encoder
	components map[string]Mountable
	log        zerolog.Logger

	// OnError handles errors surfaced by component dispatch: decode
	// failures, hydration errors and handler Err results. Replace it to
	// render application-specific error markup.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger the registry and its components log
// through. The default discards everything.
func WithLogger(log zerolog.Logger) RegistryOption {
	return func(reg *Registry) {
		reg.log = log
	}
}

// NewRegistry creates a registry whose props encoder uses the given
// encryption key. Panics when the key cannot seed a cipher; there is no
// meaningful way to continue without the codec.
func NewRegistry(encryptionKey []byte, opts ...RegistryOption) *Registry {
	enc, err := NewEncoder(encryptionKey)
	if err != nil {
		panic(fmt.Sprintf("frcmp: failed to create encoder: %v", err))
	}

	reg := &Registry{
		mux:        http.NewServeMux(),
		encoder:    enc,
		components: make(map[string]Mountable),
		log:        zerolog.Nop(),
	}
	reg.OnError = defaultOnError

	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// defaultOnError maps dispatch errors to plain HTTP errors. Tampered or
// stale props URLs are client errors, not server faults.
func defaultOnError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsNotFound(err):
		http.Error(w, "Not found", http.StatusNotFound)
	case IsDecryptionError(err):
		http.Error(w, "Bad request", http.StatusBadRequest)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// Encoder returns the registry's props encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Add registers components. Every component must embed *Component[P]
// with a lifecycle bound via Bind; the Mountable constraint enforces
// the embedding at compile time, Bind is checked here. Panics on an
// unbound component or a prefix collision - both are wiring mistakes
// that must not survive startup.
func (reg *Registry) Add(components ...Mountable) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, comp := range components {
		reg.register(comp)
	}
}

func (reg *Registry) register(comp Mountable) {
	prefix := comp.Prefix()
	if _, exists := reg.components[prefix]; exists {
		panic(fmt.Sprintf("frcmp: prefix collision for %q", prefix))
	}

	comp.configure(reg)
	reg.components[prefix] = comp
	reg.mux.Handle(prefix+"/", comp)
	reg.log.Debug().Str("prefix", prefix).Msg("component registered")
}

// Handler returns the HTTP handler for component routes. Mount it at
// the component path prefix, typically "/_c/".
//
// Mutating methods require the HX-Request header HTMX sends with every
// request. Browsers performing cross-origin form posts cannot set it,
// which gives CSRF protection without token plumbing.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if r.Header.Get("HX-Request") != "true" {
				http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
				return
			}
		}
		reg.mux.ServeHTTP(w, r)
	})
}
