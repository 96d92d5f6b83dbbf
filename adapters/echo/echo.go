// Package frcmpecho mounts frcmp component routes on an Echo app.
//
//	e := echo.New()
//	reg := frcmpecho.Mount(e, frcmpecho.WithKey(key))
//	reg.Add(statusNotice, cardList)
//
// Component URLs always live under frcmp.RoutePrefix, so the handler is
// mounted there. To share middleware with the component routes, mount on
// a group created with an empty prefix:
//
//	g := e.Group("", authMiddleware)
//	reg := frcmpecho.MountGroup(g, frcmpecho.WithKey(key))
package frcmpecho

import (
	"crypto/rand"
	"fmt"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/frcmp"
	"github.com/pthm/frcmp/i18n"
)

// Option configures Mount and MountGroup.
type Option func(*options)

type options struct {
	key     []byte
	regOpts []frcmp.RegistryOption
}

// WithKey sets the props encryption key, at least 32 bytes of
// cryptographically random data. Without it a random key is generated,
// which invalidates every component URL on restart; fine for
// development, wrong for production.
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithRegistryOptions forwards options to the underlying registry, such
// as frcmp.WithLogger.
func WithRegistryOptions(opts ...frcmp.RegistryOption) Option {
	return func(o *options) {
		o.regOpts = append(o.regOpts, opts...)
	}
}

// Mount creates a registry and mounts its handler on an Echo instance
// under frcmp.RoutePrefix.
func Mount(e *echo.Echo, opts ...Option) *frcmp.Registry {
	reg := newRegistry(opts)
	e.Any(frcmp.RoutePrefix+"*", echo.WrapHandler(reg.Handler()))
	return reg
}

// MountGroup mounts the handler on an Echo group so component routes
// share the group's middleware. The group must not add a path prefix:
// component URLs are absolute under frcmp.RoutePrefix.
func MountGroup(g *echo.Group, opts ...Option) *frcmp.Registry {
	reg := newRegistry(opts)
	g.Any(frcmp.RoutePrefix+"*", echo.WrapHandler(reg.Handler()))
	return reg
}

func newRegistry(opts []Option) *frcmp.Registry {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("frcmpecho: failed to generate random key: %v", err))
		}
	}

	return frcmp.NewRegistry(key, o.regOpts...)
}

// Language returns Echo middleware that resolves the request language
// through the translation registry and stores it on the request
// context, where component rendering picks it up.
//
//	e.Use(frcmpecho.Language(translations))
func Language(reg *i18n.Registry) echo.MiddlewareFunc {
	return echo.WrapMiddleware(reg.Middleware)
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return frcmpecho.Render(c, kit.Alert(props))
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
