// Command example runs the frcmp demo: a service-updates page built
// from kit components, with a theme filter, a dismissible maintenance
// notice and a language switcher.
package main

import (
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/pthm/frcmp"
	ui "github.com/pthm/frcmp/components"
	"github.com/pthm/frcmp/example/components"
	"github.com/pthm/frcmp/fr"
)

type config struct {
	Addr string `env:"ADDR" envDefault:":8080"`
	// Key encrypts component props on the wire. The default is for
	// development only; real deployments must set their own 32-byte
	// secret.
	Key      string `env:"FRCMP_KEY" envDefault:"frcmp-demo-key-must-be-32-bytes!"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg config
	err := env.Parse(&cfg)

	log := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("parse env")
	}

	// The embedded stylesheet ships with the module; verifying it here
	// catches a mismatched build before the first page renders.
	fr.MustVerifyStylesheet(frcmp.Stylesheet)

	kit := ui.MustKit(ui.WithLogger(log))

	store := NewStore()
	notices := ui.NewMemoryNoticeStore()

	reg := frcmp.NewRegistry([]byte(cfg.Key), frcmp.WithLogger(log))
	components.Init(kit, store, notices, reg)

	mux := http.NewServeMux()
	mux.Handle(frcmp.RoutePrefix, reg.Handler())
	mux.HandleFunc("/", handleIndex)
	mux.HandleFunc("/assets/dsfr.min.css", handleStylesheet)

	log.Info().Str("addr", cfg.Addr).Msg("starting demo server")
	if err := http.ListenAndServe(cfg.Addr, kit.I18n().Middleware(mux)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newLogger builds the demo's console logger. Unknown or empty level
// names fall back to info.
func newLogger(levelStr string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	// The theme filter reads from the URL so full page loads land on
	// the same view the select navigated to.
	frcmp.Render(w, r, page(r.URL.Query().Get("theme")))
}

func handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(frcmp.Stylesheet)
}
