package main

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/pthm/frcmp"
	ui "github.com/pthm/frcmp/components"
	"github.com/pthm/frcmp/example/components"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"warn", "warn", zerolog.WarnLevel},
		{"empty falls back to info", "", zerolog.InfoLevel},
		{"unknown falls back to info", "verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := newLogger(tt.level)
			if got := log.GetLevel(); got != tt.want {
				t.Errorf("newLogger(%q).GetLevel() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "FRCMP_KEY", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if len(cfg.Key) != 32 {
		t.Errorf("default Key is %d bytes, want 32", len(cfg.Key))
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("FRCMP_KEY", "another-32-byte-demo-secret-key!")
	t.Setenv("LOG_LEVEL", "debug")

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.Key != "another-32-byte-demo-secret-key!" {
		t.Errorf("Key = %q, want the value from FRCMP_KEY", cfg.Key)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestPageRenders(t *testing.T) {
	kit := ui.MustKit()
	reg := frcmp.NewRegistry([]byte("0123456789abcdef0123456789abcdef"))
	components.Init(kit, NewStore(), ui.NewMemoryNoticeStore(), reg)

	html, err := frcmp.RenderString(context.Background(), page(""))
	if err != nil {
		t.Fatalf("page render error = %v", err)
	}

	for _, want := range []string{
		`<html lang="fr">`,
		"Mises à jour du service public",
		"Maintenance planifiée",
		"fr-notice--warning",
		"Prime à la rénovation énergétique",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
