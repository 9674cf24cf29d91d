package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://localhost:5000" {
		t.Fatalf("APIURL default = %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("HTTPTimeout default = %v", cfg.HTTPTimeout)
	}
	if cfg.TokenFile == "" {
		t.Fatalf("TokenFile default not computed")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TABLEFRONT_API_URL", "https://api.example.com")
	t.Setenv("TABLEFRONT_LOG_LEVEL", "debug")
	t.Setenv("TABLEFRONT_TOKEN_FILE", "/tmp/tf-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://api.example.com" {
		t.Fatalf("APIURL override lost: %q", cfg.APIURL)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Fatalf("Level() = %v", cfg.Level())
	}
	if cfg.TokenFile != "/tmp/tf-token" {
		t.Fatalf("TokenFile override lost: %q", cfg.TokenFile)
	}
}

func TestLevelFallsBackToInfo(t *testing.T) {
	c := Config{LogLevel: "verbose"}
	if c.Level() != zerolog.InfoLevel {
		t.Fatalf("unknown level should map to info")
	}
}
