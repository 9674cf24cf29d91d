package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration. Values are taken from environment
// variables with the prefix "TABLEFRONT_".
// Example: TABLEFRONT_API_URL=https://api.example.com TABLEFRONT_LOG_LEVEL=debug .
type Config struct {
	// APIURL is the backend origin; all resource paths resolve under
	// "<APIURL>/api".
	APIURL      string        `envconfig:"API_URL"      default:"http://localhost:5000"`
	LogLevel    string        `envconfig:"LOG_LEVEL"    default:"info"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	// TokenFile is where CLI sessions persist the bearer token. Empty means
	// "<user config dir>/tablefront/token".
	TokenFile string `envconfig:"TOKEN_FILE"`
}

// Load populates Config from environment variables (prefix TABLEFRONT_).
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("TABLEFRONT", &c); err != nil {
		return Config{}, err
	}
	if c.TokenFile == "" {
		c.TokenFile = defaultTokenFile()
	}
	return c, nil
}

// Init initializes all application dependencies.
func (c Config) Init() {
	InitLogger()
	SetLogLevel(c.Level())

	log.Info().
		Str("api_url", c.APIURL).
		Str("token_file", c.TokenFile).
		Str("log_level", c.LogLevel).
		Msg("Application configuration loaded")
}

// Level parses LogLevel, defaulting to info on unknown values.
func (c Config) Level() zerolog.Level {
	switch c.LogLevel {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "tablefront", "token")
}
