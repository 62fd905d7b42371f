// Package config loads dispatcher settings from the environment and
// optional .env files.
//
// Variables carry the NAVI_ prefix:
//
//	NAVI_BASE_PATH         prefix stripped from request paths
//	NAVI_SELECTION         last, first or specific (default last)
//	NAVI_STRICT_SLASH      accept templates with or without a trailing slash
//	NAVI_SCROLL_ON_RELOAD  scroll to the top after Reload
//	NAVI_LOG_LEVEL         zap level (default info)
//	NAVI_LOG_FORMAT        json or console (default console)
//	NAVI_MANIFEST          path of a YAML route manifest
//
// Values already present in the process environment take precedence over
// values read from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vitalvas/navi/router"
)

// Prefix is prepended to every variable name.
const Prefix = "NAVI_"

// DefaultEnvFile is read by Load when no files are given. It may be absent.
const DefaultEnvFile = ".env"

// Config holds dispatcher settings.
type Config struct {
	BasePath       string               `env:"BASE_PATH"`
	Selection      router.SelectionMode `env:"SELECTION" envDefault:"last"`
	StrictSlash    bool                 `env:"STRICT_SLASH"`
	ScrollOnReload bool                 `env:"SCROLL_ON_RELOAD"`
	LogLevel       zapcore.Level        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string               `env:"LOG_FORMAT" envDefault:"console"`
	Manifest       string               `env:"MANIFEST"`
}

// Load reads the given .env files, or DefaultEnvFile when none are given,
// and parses the environment into a Config. A missing DefaultEnvFile is not
// an error; a missing explicit file is.
func Load(files ...string) (*Config, error) {
	dotenv, err := readEnvFiles(files)
	if err != nil {
		return nil, err
	}

	environ := env.ToMap(os.Environ())
	for k, v := range environ {
		dotenv[k] = v
	}

	return Parse(dotenv)
}

// Parse builds a Config from an explicit variable map. It does not consult
// the process environment.
func Parse(environ map[string]string) (*Config, error) {
	var cfg Config

	err := env.ParseWithOptions(&cfg, env.Options{
		Environment: environ,
		Prefix:      Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the parser accepts but the dispatcher does not.
func (c *Config) Validate() error {
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("config: %sBASE_PATH must start with '/', got %q", Prefix, c.BasePath)
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("config: %sLOG_FORMAT must be json or console, got %q", Prefix, c.LogFormat)
	}

	return nil
}

// RouterOptions converts the configuration into dispatcher options.
func (c *Config) RouterOptions() []router.Option {
	return []router.Option{
		router.WithBasePath(strings.TrimSuffix(c.BasePath, "/")),
		router.WithSelection(c.Selection),
		router.WithStrictSlash(c.StrictSlash),
		router.WithScrollOnReload(c.ScrollOnReload),
	}
}

// Logger builds a zap logger at the configured level and format.
func (c *Config) Logger() (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if c.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}
	return logger, nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	optional := false
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
		optional = true
	}

	out := map[string]string{}
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			if optional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
		for k, v := range values {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}

	return out, nil
}
