package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/vitalvas/navi/router"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		want    Config
		wantErr string
	}{
		{
			name:    "defaults",
			environ: map[string]string{},
			want: Config{
				Selection: router.SelectLast,
				LogLevel:  zapcore.InfoLevel,
				LogFormat: "console",
			},
		},
		{
			name: "all values",
			environ: map[string]string{
				"NAVI_BASE_PATH":        "/app",
				"NAVI_SELECTION":        "Specific",
				"NAVI_STRICT_SLASH":     "true",
				"NAVI_SCROLL_ON_RELOAD": "true",
				"NAVI_LOG_LEVEL":        "debug",
				"NAVI_LOG_FORMAT":       "json",
				"NAVI_MANIFEST":         "routes.yaml",
			},
			want: Config{
				BasePath:       "/app",
				Selection:      router.SelectSpecific,
				StrictSlash:    true,
				ScrollOnReload: true,
				LogLevel:       zapcore.DebugLevel,
				LogFormat:      "json",
				Manifest:       "routes.yaml",
			},
		},
		{
			name:    "unprefixed variables are ignored",
			environ: map[string]string{"BASE_PATH": "/x"},
			want: Config{
				Selection: router.SelectLast,
				LogLevel:  zapcore.InfoLevel,
				LogFormat: "console",
			},
		},
		{
			name:    "unknown selection",
			environ: map[string]string{"NAVI_SELECTION": "random"},
			wantErr: "unknown selection mode",
		},
		{
			name:    "bad bool",
			environ: map[string]string{"NAVI_STRICT_SLASH": "maybe"},
			wantErr: `"StrictSlash"`,
		},
		{
			name:    "bad level",
			environ: map[string]string{"NAVI_LOG_LEVEL": "loud"},
			wantErr: `"LogLevel"`,
		},
		{
			name:    "relative base path",
			environ: map[string]string{"NAVI_BASE_PATH": "app"},
			wantErr: "must start with '/'",
		},
		{
			name:    "bad log format",
			environ: map[string]string{"NAVI_LOG_FORMAT": "xml"},
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.environ)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("env file and environment", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(file, []byte("NAVI_BASE_PATH=/fromfile\nNAVI_SELECTION=first\n"), 0o600))

		t.Setenv("NAVI_SELECTION", "specific")

		cfg, err := Load(file)
		require.NoError(t, err)
		assert.Equal(t, "/fromfile", cfg.BasePath)
		assert.Equal(t, router.SelectSpecific, cfg.Selection)
	})

	t.Run("first file wins", func(t *testing.T) {
		dir := t.TempDir()
		a := filepath.Join(dir, "a.env")
		b := filepath.Join(dir, "b.env")
		require.NoError(t, os.WriteFile(a, []byte("NAVI_MANIFEST=a.yaml\n"), 0o600))
		require.NoError(t, os.WriteFile(b, []byte("NAVI_MANIFEST=b.yaml\nNAVI_BASE_PATH=/b\n"), 0o600))

		cfg, err := Load(a, b)
		require.NoError(t, err)
		assert.Equal(t, "a.yaml", cfg.Manifest)
		assert.Equal(t, "/b", cfg.BasePath)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing default file", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		_, err = Load()
		assert.NoError(t, err)
	})
}

func TestRouterOptions(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"NAVI_BASE_PATH": "/app/",
		"NAVI_SELECTION": "first",
	})
	require.NoError(t, err)

	d := router.New(cfg.RouterOptions()...)
	assert.Equal(t, "/app", d.BasePath())

	require.NoError(t, d.HandleFunc("/{page}", func(*router.Context) error { return nil }))
	require.NoError(t, d.HandleFunc("/about", func(*router.Context) error { return nil }))

	route, vars, err := d.Match("/app/about")
	require.NoError(t, err)
	require.NotNil(t, route)
	assert.Equal(t, "/{page}", route.Pattern())
	assert.Equal(t, "about", vars["page"])
}

func TestLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			cfg := &Config{LogLevel: zapcore.WarnLevel, LogFormat: format}

			logger, err := cfg.Logger()
			require.NoError(t, err)
			assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
			assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		})
	}
}
