package routerhandlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vitalvas/navi/router"
)

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	d := router.New(router.WithIDGenerator(func() string { return "c1" }))
	d.Use(Logging(zap.New(core)))

	boom := errors.New("boom")
	require.NoError(t, d.HandleFunc("/ok/{id}", func(*router.Context) error { return nil }))
	require.NoError(t, d.HandleFunc("/stop", func(*router.Context) error { return router.ErrStopChain }))
	require.NoError(t, d.HandleFunc("/fail", func(*router.Context) error { return boom }))

	ctx := context.Background()
	_, err := d.Navigate(ctx, "/ok/1")
	require.NoError(t, err)
	_, err = d.Navigate(ctx, "/stop")
	require.NoError(t, err)
	_, err = d.Navigate(ctx, "/fail")
	require.ErrorIs(t, err, boom)

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "handler completed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "c1", fields["cycle"])
	assert.Equal(t, "/ok/1", fields["path"])
	assert.Equal(t, "/ok/{id}", fields["pattern"])
	assert.Contains(t, fields, "duration")

	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, "handler stopped chain", entries[1].Message)

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestLoggingNilLogger(t *testing.T) {
	d := router.New()
	d.Use(Logging(nil))
	require.NoError(t, d.HandleFunc("/", func(*router.Context) error { return nil }))

	_, err := d.Execute(context.Background())
	assert.NoError(t, err)
}
