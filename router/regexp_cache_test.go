package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileRegexp(t *testing.T) {
	t.Run("compiles valid pattern", func(t *testing.T) {
		re, err := compileRegexp(`^[0-9]+$`)
		require.NoError(t, err)
		assert.True(t, re.MatchString("123"))
		assert.False(t, re.MatchString("abc"))
	})

	t.Run("returns cached instance", func(t *testing.T) {
		re1, err := compileRegexp(`^cached-test-[a-z]+$`)
		require.NoError(t, err)
		re2, err := compileRegexp(`^cached-test-[a-z]+$`)
		require.NoError(t, err)
		assert.Same(t, re1, re2)
	})

	t.Run("invalid pattern returns error", func(t *testing.T) {
		_, err := compileRegexp(`^([0-9+$`)
		assert.Error(t, err)
	})

	t.Run("shared by identical templates", func(t *testing.T) {
		t1, t2 := NewTable(), NewTable()
		require.NoError(t, t1.Register("/shared/{id}", Func(noop)))
		require.NoError(t, t2.Register("/shared/{id}", Func(noop)))
		assert.Same(t, t1.Get("/shared/{id}").pattern.regexp, t2.Get("/shared/{id}").pattern.regexp)
	})
}

func BenchmarkCompileRegexpCached(b *testing.B) {
	compileRegexp(`^[0-9]+$`) //nolint:errcheck

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		compileRegexp(`^[0-9]+$`) //nolint:errcheck
	}
}
