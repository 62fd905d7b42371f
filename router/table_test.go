package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRegister(t *testing.T) {
	t.Run("stores normalized template", func(t *testing.T) {
		tbl := NewTable()
		require.NoError(t, tbl.Register("/Users/{ID}", Func(noop)))

		r := tbl.Get("/users/{id}")
		require.NotNil(t, r)
		assert.Equal(t, "/users/{id}", r.Pattern())
		assert.Equal(t, []string{"id"}, r.VarNames())
		assert.NotEmpty(t, r.Regexp())
	})

	t.Run("root is stored as empty template", func(t *testing.T) {
		tbl := NewTable()
		require.NoError(t, tbl.Register("/", Func(noop)))
		_, ok := tbl.All()[""]
		assert.True(t, ok)
	})

	t.Run("without handlers is a no-op", func(t *testing.T) {
		tbl := NewTable()
		require.NoError(t, tbl.Register("/about"))
		assert.Equal(t, 0, tbl.Len())
		assert.Nil(t, tbl.Get("/about"))
	})

	t.Run("empty handler reference is rejected", func(t *testing.T) {
		tbl := NewTable()
		err := tbl.Register("/about", Func(noop), HandlerRef{})
		assert.ErrorIs(t, err, ErrInvalidHandler)
		assert.Equal(t, 0, tbl.Len())
	})

	t.Run("invalid pattern is rejected", func(t *testing.T) {
		tbl := NewTable()
		err := tbl.Register("/{id(a**)}", Func(noop))
		assert.ErrorIs(t, err, ErrInvalidPattern)
		assert.Equal(t, 0, tbl.Len())
	})

	t.Run("re-registration replaces chain and keeps position", func(t *testing.T) {
		tbl := NewTable()
		require.NoError(t, tbl.Register("/a", Named("first")))
		require.NoError(t, tbl.Register("/b", Named("b")))
		require.NoError(t, tbl.Register("/A", Named("second"), Named("third")))

		routes := tbl.Routes()
		require.Len(t, routes, 2)
		assert.Equal(t, "/a", routes[0].Pattern())
		assert.Equal(t, Names("second", "third"), routes[0].Handlers())
	})

	t.Run("strict slash applies to later routes", func(t *testing.T) {
		tbl := NewTable().StrictSlash(true)
		require.NoError(t, tbl.Register("/users/", Func(noop)))
		_, ok := tbl.Get("/users/").Match("/users")
		assert.True(t, ok)
	})
}

func TestTableRegisterAll(t *testing.T) {
	t.Run("registers every template", func(t *testing.T) {
		tbl := NewTable()
		require.NoError(t, tbl.RegisterAll([]string{"/", "/home"}, Named("home")))
		assert.Equal(t, 2, tbl.Len())
		assert.Equal(t, Names("home"), tbl.Get("/home").Handlers())
		assert.Equal(t, Names("home"), tbl.Get("/").Handlers())
	})

	t.Run("keeps valid templates when one fails", func(t *testing.T) {
		tbl := NewTable()
		err := tbl.RegisterAll([]string{"/ok", "/{id(a**)}", "/{x}/{x}", "/fine"}, Func(noop))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPattern)
		assert.Equal(t, 2, tbl.Len())
		assert.NotNil(t, tbl.Get("/ok"))
		assert.NotNil(t, tbl.Get("/fine"))
	})
}

func TestTableAll(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Register("/a", Named("a")))
	require.NoError(t, tbl.Register("/b", Named("b1"), Named("b2")))

	all := tbl.All()
	assert.Equal(t, map[string][]HandlerRef{
		"/a": Names("a"),
		"/b": Names("b1", "b2"),
	}, all)

	all["/a"][0] = Named("changed")
	assert.Equal(t, Names("a"), tbl.Get("/a").Handlers())
}

func TestRouteBuild(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Register("/articles/{category}/{id:int}", Func(noop)))
	r := tbl.Get("/articles/{category}/{id:int}")
	require.NotNil(t, r)

	path, err := r.Build("category", "tech", "id", "42")
	require.NoError(t, err)
	assert.Equal(t, "/articles/tech/42", path)

	_, err = r.Build("category")
	assert.Error(t, err)

	_, err = r.Build("category", "tech", "id", "x")
	assert.Error(t, err)
}
