package routerhandlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/navi/navigation"
	"github.com/vitalvas/navi/router"
)

func TestRedirect(t *testing.T) {
	h := navigation.NewHistory("/")
	d := router.New(router.WithHistory(h))

	var calls []string
	require.NoError(t, d.HandleFunc("/old",
		Redirect("/new"),
		func(*router.Context) error {
			calls = append(calls, "after-redirect")
			return nil
		},
	))
	require.NoError(t, d.HandleFunc("/new", func(*router.Context) error {
		calls = append(calls, "new")
		return nil
	}))

	c, err := d.Navigate(context.Background(), "/old")
	require.NoError(t, err)
	assert.Equal(t, router.OutcomeHalted, c.Outcome)
	assert.Equal(t, []string{"new"}, calls)
	assert.Equal(t, "/new", h.Path())
	assert.Equal(t, "/new", d.CurrentPath())
	assert.Equal(t, "/old", d.PreviousPath())
}

func TestRedirectRoute(t *testing.T) {
	t.Run("fills variables", func(t *testing.T) {
		h := navigation.NewHistory("/")
		d := router.New(router.WithHistory(h), router.WithBasePath("/app"))

		var got string
		require.NoError(t, d.HandleFunc("/legacy/{id}", RedirectRoute("/users/{id}")))
		require.NoError(t, d.HandleFunc("/users/{id}", func(c *router.Context) error {
			got = c.Var("id")
			return nil
		}))

		_, err := d.Navigate(context.Background(), "/app/legacy/5")
		require.NoError(t, err)
		assert.Equal(t, "5", got)
		assert.Equal(t, "/app/users/5", h.Path())
	})

	t.Run("unknown route", func(t *testing.T) {
		d := router.New()
		require.NoError(t, d.HandleFunc("/a", RedirectRoute("/missing")))

		_, err := d.Navigate(context.Background(), "/a")
		assert.ErrorContains(t, err, "not registered")
	})
}
