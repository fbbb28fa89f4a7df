package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/gopatterns/app"
)

type dbHandle struct{ dsn string }

type cacheHandle struct{ addr string }

//
// -----------------------------------------------------------------------------
// Provide
// -----------------------------------------------------------------------------

// TestProvide_Errors verifies every invalid registration has its own error.
func TestProvide_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		setup func(c *app.Components) error

		wantIs  error
		wantDup string
	}{
		{
			name: "empty name",
			setup: func(c *app.Components) error {
				return c.Provide("", &dbHandle{})
			},
			wantIs: app.ErrEmptyComponentName,
		},
		{
			name: "nil component",
			setup: func(c *app.Components) error {
				return c.Provide("db", nil)
			},
			wantIs: app.ErrNilComponent,
		},
		{
			name: "duplicate name",
			setup: func(c *app.Components) error {
				if err := c.Provide("db", &dbHandle{}); err != nil {
					return err
				}
				return c.Provide("db", &dbHandle{})
			},
			wantDup: "db",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.setup(app.NewComponents())
			require.Error(t, err)

			if tc.wantIs != nil {
				assert.True(t, errors.Is(err, tc.wantIs))
				return
			}
			var dup app.DuplicateComponentError
			require.True(t, errors.As(err, &dup))
			assert.Equal(t, tc.wantDup, dup.Name)
		})
	}
}

// TestProvide_HasLookupNames verifies the introspection surface.
func TestProvide_HasLookupNames(t *testing.T) {
	t.Parallel()

	c := app.NewComponents()
	require.NoError(t, c.Provide("db", &dbHandle{dsn: "postgres://"}))
	require.NoError(t, c.Provide("cache", &cacheHandle{addr: ":6379"}))

	assert.True(t, c.Has("db"))
	assert.False(t, c.Has("queue"))

	raw, ok := c.Lookup("cache")
	require.True(t, ok)
	assert.IsType(t, &cacheHandle{}, raw)

	_, ok = c.Lookup("queue")
	assert.False(t, ok)

	assert.Equal(t, []string{"cache", "db"}, c.Names())
}

// TestNilComponents verifies a nil bag answers negatively instead of panicking.
func TestNilComponents(t *testing.T) {
	t.Parallel()

	var c *app.Components
	assert.False(t, c.Has("db"))
	_, ok := c.Lookup("db")
	assert.False(t, ok)
	assert.Nil(t, c.Names())

	_, err := app.Resolve[*dbHandle](c, "db")
	require.Error(t, err)
	var missing app.MissingComponentError
	assert.True(t, errors.As(err, &missing))
}

//
// -----------------------------------------------------------------------------
// Resolve
// -----------------------------------------------------------------------------

// TestResolve verifies typed retrieval and both failure modes.
func TestResolve(t *testing.T) {
	t.Parallel()

	c := app.NewComponents()
	require.NoError(t, c.Provide("db", &dbHandle{dsn: "postgres://"}))

	got, err := app.Resolve[*dbHandle](c, "db")
	require.NoError(t, err)
	assert.Equal(t, "postgres://", got.dsn)

	// Missing name.
	_, err = app.Resolve[*dbHandle](c, "queue")
	var missing app.MissingComponentError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "queue", missing.Name)

	// Wrong type.
	_, err = app.Resolve[*cacheHandle](c, "db")
	var wrong app.WrongTypeComponentError
	require.True(t, errors.As(err, &wrong))
	assert.Equal(t, "db", wrong.Name)
	assert.Equal(t, "*app_test.dbHandle", wrong.GotType)
	assert.Contains(t, wrong.Error(), `"db"`)
}

// TestMustResolve verifies the panic helper both unwraps and panics.
func TestMustResolve(t *testing.T) {
	t.Parallel()

	c := app.NewComponents()
	require.NoError(t, c.Provide("db", &dbHandle{}))

	assert.NotNil(t, app.MustResolve[*dbHandle](c, "db"))
	assert.Panics(t, func() {
		app.MustResolve[*cacheHandle](c, "db")
	})
}
