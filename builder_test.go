package lexi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/lexi"
	"github.com/sghaida/lexi/di"
	"github.com/sghaida/lexi/route"
	"github.com/sghaida/lexi/view"
)

func echo() di.Func {
	return di.Func1(func(s string) (lexi.Text, error) { return lexi.Text(s), nil })
}

// TestBuilder_ReservedNames verifies the built-in dependencies cannot be
// rebound.
func TestBuilder_ReservedNames(t *testing.T) {
	t.Parallel()

	reserved := []string{
		lexi.DepEnviron, lexi.DepRequest, lexi.DepMethod, lexi.DepPath,
		lexi.DepQueryString, lexi.DepQuery, lexi.DepHeaders, lexi.DepSettings,
		lexi.DepRespond, lexi.DepRoute, lexi.DepPathValues, lexi.DepView, lexi.DepURLFor,
	}
	for _, name := range reserved {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := lexi.New().AddValue(name, "x")
			var dup di.DuplicateNameError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, name, dup.Name)
			assert.ErrorIs(t, err, di.ErrComposition)
		})
	}
}

// TestBuilder_BuildFailures verifies every wiring defect is reported by Build.
func TestBuilder_BuildFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T, b *lexi.Builder)
		check func(t *testing.T, err error)
	}{
		{
			name: "missing_dependency",
			setup: func(t *testing.T, b *lexi.Builder) {
				require.NoError(t, b.AddFactory("user", echo(), "db"))
			},
			check: func(t *testing.T, err error) {
				var missing di.MissingDependencyError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, []string{"db"}, missing.Names)
			},
		},
		{
			name: "cycle",
			setup: func(t *testing.T, b *lexi.Builder) {
				require.NoError(t, b.AddFactory("a", echo(), "b"))
				require.NoError(t, b.AddDependant("b", di.DependsOn(echo(), "a")))
			},
			check: func(t *testing.T, err error) {
				var cycle di.CircularDependencyError
				require.ErrorAs(t, err, &cycle)
				assert.Equal(t, []string{"a", "b"}, cycle.Names)
			},
		},
		{
			name: "view_on_unknown_route",
			setup: func(t *testing.T, b *lexi.Builder) {
				require.NoError(t, b.AddView("ghost", echo(), lexi.DepPath))
			},
			check: func(t *testing.T, err error) {
				var unknown view.UnknownRouteError
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, "ghost", unknown.Route)
			},
		},
		{
			name: "view_on_unknown_dependency",
			setup: func(t *testing.T, b *lexi.Builder) {
				require.NoError(t, b.AddRoute("index", http.MethodGet, "/"))
				require.NoError(t, b.AddView("index", echo(), "db"))
			},
			check: func(t *testing.T, err error) {
				var unknown view.UnknownDependencyError
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, view.UnknownDependencyError{Route: "index", Dependency: "db"}, unknown)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := lexi.New()
			tt.setup(t, b)
			app, err := b.Build()
			require.Error(t, err)
			assert.Nil(t, app)
			tt.check(t, err)
		})
	}
}

// TestBuilder_RegistrationErrors verifies route and view problems surface at
// registration time.
func TestBuilder_RegistrationErrors(t *testing.T) {
	t.Parallel()

	b := lexi.New()
	require.NoError(t, b.AddRoute("index", http.MethodGet, "/"))

	var dupRoute route.DuplicateRouteError
	require.ErrorAs(t, b.AddRoute("index", http.MethodPost, "/other"), &dupRoute)

	var tmpl *route.TemplateError
	require.ErrorAs(t, b.AddRoute("broken", http.MethodGet, "/{id"), &tmpl)

	require.NoError(t, b.AddViewFn("index", di.DependsOn(echo(), lexi.DepPath)))
	var dupView view.DuplicateViewError
	require.ErrorAs(t, b.AddView("index", echo(), lexi.DepPath), &dupView)

	var bad di.BadNameError
	require.ErrorAs(t, b.AddValue("", 1), &bad)

	assert.ErrorIs(t, b.AddFactory("nil", nil), di.ErrNilFactory)
}

// TestBuilder_Built verifies a Builder cannot be reused.
func TestBuilder_Built(t *testing.T) {
	t.Parallel()

	b := lexi.New()
	require.NoError(t, b.AddRoute("index", http.MethodGet, "/"))
	require.NoError(t, b.AddView("index", echo(), lexi.DepPath))
	b.MustBuild()

	assert.ErrorIs(t, b.AddRoute("late", http.MethodGet, "/late"), lexi.ErrBuilt)
	assert.ErrorIs(t, b.AddValue("late", 1), lexi.ErrBuilt)
	assert.ErrorIs(t, b.AddViewFn("index", di.DependsOn(echo())), lexi.ErrBuilt)

	_, err := b.Build()
	assert.ErrorIs(t, err, lexi.ErrBuilt)
	assert.Panics(t, func() { b.MustBuild() })
}

// TestBuilder_Routing verifies the App exposes routes in registration order.
func TestBuilder_Routing(t *testing.T) {
	t.Parallel()

	b := lexi.New()
	require.NoError(t, b.AddRoute("b", http.MethodGet, "/b"))
	require.NoError(t, b.AddRoute("a", http.MethodGet, "/a"))
	app := b.MustBuild()

	assert.Equal(t, []string{"b", "a"}, app.Routing().Names())
}
