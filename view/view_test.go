package view_test

import (
	"testing"

	"github.com/sghaida/lexi/di"
	"github.com/sghaida/lexi/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hello() di.Func {
	return di.Func0(func() (string, error) { return "hello", nil })
}

// TestAddView_Validation verifies empty route, nil handler and duplicates are rejected.
func TestAddView_Validation(t *testing.T) {
	t.Parallel()

	tbl := view.NewTable()
	require.NoError(t, tbl.AddView(view.New("index", hello())))

	var invalid view.InvalidViewError
	require.ErrorAs(t, tbl.AddView(view.New("", hello())), &invalid)
	require.ErrorAs(t, tbl.AddView(view.Binding{Route: "x"}), &invalid)
	assert.Equal(t, "x", invalid.Route)

	var dup view.DuplicateViewError
	require.ErrorAs(t, tbl.AddView(view.New("index", hello(), "query")), &dup)
	assert.Equal(t, `view: view already assigned for route "index"`, dup.Error())
}

// TestCreate_UnknownRoute verifies a view bound to a missing route fails.
func TestCreate_UnknownRoute(t *testing.T) {
	t.Parallel()

	tbl := view.NewTable()
	require.NoError(t, tbl.AddView(view.New("ghost", hello())))

	_, err := tbl.Create([]string{"index"}, nil)
	var unknown view.UnknownRouteError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.Route)

	var dep view.UnknownDependencyError
	assert.NotErrorAs(t, err, &dep)
}

// TestCreate_UnknownDependency verifies a view depending on a missing name fails.
func TestCreate_UnknownDependency(t *testing.T) {
	t.Parallel()

	tbl := view.NewTable()
	require.NoError(t, tbl.AddView(view.New("index", hello(), "query", "db")))

	_, err := tbl.Create([]string{"index"}, []string{"query"})
	var dep view.UnknownDependencyError
	require.ErrorAs(t, err, &dep)
	assert.Equal(t, view.UnknownDependencyError{Route: "index", Dependency: "db"}, dep)

	var unknown view.UnknownRouteError
	assert.NotErrorAs(t, err, &unknown)
}

// TestMap_View verifies lookups and the explicit absent result.
func TestMap_View(t *testing.T) {
	t.Parallel()

	tbl := view.NewTable()
	require.NoError(t, tbl.AddView(view.New("b", hello(), "query")))
	require.NoError(t, tbl.AddView(view.New("a", hello())))

	m, err := tbl.Create([]string{"a", "b", "no-view"}, []string{"query"})
	require.NoError(t, err)

	b, ok := m.View("b")
	require.True(t, ok)
	assert.Equal(t, "b", b.Route)
	assert.Equal(t, []string{"query"}, b.Dependencies)

	_, ok = m.View("no-view")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, m.Routes())
}

// TestNew_CopiesDependencies verifies the binding does not alias the caller's slice.
func TestNew_CopiesDependencies(t *testing.T) {
	t.Parallel()

	deps := []string{"a"}
	b := view.New("r", hello(), deps...)
	deps[0] = "mutated"

	assert.Equal(t, []string{"a"}, b.Dependencies)
}
