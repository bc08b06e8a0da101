package di_test

import (
	"testing"

	"github.com/sghaida/lexi/di"
	"github.com/stretchr/testify/assert"
)

//
// -----------------------------------------------------------------------------
// HasMissingDependencies / MissingDependencies
// -----------------------------------------------------------------------------

// TestDependencyGraph_Missing verifies missing nodes are detected and reported sorted.
func TestDependencyGraph_Missing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		nodes map[string][]string
		want  []string
	}{
		{name: "empty", nodes: map[string][]string{}, want: nil},
		{name: "leaf_only", nodes: map[string][]string{"a": nil}, want: nil},
		{
			name:  "all_present",
			nodes: map[string][]string{"a": {"b", "c"}, "b": {"c"}, "c": nil},
			want:  nil,
		},
		{
			name:  "one_missing",
			nodes: map[string][]string{"a": {"b"}},
			want:  []string{"b"},
		},
		{
			name:  "missing_deduplicated_and_sorted",
			nodes: map[string][]string{"a": {"z", "y"}, "b": {"z"}},
			want:  []string{"y", "z"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := di.NewDependencyGraph(tt.nodes)
			assert.Equal(t, len(tt.want) > 0, g.HasMissingDependencies())
			assert.Equal(t, tt.want, g.MissingDependencies())
		})
	}
}

//
// -----------------------------------------------------------------------------
// HasCircularDependencies / Unresolved
// -----------------------------------------------------------------------------

// TestDependencyGraph_Cycles verifies Kahn's algorithm flags cycles and only cycles.
func TestDependencyGraph_Cycles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		nodes      map[string][]string
		unresolved []string
	}{
		{name: "empty", nodes: map[string][]string{}},
		{name: "single_leaf", nodes: map[string][]string{"a": {}}},
		{
			name:  "diamond",
			nodes: map[string][]string{"a": {"b", "c"}, "b": {"d"}, "c": {"d"}, "d": nil},
		},
		{
			name:  "repeated_dependency",
			nodes: map[string][]string{"a": {"b", "b"}, "b": nil},
		},
		{
			name:       "self_loop",
			nodes:      map[string][]string{"a": {"a"}},
			unresolved: []string{"a"},
		},
		{
			name:       "two_cycle",
			nodes:      map[string][]string{"a": {"b"}, "b": {"a"}, "c": nil},
			unresolved: []string{"a", "b"},
		},
		{
			name:       "downstream_of_cycle",
			nodes:      map[string][]string{"a": {"b"}, "b": {"c"}, "c": {"b"}, "d": nil},
			unresolved: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := di.NewDependencyGraph(tt.nodes)
			assert.Equal(t, len(tt.unresolved) > 0, g.HasCircularDependencies())
			assert.Equal(t, tt.unresolved, g.Unresolved())
		})
	}
}

// TestDependencyGraph_AcyclicComplete verifies both checks are false for a valid graph.
func TestDependencyGraph_AcyclicComplete(t *testing.T) {
	t.Parallel()

	g := di.NewDependencyGraph(map[string][]string{
		"environ": nil,
		"method":  {"environ"},
		"path":    {"environ"},
		"route":   {"path", "method"},
		"view":    {"route"},
	})
	assert.False(t, g.HasMissingDependencies())
	assert.False(t, g.HasCircularDependencies())
}
