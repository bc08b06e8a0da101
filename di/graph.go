package di

import "slices"

// DependencyGraph analyses a graph of the form {name: [required names]}.
//
// It is pure: it never resolves values, it only answers structural questions
// about the graph it was built from.
type DependencyGraph struct {
	nodes map[string][]string
}

// NewDependencyGraph wraps nodes. The map is read, never modified.
func NewDependencyGraph(nodes map[string][]string) *DependencyGraph {
	return &DependencyGraph{nodes: nodes}
}

// HasMissingDependencies reports whether any node requires a name that is not
// itself a node of the graph.
func (g *DependencyGraph) HasMissingDependencies() bool {
	for _, deps := range g.nodes {
		for _, dep := range deps {
			if _, ok := g.nodes[dep]; !ok {
				return true
			}
		}
	}
	return false
}

// MissingDependencies returns the sorted, de-duplicated names that are required
// by some node but absent from the graph.
func (g *DependencyGraph) MissingDependencies() []string {
	seen := make(map[string]struct{})
	var missing []string
	for _, deps := range g.nodes {
		for _, dep := range deps {
			if _, ok := g.nodes[dep]; ok {
				continue
			}
			if _, dup := seen[dep]; dup {
				continue
			}
			seen[dep] = struct{}{}
			missing = append(missing, dep)
		}
	}
	slices.Sort(missing)
	return missing
}

// HasCircularDependencies reports whether the graph contains a cycle.
//
// Only the answer is reported, not the cycle itself. Unresolved gives the set
// of nodes that could not be ordered when more detail is useful.
func (g *DependencyGraph) HasCircularDependencies() bool {
	return len(g.Unresolved()) > 0
}

// Unresolved runs Kahn's algorithm and returns, sorted, every node that was
// never removed. An empty result means the graph is acyclic.
//
// Nodes with a missing dependency also end up here, so callers check
// HasMissingDependencies first.
func (g *DependencyGraph) Unresolved() []string {
	// remaining[n] counts the distinct dependencies of n not yet removed.
	remaining := make(map[string]int, len(g.nodes))
	// dependedOnBy is the inverted index: dep -> nodes requiring dep.
	dependedOnBy := make(map[string][]string, len(g.nodes))

	var ready []string
	for name, deps := range g.nodes {
		distinct := make(map[string]struct{}, len(deps))
		for _, dep := range deps {
			if _, dup := distinct[dep]; dup {
				continue
			}
			distinct[dep] = struct{}{}
			dependedOnBy[dep] = append(dependedOnBy[dep], name)
		}
		remaining[name] = len(distinct)
		if len(distinct) == 0 {
			ready = append(ready, name)
		}
	}

	removed := make(map[string]struct{}, len(g.nodes))
	for len(ready) > 0 {
		done := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		removed[done] = struct{}{}

		for _, name := range dependedOnBy[done] {
			remaining[name]--
			if remaining[name] == 0 {
				ready = append(ready, name)
			}
		}
	}

	if len(removed) == len(g.nodes) {
		return nil
	}

	unresolved := make([]string, 0, len(g.nodes)-len(removed))
	for name := range g.nodes {
		if _, ok := removed[name]; !ok {
			unresolved = append(unresolved, name)
		}
	}
	slices.Sort(unresolved)
	return unresolved
}
