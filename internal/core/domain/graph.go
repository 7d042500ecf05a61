// Package domain contains the core domain models for the stack and package registry.
package domain

import "go.trai.ch/zerr"

// DirectFunc returns the direct dependencies of the named unit.
type DirectFunc func(name string) ([]string, error)

// DependencyGraph is a "depends on" graph over unit names whose edges are
// read lazily through a DirectFunc. It holds no state between queries.
type DependencyGraph struct {
	direct DirectFunc
}

// NewDependencyGraph creates a graph whose edges come from direct.
func NewDependencyGraph(direct DirectFunc) *DependencyGraph {
	return &DependencyGraph{direct: direct}
}

// Closure returns every name reachable from name by following dependency edges,
// in depth-first pre-order and without duplicates. Each name is expanded at most
// once, so cyclic edges terminate. name itself appears in the result only if it
// is reachable through a cycle.
func (g *DependencyGraph) Closure(name string) ([]string, error) {
	seen := make(map[string]bool)
	expanded := map[string]bool{name: true}
	var result []string

	var visit func(u, parent string) error
	visit = func(u, parent string) error {
		deps, err := g.direct(u)
		if err != nil {
			if parent != "" {
				return zerr.With(err, "required_by", parent)
			}
			return err
		}

		for _, dep := range deps {
			if !seen[dep] {
				seen[dep] = true
				result = append(result, dep)
			}
			if expanded[dep] {
				continue
			}
			expanded[dep] = true
			if err := visit(dep, u); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(name, ""); err != nil {
		return nil, err
	}
	if result == nil {
		result = []string{}
	}
	return result, nil
}
