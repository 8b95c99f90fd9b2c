package graph

import "github.com/fcsr-dev/fcsr/api/v1alpha1"

// DependentsGraph maps every package name to the packages that hold a validated
// dependency on it.
type DependentsGraph map[string][]string

// Dependents returns the packages depending on name.
func (d DependentsGraph) Dependents(name string) []string {
	return d[name]
}

// Invert turns a DependencyGraph inside out. Every package in g is a key of the
// result, with an empty list when nothing depends on it. Dependents are listed
// in name order.
func Invert(g *DependencyGraph) DependentsGraph {
	names := g.Names()

	out := make(DependentsGraph, len(names))
	for _, name := range names {
		out[name] = []string{}
	}
	for _, consumer := range names {
		for _, dep := range g.Nodes[consumer].Dependencies {
			if _, ok := out[dep]; !ok {
				continue
			}
			out[dep] = append(out[dep], consumer)
		}
	}
	return out
}

// Dependents builds the dependency graph of ws and inverts it.
func Dependents(ws v1alpha1.Workspace, opts Options) (DependentsGraph, error) {
	g, err := Build(ws, opts)
	if err != nil {
		return nil, err
	}
	return Invert(g), nil
}
