// Package graph builds the internal dependency graph of a workspace.
//
// Only dependencies that name another workspace package are considered. Each
// declared range is classified (see Classify); ranges that cannot be honoured
// mark the graph invalid and are reported as warnings rather than errors, so a
// single bad declaration never stops the rest of the graph from being built.
package graph

import (
	"fmt"
	"sort"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
	"github.com/fcsr-dev/fcsr/internal/diagnostics"
)

// Options tunes Build.
type Options struct {
	// BumpVersionsWithWorkspaceProtocolOnly ignores every internal dependency
	// not declared with the workspace: protocol.
	BumpVersionsWithWorkspaceProtocolOnly bool
}

// Node is one package and the internal dependencies that passed validation.
type Node struct {
	Package      v1alpha1.Package `json:"pkg"`
	Dependencies []string         `json:"dependencies"`
}

// DependencyGraph maps every workspace package name, root included, to its Node.
//
// Valid starts true and is cleared by the first invalid declaration.
type DependencyGraph struct {
	Nodes    map[string]Node    `json:"graph"`
	Valid    bool               `json:"valid"`
	Warnings diagnostics.Report `json:"warnings"`
}

// Names returns the package names in the graph, sorted.
func (g *DependencyGraph) Names() []string {
	names := make([]string, 0, len(g.Nodes))
	for name := range g.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dependencies returns the validated internal dependencies of name.
func (g *DependencyGraph) Dependencies(name string) []string {
	return g.Nodes[name].Dependencies
}

// EdgeCount returns the number of validated internal dependencies.
func (g *DependencyGraph) EdgeCount() int {
	n := 0
	for _, node := range g.Nodes {
		n += len(node.Dependencies)
	}
	return n
}

// Build classifies every internal dependency declared in ws.
//
// It fails only when ws itself is malformed: a package without a name, or two
// packages sharing one.
func Build(ws v1alpha1.Workspace, opts Options) (*DependencyGraph, error) {
	byName, err := indexPackages(ws)
	if err != nil {
		return nil, err
	}

	g := &DependencyGraph{
		Nodes: make(map[string]Node, len(byName)),
		Valid: true,
	}
	for _, pkg := range ws.All() {
		g.Nodes[pkg.Name()] = Node{
			Package:      pkg,
			Dependencies: g.internalDependencies(pkg, byName, opts),
		}
	}
	return g, nil
}

func indexPackages(ws v1alpha1.Workspace) (map[string]v1alpha1.Package, error) {
	if ws.Root.Name() == "" {
		return nil, fmt.Errorf("%w: workspace root at %q", ErrMissingName, ws.Root.Dir)
	}

	byName := make(map[string]v1alpha1.Package, len(ws.Packages)+1)
	for _, pkg := range ws.All() {
		if pkg.Name() == "" {
			return nil, fmt.Errorf("%w: package at %q", ErrMissingName, pkg.Dir)
		}
		if existing, ok := byName[pkg.Name()]; ok {
			return nil, fmt.Errorf("%w: %q at %q and %q", ErrDuplicatePackage, pkg.Name(), existing.Dir, pkg.Dir)
		}
		byName[pkg.Name()] = pkg
	}
	return byName, nil
}

// internalDependencies returns the validated dependency names of pkg, recording
// warnings and validity on g as it goes.
func (g *DependencyGraph) internalDependencies(pkg v1alpha1.Package, byName map[string]v1alpha1.Package, opts Options) []string {
	declared := mergeDependencies(pkg.Manifest)

	names := make([]string, 0, len(declared))
	for name := range declared {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]string, 0)
	for _, depName := range names {
		target, ok := byName[depName]
		if !ok {
			continue
		}

		declaredRange := declared[depName]
		current := target.Manifest.Version

		class := Classify(declaredRange, current, opts)
		if class.Invalid() {
			g.Valid = false
			g.Warnings.Add(diagnostics.RangeMismatch(pkg.Name(), depName, current, declaredRange))
		}
		if class.Edge() {
			deps = append(deps, depName)
		}
	}
	return deps
}
