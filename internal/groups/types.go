package groups

import (
	"github.com/fcsr-dev/fcsr/api/v1alpha1"
	"github.com/fcsr-dev/fcsr/internal/diagnostics"
	"github.com/fcsr-dev/fcsr/internal/graph"
)

// Input is everything the validator reads. Nothing in it is modified.
type Input struct {
	Workspace v1alpha1.Workspace
	Fixed     []v1alpha1.PackageGroup
	Linked    []v1alpha1.PackageGroup
	// Ignore lists package names excluded from version management.
	Ignore []string
	// Dependents must be derived from the same Workspace (graph.Invert).
	Dependents graph.DependentsGraph
}

// Result holds the expanded groups and the warnings found while validating them.
//
// Expanded groups keep the declaration order of their patterns; a pattern
// matching several packages contributes them in workspace order.
type Result struct {
	Fixed  [][]string
	Linked [][]string
	Report diagnostics.Report
}
