package checker

import (
	"github.com/fcsr-dev/fcsr/api/v1alpha1"
	"github.com/fcsr-dev/fcsr/internal/diagnostics"
	"github.com/fcsr-dev/fcsr/internal/graph"
	"github.com/fcsr-dev/fcsr/internal/groups"
)

// Input is a loaded workspace and its configuration.
type Input struct {
	Workspace v1alpha1.Workspace
	Config    v1alpha1.Config
}

// Result is the outcome of one check.
type Result struct {
	Graph      *graph.DependencyGraph
	Dependents graph.DependentsGraph
	// Groups holds the expanded fixed and linked groups. Its report is already
	// part of Report.
	Groups groups.Result
	// Report holds every warning: graph warnings first, then group warnings.
	Report diagnostics.Report
}

// Valid reports whether every internal dependency range can be honoured.
// Group warnings do not affect it.
func (r Result) Valid() bool {
	return r.Graph != nil && r.Graph.Valid
}
