package checker

import (
	"context"
	"fmt"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/fcsr-dev/fcsr/internal/graph"
	"github.com/fcsr-dev/fcsr/internal/groups"
)

// DefaultChecker builds the dependency graph, inverts it and validates the
// release groups.
type DefaultChecker struct{}

func NewDefault() *DefaultChecker {
	return &DefaultChecker{}
}

func (c *DefaultChecker) Check(ctx context.Context, in Input) (Result, error) {
	start := time.Now()
	defer func() {
		checkDuration.Observe(time.Since(start).Seconds())
	}()

	logger := log.FromContext(ctx).WithValues(
		"root", in.Workspace.Root.Name(),
		"tool", in.Workspace.Tool,
	)

	g, err := graph.Build(in.Workspace, graph.Options{
		BumpVersionsWithWorkspaceProtocolOnly: in.Config.BumpVersionsWithWorkspaceProtocolOnly,
	})
	if err != nil {
		checksTotal.WithLabelValues(resultError).Inc()
		return Result{}, fmt.Errorf("build dependency graph: %w", err)
	}
	dependents := graph.Invert(g)

	grp := groups.Validate(groups.Input{
		Workspace:  in.Workspace,
		Fixed:      in.Config.Fixed,
		Linked:     in.Config.Linked,
		Ignore:     in.Config.Ignore,
		Dependents: dependents,
	})

	res := Result{Graph: g, Dependents: dependents, Groups: grp}
	res.Report.Merge(g.Warnings)
	res.Report.Merge(grp.Report)

	for _, w := range res.Report.Warnings {
		logger.V(1).Info("warning", "kind", w.Kind, "message", w.Message())
	}
	logger.Info("checked workspace",
		"packages", len(g.Nodes),
		"dependencies", g.EdgeCount(),
		"valid", g.Valid,
		"warnings", res.Report.Len(),
	)

	recordResult(res)
	return res, nil
}
