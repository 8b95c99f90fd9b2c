// Package groups validates the fixed, linked and ignore release options
// against the packages of a workspace.
package groups

import (
	"github.com/gobwas/glob"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
	"github.com/fcsr-dev/fcsr/internal/diagnostics"
)

// Validate expands every group pattern and reports:
//   - a package matched twice among the groups of one kind
//   - a package present in both a fixed and a linked group
//   - a dependent of an ignored package that is not ignored itself
//
// Patterns that match nothing, or do not compile, are skipped without a warning.
func Validate(in Input) Result {
	names := in.Workspace.Names()

	res := Result{}
	res.Fixed = expandGroups(v1alpha1.GroupFixed, in.Fixed, names, &res.Report)
	res.Linked = expandGroups(v1alpha1.GroupLinked, in.Linked, names, &res.Report)

	fixed := sets.New(flatten(res.Fixed)...)
	linked := sets.New(flatten(res.Linked)...)
	for _, name := range sets.List(fixed.Intersection(linked)) {
		res.Report.Add(diagnostics.FixedLinkedOverlap(name))
	}

	ignored := sets.New(in.Ignore...)
	for _, ignoredName := range in.Ignore {
		for _, dependent := range in.Dependents.Dependents(ignoredName) {
			if ignored.Has(dependent) {
				continue
			}
			res.Report.Add(diagnostics.IgnoredDependent(dependent, ignoredName))
		}
	}

	return res
}

// expandGroups expands the groups of one kind, warning once for every package
// that is matched more than once across them.
func expandGroups(kind v1alpha1.GroupKind, groups []v1alpha1.PackageGroup, names []string, report *diagnostics.Report) [][]string {
	found := sets.New[string]()
	duplicated := sets.New[string]()

	expanded := make([][]string, 0, len(groups))
	for _, group := range groups {
		members := expandGroup(group, names)
		for _, name := range members {
			if found.Has(name) && !duplicated.Has(name) {
				duplicated.Insert(name)
				report.Add(diagnostics.DuplicateGroupMember(name, kind))
			}
			found.Insert(name)
		}
		expanded = append(expanded, members)
	}
	return expanded
}

func expandGroup(group v1alpha1.PackageGroup, names []string) []string {
	members := make([]string, 0, len(group))
	for _, pattern := range group {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		// TODO: warn when a pattern matches no package once the message wording
		// for fixed/linked options is settled.
		for _, name := range names {
			if g.Match(name) {
				members = append(members, name)
			}
		}
	}
	return members
}

func flatten(groups [][]string) []string {
	var out []string
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}
