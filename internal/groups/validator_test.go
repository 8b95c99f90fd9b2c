package groups

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
	"github.com/fcsr-dev/fcsr/internal/diagnostics"
	"github.com/fcsr-dev/fcsr/internal/graph"
)

func newWorkspace(t *testing.T, members ...v1alpha1.Manifest) (v1alpha1.Workspace, graph.DependentsGraph) {
	t.Helper()
	ws := v1alpha1.Workspace{
		Tool: v1alpha1.ToolPnpm,
		Root: v1alpha1.Package{Manifest: v1alpha1.Manifest{Name: "root", Version: "0.0.0"}, Dir: "."},
	}
	for _, m := range members {
		ws.Packages = append(ws.Packages, v1alpha1.Package{Manifest: m, Dir: "packages/" + m.Name})
	}
	dependents, err := graph.Dependents(ws, graph.Options{})
	require.NoError(t, err)
	return ws, dependents
}

func manifest(name string, deps map[string]string) v1alpha1.Manifest {
	return v1alpha1.Manifest{Name: name, Version: "1.0.0", Dependencies: deps}
}

func TestValidate_IgnoredDependentNotIgnored(t *testing.T) {
	ws, dependents := newWorkspace(t,
		manifest("a", nil),
		manifest("b", map[string]string{"a": "workspace:*"}),
	)

	res := Validate(Input{Workspace: ws, Ignore: []string{"a"}, Dependents: dependents})

	require.Equal(t, 1, res.Report.Len())
	assert.Equal(t, diagnostics.IgnoredDependent("b", "a"), res.Report.Warnings[0])
}

func TestValidate_IgnoredDependentAlsoIgnored(t *testing.T) {
	ws, dependents := newWorkspace(t,
		manifest("a", nil),
		manifest("b", map[string]string{"a": "workspace:*"}),
	)

	res := Validate(Input{Workspace: ws, Ignore: []string{"a", "b"}, Dependents: dependents})

	assert.True(t, res.Report.Empty(), "unexpected warnings: %v", res.Report.Warnings)
}

func TestValidate_IgnoreUsesValidatedEdgesOnly(t *testing.T) {
	ws, dependents := newWorkspace(t,
		manifest("a", nil),
		manifest("b", map[string]string{"a": "^9.0.0"}),
		manifest("c", map[string]string{"a": "latest"}),
	)

	res := Validate(Input{Workspace: ws, Ignore: []string{"a"}, Dependents: dependents})

	assert.Empty(t, res.Report.OfKind(diagnostics.KindIgnoredDependent))
}

func TestValidate_FixedLinkedOverlap(t *testing.T) {
	ws, dependents := newWorkspace(t, manifest("a", nil), manifest("b", nil))

	res := Validate(Input{
		Workspace:  ws,
		Fixed:      []v1alpha1.PackageGroup{{"a"}},
		Linked:     []v1alpha1.PackageGroup{{"a"}},
		Dependents: dependents,
	})

	require.Equal(t, 1, res.Report.Len())
	assert.Equal(t, diagnostics.FixedLinkedOverlap("a"), res.Report.Warnings[0])
}

func TestValidate_DuplicateWithinKind(t *testing.T) {
	tests := []struct {
		name   string
		fixed  []v1alpha1.PackageGroup
		linked []v1alpha1.PackageGroup
		want   []diagnostics.Warning
	}{
		{
			name:  "fixed across groups",
			fixed: []v1alpha1.PackageGroup{{"a"}, {"a"}},
			want:  []diagnostics.Warning{diagnostics.DuplicateGroupMember("a", v1alpha1.GroupFixed)},
		},
		{
			name:   "linked within one group",
			linked: []v1alpha1.PackageGroup{{"a", "a"}},
			want:   []diagnostics.Warning{diagnostics.DuplicateGroupMember("a", v1alpha1.GroupLinked)},
		},
		{
			name:  "reported once per package",
			fixed: []v1alpha1.PackageGroup{{"a"}, {"a"}, {"a", "b"}},
			want:  []diagnostics.Warning{diagnostics.DuplicateGroupMember("a", v1alpha1.GroupFixed)},
		},
		{
			name:  "glob overlapping a literal",
			fixed: []v1alpha1.PackageGroup{{"@scope/*"}, {"@scope/b"}},
			want:  []diagnostics.Warning{diagnostics.DuplicateGroupMember("@scope/b", v1alpha1.GroupFixed)},
		},
		{
			name:   "kinds do not share duplicate tracking",
			fixed:  []v1alpha1.PackageGroup{{"a"}},
			linked: []v1alpha1.PackageGroup{{"b"}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, dependents := newWorkspace(t,
				manifest("a", nil), manifest("b", nil),
				manifest("@scope/a", nil), manifest("@scope/b", nil),
			)
			res := Validate(Input{Workspace: ws, Fixed: tt.fixed, Linked: tt.linked, Dependents: dependents})
			assert.Equal(t, tt.want, res.Report.OfKind(diagnostics.KindDuplicateGroupMember))
		})
	}
}

func TestValidate_Expansion(t *testing.T) {
	ws, dependents := newWorkspace(t,
		manifest("pkg-a", nil), manifest("pkg-b", nil), manifest("other", nil),
		manifest("@scope/ui", nil),
	)

	res := Validate(Input{
		Workspace:  ws,
		Fixed:      []v1alpha1.PackageGroup{{"other", "pkg-*"}, {"does-not-exist"}},
		Linked:     []v1alpha1.PackageGroup{{"@scope/*", "ro?t"}},
		Dependents: dependents,
	})

	assert.Equal(t, [][]string{{"other", "pkg-a", "pkg-b"}, {}}, res.Fixed)
	assert.Equal(t, [][]string{{"@scope/ui", "root"}}, res.Linked)
	assert.True(t, res.Report.Empty(), "unmatched patterns must be silent: %v", res.Report.Warnings)
}

func TestValidate_StarCrossesSlash(t *testing.T) {
	ws, dependents := newWorkspace(t, manifest("@scope/ui", nil), manifest("@scope/core", nil))

	res := Validate(Input{Workspace: ws, Linked: []v1alpha1.PackageGroup{{"@scope*"}}, Dependents: dependents})

	assert.Equal(t, [][]string{{"@scope/ui", "@scope/core"}}, res.Linked)
}
