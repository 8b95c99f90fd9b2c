package v1alpha1

// Tool identifies the package manager that owns a workspace.
//
// It is informational only; nothing in the dependency graph depends on it.
type Tool string

type AccessType string

type UpdateInternalDependencies string

// GroupKind tags a release group as fixed or linked.
type GroupKind string

const (
	ToolYarn  Tool = "yarn"
	ToolBolt  Tool = "bolt"
	ToolPnpm  Tool = "pnpm"
	ToolLerna Tool = "lerna"
	ToolRoot  Tool = "root"

	AccessPublic     AccessType = "public"
	AccessRestricted AccessType = "restricted"
	AccessPrivate    AccessType = "private"

	UpdateInternalDependenciesPatch UpdateInternalDependencies = "patch"
	UpdateInternalDependenciesMinor UpdateInternalDependencies = "minor"

	GroupFixed  GroupKind = "fixed"
	GroupLinked GroupKind = "linked"
)

// PackageGroup is one release group as written by the user: an ordered list of
// package names or glob patterns.
type PackageGroup []string
