package v1alpha1

// DefaultSchemaURL is written into freshly initialised config files.
const DefaultSchemaURL = "https://unpkg.com/@changesets/config@latest/schema.json"

// Config is the .changeset/config.json document.
//
// Changelog, Commit and PrivatePackages keep their loosely typed JSON shape
// (false, a module name, or a [name, options] tuple); nothing in this module
// interprets them beyond loading and writing.
type Config struct {
	Schema                     string                     `json:"$schema,omitempty" koanf:"$schema"`
	Changelog                  any                        `json:"changelog" koanf:"changelog"`
	Commit                     any                        `json:"commit" koanf:"commit"`
	Fixed                      []PackageGroup             `json:"fixed" koanf:"fixed"`
	Linked                     []PackageGroup             `json:"linked" koanf:"linked"`
	Access                     AccessType                 `json:"access" koanf:"access"`
	BaseBranch                 string                     `json:"baseBranch" koanf:"baseBranch"`
	ChangedFilePatterns        []string                   `json:"changedFilePatterns,omitempty" koanf:"changedFilePatterns"`
	PrivatePackages            any                        `json:"privatePackages,omitempty" koanf:"privatePackages"`
	UpdateInternalDependencies UpdateInternalDependencies `json:"updateInternalDependencies" koanf:"updateInternalDependencies"`
	Ignore                     []string                   `json:"ignore" koanf:"ignore"`

	BumpVersionsWithWorkspaceProtocolOnly bool `json:"bumpVersionsWithWorkspaceProtocolOnly,omitempty" koanf:"bumpVersionsWithWorkspaceProtocolOnly"`
	// LegacyBumpVersionWithWorkspaceProtocolOnly is the singular spelling some
	// older config files use. The loader folds it into the field above.
	LegacyBumpVersionWithWorkspaceProtocolOnly *bool `json:"-" koanf:"bumpVersionWithWorkspaceProtocolOnly"`

	Snapshot     *Snapshot            `json:"snapshot,omitempty" koanf:"snapshot"`
	Experimental *ExperimentalOptions `json:"___experimentalUnsafeOptions_WILL_CHANGE_IN_PATCH,omitempty" koanf:"___experimentalUnsafeOptions_WILL_CHANGE_IN_PATCH"`
}

type Snapshot struct {
	UseCalculatedVersion bool   `json:"useCalculatedVersion,omitempty" koanf:"useCalculatedVersion"`
	PrereleaseTemplate   string `json:"prereleaseTemplate,omitempty" koanf:"prereleaseTemplate"`
}

type ExperimentalOptions struct {
	OnlyUpdatePeerDependentsWhenOutOfRange bool   `json:"onlyUpdatePeerDependentsWhenOutOfRange,omitempty" koanf:"onlyUpdatePeerDependentsWhenOutOfRange"`
	UpdateInternalDependents               string `json:"updateInternalDependents,omitempty" koanf:"updateInternalDependents"`
	UseCalculatedVersionForSnapshots       bool   `json:"useCalculatedVersionForSnapshots,omitempty" koanf:"useCalculatedVersionForSnapshots"`
}

// DefaultConfig returns the values applied when a field is absent.
func DefaultConfig() Config {
	return Config{
		Schema:                     DefaultSchemaURL,
		Changelog:                  "@changesets/cli/changelog",
		Commit:                     false,
		Fixed:                      []PackageGroup{},
		Linked:                     []PackageGroup{},
		Access:                     AccessRestricted,
		BaseBranch:                 "master",
		UpdateInternalDependencies: UpdateInternalDependenciesPatch,
		Ignore:                     []string{},
	}
}
