package workspace

import "errors"

var (
	// ErrNoRootManifest indicates the workspace directory has no package.json.
	ErrNoRootManifest = errors.New("no package.json in workspace root")
	// ErrMissingName indicates a manifest without a name.
	ErrMissingName = errors.New("package.json has no name")
	// ErrDuplicatePackage indicates two manifests declaring the same name.
	ErrDuplicatePackage = errors.New("duplicate package name")
)
