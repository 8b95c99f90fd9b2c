package checker

import "errors"

var (
	// ErrInconsistentDependencies indicates a workspace whose dependency graph is invalid.
	ErrInconsistentDependencies = errors.New("internal dependencies are inconsistent")
	// ErrWarnings indicates warnings were reported while running in strict mode.
	ErrWarnings = errors.New("warnings reported in strict mode")
)
