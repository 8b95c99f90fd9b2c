package graph

import "errors"

var (
	// ErrMissingName indicates a workspace package whose manifest has no name.
	ErrMissingName = errors.New("package has no name")
	// ErrDuplicatePackage indicates two workspace packages with the same name.
	ErrDuplicatePackage = errors.New("duplicate package name")
)
