package config

import "errors"

var (
	// ErrAlreadyInitialized indicates .changeset/config.json already exists.
	ErrAlreadyInitialized = errors.New("changesets is already initialized: .changeset/config.json exists")
	// ErrLegacyConfig indicates a version 1 .changeset/config.js is present. Its
	// options have to be moved to .changeset/config.json by hand.
	ErrLegacyConfig = errors.New("found a version 1 .changeset/config.js: transfer its options into .changeset/config.json")
)
