package graph

import (
	"strings"

	"github.com/fcsr-dev/fcsr/internal/semver"
)

const workspacePrefix = "workspace:"

// Class is the outcome of classifying one declared range for an internal dependency.
type Class int

const (
	// ClassWorkspaceWildcard: "workspace:*", "workspace:^" or "workspace:~". Always an edge.
	ClassWorkspaceWildcard Class = iota
	// ClassWorkspacePinned: any other "workspace:" range. Never validated, always invalid.
	ClassWorkspacePinned
	// ClassOptedOut: a non-workspace range while only workspace ranges are tracked.
	ClassOptedOut
	// ClassProtocol: some other protocol range (npm:, git:, link:, file: ...). Invalid.
	ClassProtocol
	// ClassMismatch: a semver range the dependency's current version does not satisfy. Invalid.
	ClassMismatch
	// ClassDistTag: a range that does not parse, such as "latest". Skipped.
	ClassDistTag
	// ClassSatisfied: a semver range the current version satisfies. An edge.
	ClassSatisfied
)

var classNames = map[Class]string{
	ClassWorkspaceWildcard: "workspace-wildcard",
	ClassWorkspacePinned:   "workspace-pinned",
	ClassOptedOut:          "opted-out",
	ClassProtocol:          "protocol",
	ClassMismatch:          "mismatch",
	ClassDistTag:           "dist-tag",
	ClassSatisfied:         "satisfied",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// Edge reports whether the dependency is recorded in the graph.
func (c Class) Edge() bool {
	return c == ClassWorkspaceWildcard || c == ClassSatisfied
}

// Invalid reports whether the declaration marks the graph invalid and produces a warning.
func (c Class) Invalid() bool {
	return c == ClassWorkspacePinned || c == ClassProtocol || c == ClassMismatch
}

type rangeInput struct {
	declared string
	opts     Options

	rng      semver.Range
	rangeErr error
	ver      semver.Version
	verErr   error
}

func newRangeInput(declared, current string, opts Options) rangeInput {
	in := rangeInput{declared: declared, opts: opts}
	in.rng, in.rangeErr = semver.ParseRange(declared)
	in.ver, in.verErr = semver.ParseVersion(current)
	return in
}

type rule struct {
	class Class
	match func(in rangeInput) bool
}

// rules are evaluated in order; the first match wins. Later rules may rely on
// earlier ones having not matched (ClassOptedOut only sees non-workspace ranges).
var rules = []rule{
	{ClassWorkspaceWildcard, func(in rangeInput) bool {
		if !strings.HasPrefix(in.declared, workspacePrefix) {
			return false
		}
		switch strings.TrimPrefix(in.declared, workspacePrefix) {
		case "*", "^", "~":
			return true
		}
		return false
	}},
	{ClassWorkspacePinned, func(in rangeInput) bool {
		return strings.HasPrefix(in.declared, workspacePrefix)
	}},
	{ClassOptedOut, func(in rangeInput) bool {
		return in.opts.BumpVersionsWithWorkspaceProtocolOnly
	}},
	{ClassProtocol, func(in rangeInput) bool {
		return strings.Contains(in.declared, ":")
	}},
	{ClassMismatch, func(in rangeInput) bool {
		return in.rangeErr == nil && in.verErr == nil && !semver.Satisfies(in.ver, in.rng)
	}},
	{ClassDistTag, func(in rangeInput) bool {
		return in.rangeErr != nil
	}},
}

// Classify decides what a declared range for an internal dependency means,
// given the dependency's current version.
//
// A range that parses while the current version does not is ClassSatisfied:
// there is nothing to compare it against.
func Classify(declared, current string, opts Options) Class {
	in := newRangeInput(declared, current, opts)
	for _, r := range rules {
		if r.match(in) {
			return r.class
		}
	}
	return ClassSatisfied
}
