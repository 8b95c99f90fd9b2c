// Package diagnostics holds the structured warnings produced by the dependency
// graph builder and the release group validator.
//
// Nothing here writes to an output stream. Callers decide how to render a
// Warning; Message gives the canonical plain-text form.
package diagnostics

import (
	"fmt"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
)

type Kind string

const (
	// KindRangeMismatch: a consumer declares a range for an internal dependency
	// that cannot be validated against, or is not satisfied by, its current version.
	KindRangeMismatch Kind = "range-mismatch"
	// KindDuplicateGroupMember: a package matched more than once across the
	// groups of one kind.
	KindDuplicateGroupMember Kind = "duplicate-group-member"
	// KindFixedLinkedOverlap: a package is in both a fixed and a linked group.
	KindFixedLinkedOverlap Kind = "fixed-linked-overlap"
	// KindIgnoredDependent: a package depends on an ignored package without
	// being ignored itself.
	KindIgnoredDependent Kind = "ignored-dependent"
)

// Kinds lists every Kind in a stable order.
var Kinds = []Kind{KindRangeMismatch, KindDuplicateGroupMember, KindFixedLinkedOverlap, KindIgnoredDependent}

// Warning is one diagnosable condition. Which fields are set depends on Kind.
type Warning struct {
	Kind Kind `json:"kind"`

	// KindRangeMismatch
	Consumer   string `json:"consumer,omitempty"`
	Dependency string `json:"dependency,omitempty"`
	Expected   string `json:"expected,omitempty"`
	Range      string `json:"range,omitempty"`

	// KindDuplicateGroupMember, KindFixedLinkedOverlap, KindIgnoredDependent
	Package string             `json:"package,omitempty"`
	Group   v1alpha1.GroupKind `json:"group,omitempty"`
	Ignored string             `json:"ignored,omitempty"`
}

func RangeMismatch(consumer, dependency, expected, declared string) Warning {
	return Warning{Kind: KindRangeMismatch, Consumer: consumer, Dependency: dependency, Expected: expected, Range: declared}
}

func DuplicateGroupMember(pkg string, group v1alpha1.GroupKind) Warning {
	return Warning{Kind: KindDuplicateGroupMember, Package: pkg, Group: group}
}

func FixedLinkedOverlap(pkg string) Warning {
	return Warning{Kind: KindFixedLinkedOverlap, Package: pkg}
}

func IgnoredDependent(dependent, ignored string) Warning {
	return Warning{Kind: KindIgnoredDependent, Package: dependent, Ignored: ignored}
}

// Message renders the warning as a single line of plain text.
func (w Warning) Message() string {
	switch w.Kind {
	case KindRangeMismatch:
		return fmt.Sprintf("Package %q must depend on the current version of %q: %q vs %q",
			w.Consumer, w.Dependency, w.Expected, w.Range)
	case KindDuplicateGroupMember:
		return fmt.Sprintf("The package %q is defined in multiple sets of %s packages. "+
			"Packages can only be defined in a single set of %s packages. "+
			"If you are using glob expressions, make sure that they are valid.",
			w.Package, w.Group, w.Group)
	case KindFixedLinkedOverlap:
		return fmt.Sprintf("The package %q can be found in both fixed and linked groups. "+
			"A package can only be either fixed or linked.", w.Package)
	case KindIgnoredDependent:
		return fmt.Sprintf("The package %q depends on the ignored package %q, but %q is not being ignored. "+
			"Please add %q to the `ignore` option.", w.Package, w.Ignored, w.Package, w.Package)
	default:
		return fmt.Sprintf("unknown diagnostic %q", w.Kind)
	}
}

func (w Warning) String() string { return w.Message() }
