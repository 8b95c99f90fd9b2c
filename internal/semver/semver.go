package semver

import (
	"errors"
	"fmt"
	"strings"

	mm "github.com/Masterminds/semver/v3"
)

// Version is a semantic version.
//
// This is a thin wrapper around github.com/Masterminds/semver/v3. Parsing is
// strict: "1.2.3" is a version, "v1.2.3" and "1.2" are not.
type Version struct {
	v *mm.Version
}

// Range is a semantic version range as written in a dependency map.
//
// Examples:
// - ">=1.2.0 <2.0.0"
// - "^1.0.0"
// - "~1.4"
// - "1.x || 2.x"
type Range struct {
	raw string
	c   *mm.Constraints
}

func ParseVersion(raw string) (Version, error) {
	v, err := mm.StrictNewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("semver: parse version %q: %w", raw, err)
	}
	return Version{v: v}, nil
}

func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.String()
}

// ParseRange parses a declared range. Dist-tags such as "latest", protocol
// ranges such as "npm:foo@1" and the empty string do not parse.
func ParseRange(raw string) (Range, error) {
	if strings.TrimSpace(raw) == "" {
		return Range{}, errors.New("semver: empty range")
	}
	c, err := mm.NewConstraint(raw)
	if err != nil {
		return Range{}, fmt.Errorf("semver: parse range %q: %w", raw, err)
	}
	return Range{raw: raw, c: c}, nil
}

func MustParseRange(raw string) Range {
	r, err := ParseRange(raw)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Range) String() string { return r.raw }

func Satisfies(v Version, r Range) bool {
	if v.v == nil || r.c == nil {
		return false
	}
	return r.c.Check(v.v)
}
