package bumpversion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BumpKind selects which version component is incremented.
type BumpKind string

const (
	Major BumpKind = "major"
	Minor BumpKind = "minor"
	Patch BumpKind = "patch"
)

// ParseBumpKind validates s as one of major, minor or patch.
func ParseBumpKind(s string) (BumpKind, error) {
	switch k := BumpKind(s); k {
	case Major, Minor, Patch:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown bump type %q (want major, minor or patch)", ErrInvalidArgument, s)
}

// Version is the numeric core of a version string.
type Version struct {
	Major, Minor, Patch int
}

// ParseVersion splits v on "." and reads the first three components as
// base-10 integers. Missing components are 0 and anything after the third
// component (an earlier prerelease suffix) is ignored.
func ParseVersion(v string) (Version, error) {
	var nums [3]int
	parts := strings.Split(strings.TrimSpace(v), ".")
	for i := 0; i < len(nums) && i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: version %q: component %d (%q) is not a non-negative integer", ErrInvalidArgument, v, i+1, parts[i])
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String formats the version as major.minor.patch.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Next returns the version after applying kind.
func (v Version) Next(kind BumpKind) (Version, error) {
	var n int
	switch kind {
	case Major:
		n = v.Major
	case Minor:
		n = v.Minor
	case Patch:
		n = v.Patch
	}
	if n == math.MaxInt {
		return Version{}, fmt.Errorf("%w: %s component of %s overflows", ErrInvalidArgument, kind, v)
	}

	switch kind {
	case Major:
		return Version{Major: v.Major + 1}, nil
	case Minor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case Patch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	}
	_, err := ParseBumpKind(string(kind))
	return Version{}, err
}

// Bump computes the version that follows current for the given bump kind.
// A non-empty prerelease is appended after a "." separator:
//
//	Bump("1.2.3", Patch, "rc1") == "1.2.4.rc1"
func Bump(current string, kind BumpKind, prerelease string) (string, error) {
	if _, err := ParseBumpKind(string(kind)); err != nil {
		return "", err
	}
	v, err := ParseVersion(current)
	if err != nil {
		return "", err
	}
	next, err := v.Next(kind)
	if err != nil {
		return "", err
	}
	if prerelease == "" {
		return next.String(), nil
	}
	return next.String() + "." + prerelease, nil
}

// Tag returns the git tag name for a version.
func Tag(version string) string {
	return "v" + version
}
