// Package kernel provides the kernel version model used across the CLI.
package kernel

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a kernel release number (major.minor.patch).
// Values are immutable once parsed; compare with Compare or Less.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a "major.minor.patch" string into a Version.
//
// Each component is trimmed of surrounding whitespace before being parsed as
// a non-negative integer. A component that does not parse yields a
// *ComponentError; anything other than exactly three dot-separated
// components yields a *FormatError. Component errors take precedence, so
// "6.x" fails on "x" rather than on the component count.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")

	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return Version{}, &ComponentError{Input: s, Component: part, Err: err}
		}
		nums = append(nums, int(n))
	}

	if len(nums) != 3 {
		return Version{}, &FormatError{Input: s}
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String renders the version as "major.minor.patch", the inverse of Parse
// for canonical input.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ShortString renders the version as "major.minor". Upstream kernel releases
// drop the patch component from artifact names when it is zero, and several
// derived names use the short form unconditionally.
func (v Version) ShortString() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1, 0 or 1 ordering a against b lexicographically by
// major, then minor, then patch.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return cmpInt(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return cmpInt(v.Minor, other.Minor)
	}
	return cmpInt(v.Patch, other.Patch)
}

// Less reports whether v orders strictly before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
