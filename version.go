package bumptag

import (
	"math"
	"strconv"
	"strings"

	"github.com/woozymasta/semver"
)

// Version is a release version vMAJOR.MINOR.PATCH[-SUFFIX].
type Version struct {
	// Original is the text the version was parsed from; empty for computed versions.
	Original string
	// Suffix is the optional alphabetic suffix, without the leading '-'.
	Suffix string

	Major int
	Minor int
	Patch int
}

// ParseVersion parses a release tag. The whole string must match
// ^v\d+\.\d+\.\d+(-[a-zA-Z]*)?$, otherwise ErrInvalidArgument is returned.
func ParseVersion(s string) (Version, error) {
	m := tagRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, invalidArgf("version %q does not match vMAJOR.MINOR.PATCH[-SUFFIX]", s)
	}

	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Version{}, invalidArgf("version %q: component %q out of range", s, m[i+1])
		}
		nums[i] = n
	}

	return Version{
		Original: s,
		Suffix:   m[4],
		Major:    nums[0],
		Minor:    nums[1],
		Patch:    nums[2],
	}, nil
}

// String returns the canonical form vMAJOR.MINOR.PATCH[-SUFFIX].
func (v Version) String() string {
	var b strings.Builder
	b.Grow(16 + len(v.Suffix))
	b.WriteByte('v')
	b.WriteString(strconv.Itoa(v.Major))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Minor))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Patch))
	if v.Suffix != "" {
		b.WriteByte('-')
		b.WriteString(v.Suffix)
	}

	return b.String()
}

// Tag returns the tag name: the original text when the version was parsed,
// the canonical form otherwise.
func (v Version) Tag() string {
	if v.Original != "" {
		return v.Original
	}

	return v.String()
}

// IsZero reports whether v is the zero value (no version resolved).
func (v Version) IsZero() bool {
	return v == Version{}
}

// Bump returns v with part incremented and every lower part reset to 0.
// The suffix is dropped. PartNone returns v unchanged. A component already at
// math.MaxInt cannot be incremented and yields ErrInvalidArgument.
func (v Version) Bump(part Part) (Version, error) {
	var n int
	switch part {
	case PartMajor:
		n = v.Major
	case PartMinor:
		n = v.Minor
	case PartPatch:
		n = v.Patch
	default:
		return v, nil
	}

	if n == math.MaxInt {
		return Version{}, invalidArgf("cannot bump %s of %s: component at maximum", part, v.Tag())
	}

	switch part {
	case PartMajor:
		return Version{Major: v.Major + 1}, nil
	case PartMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	}
}

// Compare orders versions by SemVer precedence; a suffixed version sorts
// before the release with the same numbers.
func (v Version) Compare(other Version) int {
	return v.semver().Compare(other.semver())
}

func (v Version) semver() semver.Semver {
	return makeSemver(v.Major, v.Minor, v.Patch, v.Suffix)
}

// makeSemver builds a Semver without parsing.
// prerelease is given without the leading '-' (e.g. "0" or "beta").
func makeSemver(maj, min, pat int, prerelease string) semver.Semver {
	flags := semver.FlagHasMajor | semver.FlagHasMinor | semver.FlagHasPatch
	if prerelease != "" {
		flags |= semver.FlagHasPre
	}

	return semver.Semver{
		Major:      maj,
		Minor:      min,
		Patch:      pat,
		Prerelease: prerelease,
		Flags:      flags,
		Valid:      true,
	}
}
