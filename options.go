package bumptag

import "regexp"

// SelectOptions configures how the latest release tag is picked from a tag list.
type SelectOptions struct {
	// Include positive regex applied to the raw tag; keeps only tags that match.
	Include *regexp.Regexp

	// Exclude negative regex applied to the raw tag; drops tags that match.
	Exclude *regexp.Regexp

	// Range clipping. Applied after parsing, before sorting.
	Range Range

	// Sort defines output ordering (none/asc/desc).
	Sort SortMode

	// Limit caps the number of returned tags (<=0 = unlimited).
	Limit int

	// ReleaseOnly drops suffixed tags (vX.Y.Z-SUFFIX).
	ReleaseOnly bool
}

// DefaultSelectOptions returns the preset used to resolve the latest release:
// every vMAJOR.MINOR.PATCH[-SUFFIX] tag, newest first.
func DefaultSelectOptions() SelectOptions {
	return SelectOptions{
		Sort: SortDesc,
		Range: Range{
			IncludePrerelease: true,
		},
	}
}

// SortMode controls the output ordering.
type SortMode uint8

const (
	// SortNone preserves the existing order.
	SortNone SortMode = iota
	// SortAsc sorts ascending by SemVer.
	SortAsc
	// SortDesc sorts descending by SemVer.
	SortDesc
)

// Range clips versions to [Min, Max] with optional exclusive ends.
// Min/Max accept X, X.Y, X.Y.Z (with optional 'v') or a full version with suffix.
// A shorthand Max like "1" keeps the whole v1 line, which is how a
// maintenance branch bumps v1.x while v2 already exists.
type Range struct {
	Min string // empty => no lower bound
	Max string // empty => no upper bound

	// When true => exclusive bound. Default false => inclusive.
	MinExclusive bool
	MaxExclusive bool

	// When Min is shorthand (X or X.Y), include suffixed tags at the floor by using "-0".
	IncludePrerelease bool
}

// Enabled reports whether any bound is set.
func (r Range) Enabled() bool {
	return r.Min != "" || r.Max != ""
}
