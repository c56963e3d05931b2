package bumptag

import (
	"strconv"
	"strings"
)

// bound is one compiled end of a Range.
type bound struct {
	v   Version
	set bool
}

// window is a Range resolved to versions: floor is inclusive unless
// floorOpen, ceil is always exclusive.
type window struct {
	floor     bound
	ceil      bound
	floorOpen bool
}

func (w window) contains(v Version) bool {
	if w.floor.set {
		c := v.Compare(w.floor.v)
		if c < 0 || (c == 0 && w.floorOpen) {
			return false
		}
	}

	return !w.ceil.set || v.Compare(w.ceil.v) < 0
}

// clipRange keeps records inside r. Unparsable bounds are ignored.
func clipRange(rs []rec, r Range) []rec {
	w := window{floorOpen: r.MinExclusive}
	if r.Min != "" {
		w.floor = floorOf(r.Min, r.IncludePrerelease)
	}
	if r.Max != "" {
		w.ceil = ceilOf(r.Max, r.MaxExclusive)
	}

	keep := rs[:0]
	for _, it := range rs {
		if w.contains(it.v) {
			keep = append(keep, it)
		}
	}

	return keep
}

// shorthand is a parsed range bound: depth counts the numeric parts given.
type shorthand struct {
	v     Version
	depth int
}

func parseShorthand(s string) (shorthand, bool) {
	m := boundRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return shorthand{}, false
	}

	var (
		nums  [3]int
		depth int
	)
	for i := range nums {
		if m[i+1] == "" {
			break
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return shorthand{}, false
		}
		nums[i] = n
		depth++
	}

	v := Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}
	if depth == 3 {
		v.Suffix = m[4]
	}

	return shorthand{v: v, depth: depth}, true
}

// floorOf: X and X.Y floor to X.0.0 / X.Y.0, or to the lowest suffixed
// version there when pre is set.
func floorOf(s string, pre bool) bound {
	sh, ok := parseShorthand(s)
	if !ok {
		return bound{}
	}

	v := sh.v
	if sh.depth < 3 && pre {
		v.Suffix = "0"
	}

	return bound{v: v, set: true}
}

// ceilOf returns the exclusive ceiling for s.
//
//	X     incl: < (X+1).0.0-0   excl: < X.0.0-0
//	X.Y   incl: < X.(Y+1).0-0   excl: < X.Y.0-0
//	X.Y.Z incl: < X.Y.(Z+1)-0   excl: < X.Y.Z
//	X.Y.Z-S incl: < X.Y.Z-S.0
func ceilOf(s string, exclusive bool) bound {
	sh, ok := parseShorthand(s)
	if !ok {
		return bound{}
	}

	v := sh.v
	switch {
	case sh.depth == 3 && exclusive:
		// as given
	case sh.depth == 3 && v.Suffix != "":
		v.Suffix += ".0"
	case sh.depth == 3:
		v.Patch++
		v.Suffix = "0"
	case exclusive:
		v.Suffix = "0"
	case sh.depth == 1:
		v = Version{Major: v.Major + 1, Suffix: "0"}
	default:
		v = Version{Major: v.Major, Minor: v.Minor + 1, Suffix: "0"}
	}

	return bound{v: v, set: true}
}
