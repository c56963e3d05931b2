package bumptag

import "sort"

// rec is an internal record carrying raw tag, input index, and parsed version.
type rec struct {
	raw string  // raw tag
	v   Version // parsed
	idx int     // position
}

// Select filters and sorts release tags.
//  1. cheap raw prefilter (include/exclude regex)
//  2. ParseVersion (once)
//  3. ReleaseOnly -> Range -> Dedup -> Sort -> Limit
//
// Tags that do not match vMAJOR.MINOR.PATCH[-SUFFIX] are always dropped.
func Select(in []string, opt SelectOptions) []string {
	raw := preFilterRaw(in, opt)
	if len(raw) == 0 {
		return nil
	}

	rs := parseAll(raw)

	if opt.ReleaseOnly {
		rs = filterReleaseOnly(rs)
	}

	if opt.Range.Enabled() && len(rs) > 0 {
		rs = clipRange(rs, opt.Range)
	}

	if len(rs) > 0 {
		rs = deduplicate(rs)
	}

	switch opt.Sort {
	case SortAsc:
		sortSemver(rs, true)
	case SortDesc:
		sortSemver(rs, false)
	default:
		// keep original order
	}

	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.raw)
	}

	return capStrings(out, opt.Limit)
}

// Latest returns the highest release tag in `in` per opt, ignoring opt.Sort and opt.Limit.
// The second result is false when nothing matched.
func Latest(in []string, opt SelectOptions) (string, bool) {
	opt.Sort = SortDesc
	opt.Limit = 1

	out := Select(in, opt)
	if len(out) == 0 {
		return "", false
	}

	return out[0], true
}

// * raw prefilter (cheap, string-only)

// preFilterRaw applies Include / Exclude.
func preFilterRaw(in []string, opt SelectOptions) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if opt.Include != nil && !opt.Include.MatchString(s) {
			continue
		}

		if opt.Exclude != nil && opt.Exclude.MatchString(s) {
			continue
		}

		out = append(out, s)
	}

	return out
}

// * parsing

// parseAll keeps tags that ParseVersion accepts.
func parseAll(in []string) []rec {
	rs := make([]rec, 0, len(in))

	for idx, s := range in {
		v, err := ParseVersion(s)
		if err != nil {
			continue
		}

		rs = append(rs, rec{raw: s, v: v, idx: idx})
	}

	return rs
}

// * gating

// filterReleaseOnly drops suffixed tags.
func filterReleaseOnly(in []rec) []rec {
	out := in[:0]
	for _, r := range in {
		if r.v.Suffix != "" {
			continue
		}

		out = append(out, r)
	}

	return out
}

// * dedup

type dkey struct {
	suffix        string
	maj, min, pat int
}

func deduplicate(in []rec) []rec {
	seen := make(map[dkey]struct{}, len(in))
	out := in[:0]

	for _, r := range in {
		v := r.v
		k := dkey{maj: v.Major, min: v.Minor, pat: v.Patch, suffix: v.Suffix}
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, r)
	}

	return out
}

// * sorting

func sortSemver(in []rec, asc bool) {
	if len(in) < 2 {
		return
	}

	sort.SliceStable(in, func(i, j int) bool {
		a, b := in[i], in[j]
		c := a.v.Compare(b.v)
		if c == 0 {
			// deterministic tie-breaker: lex raw, then by input order
			if a.raw != b.raw {
				if asc {
					return a.raw < b.raw
				}
				return a.raw > b.raw
			}
			return a.idx < b.idx
		}

		if asc {
			return c < 0
		}

		return c > 0
	})
}
