package bumptag

// Part selects the version component to increment.
type Part uint8

const (
	// PartNone means no increment; used with an explicit version.
	PartNone Part = iota
	// PartPatch increments PATCH.
	PartPatch
	// PartMinor increments MINOR and resets PATCH.
	PartMinor
	// PartMajor increments MAJOR and resets MINOR and PATCH.
	PartMajor
)

// String returns a stable textual representation for Part.
func (p Part) String() string {
	switch p {
	case PartMajor:
		return "major"
	case PartMinor:
		return "minor"
	case PartPatch:
		return "patch"
	default:
		return "none"
	}
}

// ParsePart maps free-form tokens to Part.
// Supported aliases (case-insensitive):
//
//	major:  "major","maj","x","m"
//	minor:  "minor","min","y","i"
//	patch:  "patch","pth","z","p"
func ParsePart(s string) Part {
	switch toTok(s) {
	case "major", "maj", "x", "m":
		return PartMajor
	case "minor", "min", "y", "i":
		return PartMinor
	case "patch", "pth", "z", "p":
		return PartPatch
	default:
		return PartNone
	}
}

// Request is a validated increment request: either one Part or an explicit version.
type Request struct {
	// Explicit is the validated explicit version; zero when Part is used.
	Explicit Version
	// Part to increment; PartNone when Explicit is set.
	Part Part
	// Overridden is set when increment flags were given together with an
	// explicit version and were ignored.
	Overridden bool
}

// IsExplicit reports whether the request carries an explicit version.
func (r Request) IsExplicit() bool {
	return r.Part == PartNone
}

// NewRequest validates the increment flags and the explicit version.
//
//   - more than one of major/minor/patch is rejected, even with explicit set;
//   - explicit must match vMAJOR.MINOR.PATCH[-SUFFIX] and suppresses the flags;
//   - neither flags nor explicit is a usage error.
func NewRequest(major, minor, patch bool, explicit string) (Request, error) {
	var (
		n    int
		part Part
	)
	for _, f := range []struct {
		set  bool
		part Part
	}{
		{major, PartMajor},
		{minor, PartMinor},
		{patch, PartPatch},
	} {
		if f.set {
			n++
			part = f.part
		}
	}

	if n > 1 {
		return Request{}, invalidArgf("only one of major, minor, patch may be set")
	}

	if explicit != "" {
		v, err := ParseVersion(explicit)
		if err != nil {
			return Request{}, err
		}

		return Request{Explicit: v, Overridden: n > 0}, nil
	}

	if n == 0 {
		return Request{}, invalidArgf("one of major, minor, patch or an explicit version is required")
	}

	return Request{Part: part}, nil
}

// ComputeNext returns the version to tag: the explicit version unchanged, or
// current with the requested part incremented. An explicit version is not
// checked against current.
func ComputeNext(current Version, req Request) (Version, error) {
	if req.IsExplicit() {
		if req.Explicit.IsZero() {
			return Version{}, invalidArgf("empty request")
		}

		return req.Explicit, nil
	}

	return current.Bump(req.Part)
}
