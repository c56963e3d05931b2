package bumptag

import "regexp"

var (
	// Release tag: vMAJOR.MINOR.PATCH with an optional alphabetic suffix.
	tagRe = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)(?:-([a-zA-Z]*))?$`)

	// Range bound: X, X.Y or X.Y.Z, optional 'v', suffix only after X.Y.Z.
	boundRe = regexp.MustCompile(`^v?(\d+)(?:\.(\d+)(?:\.(\d+)(?:-([0-9A-Za-z.]+))?)?)?$`)
)
