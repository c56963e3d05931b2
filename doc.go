/*
Package bumptag resolves the latest release tag of a remote repository and
creates the next semantic-version tag in the working copy.

Tags have the form vMAJOR.MINOR.PATCH with an optional alphabetic suffix
(v1.2.3, v1.2.3-dirty). Typical flow:

 1. Validate the request: NewRequest(major, minor, patch, explicit).
 2. Tagger.Sync deletes every local tag and refetches the remote ones, so
    stale tags from an aborted run never win.
 3. Tagger.ResolveLatest picks the highest matching tag (or runs the
    configured build-tool command that prints it).
 4. ComputeNext increments one part (lower parts reset to 0) or returns the
    explicit version unchanged.
 5. Tagger.CreateTag creates it, failing with ErrTagAlreadyExists if present.

Tagger.Run does all of the above. Set Config.Sync to false to query the
remote with ls-remote and leave local tags alone.

Selection notes:
  - Tags not matching vMAJOR.MINOR.PATCH[-SUFFIX] are ignored.
  - Suffixed tags compete with release tags unless SelectOptions.ReleaseOnly
    is set; v1.2.3-beta sorts below v1.2.3.
  - Include / Exclude: optional regex prefilters on raw tag strings.
  - Range: clip by lower/upper bounds (X / X.Y / X.Y.Z), e.g. Max "1" keeps
    a v1 maintenance line while v2 exists.

Usage example:

	latest, ok := bumptag.Latest([]string{
		"v2.3.0", "v2.4.1", "v2.5.0-beta", "nightly", "1.0.0",
	}, bumptag.DefaultSelectOptions())
	// latest == "v2.5.0-beta", ok == true

	cur, _ := bumptag.ParseVersion(latest)
	req, _ := bumptag.NewRequest(false, false, true, "")
	next, _ := bumptag.ComputeNext(cur, req)
	fmt.Println(next) // v2.5.1
*/
package bumptag
