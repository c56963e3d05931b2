package bumptag

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument reports conflicting or missing increment flags and
	// malformed explicit versions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRemoteUnreachable reports a failed fetch or listing of remote tags.
	ErrRemoteUnreachable = errors.New("remote unreachable")

	// ErrNoTagsFound reports that no tag matched the release tag pattern.
	ErrNoTagsFound = errors.New("no release tags found")

	// ErrTagAlreadyExists reports that the new tag is already present locally.
	ErrTagAlreadyExists = errors.New("tag already exists")

	// ErrCommand reports a failed local command (tag listing, deletion, creation
	// or the latest-tag command).
	ErrCommand = errors.New("command failed")
)

// invalidArgf builds an ErrInvalidArgument with a formatted message.
func invalidArgf(format string, args ...any) error {
	return errors.WithMessagef(ErrInvalidArgument, format, args...)
}

// classify tags err with the sentinel kind, keeping the original text.
func classify(kind error, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return errors.WithMessagef(kind, format+": %v", append(args, err)...)
}
