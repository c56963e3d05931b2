// Package git wraps the git CLI operations needed to resolve and create release tags.
package git

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/woozymasta/bumptag/internal/shell"
)

//go:generate mockgen -source=$GOFILE -package=mock -destination=../mock/mock_repository.go

// Repository is the tag namespace of a working copy and its remotes.
type Repository interface {
	AddRemote(ctx context.Context, name, url string) error
	RemoveRemote(ctx context.Context, name string) error
	FetchTags(ctx context.Context, remote string) error
	Tags(ctx context.Context) ([]string, error)
	DeleteTags(ctx context.Context, tags []string) error
	RemoteTags(ctx context.Context, remote string) ([]string, error)
	CreateTag(ctx context.Context, tag, message string) error
}

const binary = "git"

// Git implements Repository over the git binary.
type Git struct {
	run shell.Runner
}

// New returns a Git using r to invoke git.
func New(r shell.Runner) *Git {
	return &Git{run: r}
}

// AddRemote registers url under name.
func (g *Git) AddRemote(ctx context.Context, name, url string) error {
	_, err := g.run.Run(ctx, binary, "remote", "add", name, url)
	return errors.Wrapf(err, "add remote %q", name)
}

// RemoveRemote unregisters name.
func (g *Git) RemoveRemote(ctx context.Context, name string) error {
	_, err := g.run.Run(ctx, binary, "remote", "remove", name)
	return errors.Wrapf(err, "remove remote %q", name)
}

// FetchTags fetches every tag of remote, overwriting local tags of the same name.
func (g *Git) FetchTags(ctx context.Context, remote string) error {
	_, err := g.run.Run(ctx, binary, "fetch", "--tags", "--force", remote)
	return errors.Wrapf(err, "fetch tags from %q", remote)
}

// Tags lists local tags.
func (g *Git) Tags(ctx context.Context) ([]string, error) {
	out, err := g.run.Run(ctx, binary, "tag", "--list")
	if err != nil {
		return nil, errors.Wrap(err, "list tags")
	}

	return fields(out), nil
}

// DeleteTags deletes the given local tags. An empty list is a no-op.
func (g *Git) DeleteTags(ctx context.Context, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	args := append([]string{"tag", "-d"}, tags...)
	_, err := g.run.Run(ctx, binary, args...)
	return errors.Wrapf(err, "delete %d tags", len(tags))
}

// RemoteTags lists the tag names of remote without fetching them.
// remote may be a configured remote name or a URL.
func (g *Git) RemoteTags(ctx context.Context, remote string) ([]string, error) {
	out, err := g.run.Run(ctx, binary, "ls-remote", "--tags", "--refs", remote)
	if err != nil {
		return nil, errors.Wrapf(err, "list tags of %q", remote)
	}

	return parseLsRemote(out), nil
}

// CreateTag creates a lightweight tag, or an annotated one when message is set.
func (g *Git) CreateTag(ctx context.Context, tag, message string) error {
	args := []string{"tag", tag}
	if message != "" {
		args = []string{"tag", "-a", tag, "-m", message}
	}

	_, err := g.run.Run(ctx, binary, args...)
	return errors.Wrapf(err, "create tag %q", tag)
}

// parseLsRemote extracts tag names from "<sha>\trefs/tags/<name>" lines.
func parseLsRemote(out string) []string {
	tags := make([]string, 0, 16)
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) < 2 {
			continue
		}

		name, ok := strings.CutPrefix(f[1], "refs/tags/")
		if !ok || name == "" {
			continue
		}
		tags = append(tags, strings.TrimSuffix(name, "^{}"))
	}

	return tags
}

func fields(out string) []string {
	f := strings.Fields(out)
	if f == nil {
		return []string{}
	}

	return f
}
