package bumptag

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/woozymasta/bumptag/internal/git"
	"github.com/woozymasta/bumptag/internal/shell"
)

// Config is the immutable Tagger configuration.
type Config struct {
	// Remote is the remote name used when RemoteURL is empty.
	Remote string
	// RemoteURL is fetched through a temporary remote named TempRemote.
	RemoteURL  string
	TempRemote string

	// Message makes tags annotated; "{tag}" is replaced with the tag name.
	Message string

	// LatestCommand prints the latest release tag; empty selects it from tags.
	LatestCommand []string

	Select SelectOptions

	// Sync deletes all local tags and refetches them from the remote before
	// resolving. When false the remote is queried with ls-remote and local
	// tags are left untouched.
	Sync bool

	// DryRun resolves and computes but does not create the tag.
	DryRun bool
}

// Result reports one run.
type Result struct {
	// Previous is the latest remote version; zero when none was found and
	// an explicit version was requested.
	Previous Version
	Next     Version
	Created  bool
}

// Tagger resolves the latest remote release and creates the next tag.
type Tagger struct {
	repo   git.Repository
	runner shell.Runner
	log    *zap.SugaredLogger
	cfg    Config
}

// New returns a Tagger. runner is only used for LatestCommand.
func New(repo git.Repository, runner shell.Runner, cfg Config, log *zap.SugaredLogger) *Tagger {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if cfg.Remote == "" {
		cfg.Remote = "origin"
	}

	if cfg.TempRemote == "" {
		cfg.TempRemote = "bumptag-upstream"
	}

	return &Tagger{repo: repo, runner: runner, cfg: cfg, log: log}
}

// Run synchronizes tags, resolves the latest version, computes the next one
// and creates it.
func (t *Tagger) Run(ctx context.Context, req Request) (Result, error) {
	if t.cfg.Sync {
		if err := t.Sync(ctx); err != nil {
			return Result{}, err
		}
	}

	var res Result

	prev, err := t.ResolveLatest(ctx)
	switch {
	case err == nil:
		res.Previous = prev
	case req.IsExplicit() && errors.Is(err, ErrNoTagsFound):
		t.log.Warnw("no previous release tag", "error", err)
	default:
		return Result{}, err
	}

	next, err := ComputeNext(res.Previous, req)
	if err != nil {
		return Result{}, err
	}
	res.Next = next

	if t.cfg.DryRun {
		t.log.Infow("dry run, tag not created", "tag", next.Tag())
		return res, nil
	}

	if err := t.CreateTag(ctx, next); err != nil {
		return res, err
	}
	res.Created = true

	return res, nil
}

// Sync clears the local tag namespace and repopulates it from the remote.
// There is no rollback: tags deleted before a failed fetch stay deleted.
func (t *Tagger) Sync(ctx context.Context) error {
	remote := t.cfg.Remote
	if t.cfg.RemoteURL != "" {
		remote = t.cfg.TempRemote
		// left behind by a killed run; a missing remote is the normal case
		if err := t.repo.RemoveRemote(ctx, remote); err == nil {
			t.log.Warnw("stale temporary remote removed", "remote", remote)
		}
		if err := t.repo.AddRemote(ctx, remote, t.cfg.RemoteURL); err != nil {
			return classify(ErrCommand, err, "add temporary remote")
		}
		defer func() {
			if rerr := t.repo.RemoveRemote(context.WithoutCancel(ctx), remote); rerr != nil {
				t.log.Warnw("remove temporary remote", "remote", remote, "error", rerr)
			}
		}()
	}

	local, err := t.repo.Tags(ctx)
	if err != nil {
		return classify(ErrCommand, err, "list local tags")
	}

	if err := t.repo.DeleteTags(ctx, local); err != nil {
		return classify(ErrCommand, err, "delete local tags")
	}
	t.log.Debugw("local tags deleted", "count", len(local))

	if err := t.repo.FetchTags(ctx, remote); err != nil {
		return classify(ErrRemoteUnreachable, err, "fetch tags from %s", t.remoteName())
	}
	t.log.Infow("tags synchronized", "remote", t.remoteName())

	return nil
}

// ResolveLatest returns the latest release version of the remote.
func (t *Tagger) ResolveLatest(ctx context.Context) (Version, error) {
	if len(t.cfg.LatestCommand) > 0 {
		return t.latestFromCommand(ctx)
	}

	tags, err := t.candidateTags(ctx)
	if err != nil {
		return Version{}, err
	}

	latest, ok := Latest(tags, t.cfg.Select)
	if !ok {
		return Version{}, errors.WithMessagef(ErrNoTagsFound, "%s: %d tags, none matched", t.remoteName(), len(tags))
	}

	v, err := ParseVersion(latest)
	if err != nil {
		return Version{}, err
	}
	t.log.Debugw("latest release resolved", "tag", latest, "candidates", len(tags))

	return v, nil
}

// CreateTag creates v in the local namespace, failing with ErrTagAlreadyExists
// when the tag is already there.
func (t *Tagger) CreateTag(ctx context.Context, v Version) error {
	tag := v.Tag()

	local, err := t.repo.Tags(ctx)
	if err != nil {
		return classify(ErrCommand, err, "list local tags")
	}

	if containsString(local, tag) {
		return errors.WithMessagef(ErrTagAlreadyExists, "%s", tag)
	}

	if err := t.repo.CreateTag(ctx, tag, t.message(tag)); err != nil {
		return classify(ErrCommand, err, "create tag %s", tag)
	}
	t.log.Infow("tag created", "tag", tag)

	return nil
}

func (t *Tagger) candidateTags(ctx context.Context) ([]string, error) {
	if t.cfg.Sync {
		tags, err := t.repo.Tags(ctx)
		if err != nil {
			return nil, classify(ErrCommand, err, "list local tags")
		}

		return tags, nil
	}

	remote := t.cfg.Remote
	if t.cfg.RemoteURL != "" {
		remote = t.cfg.RemoteURL
	}

	tags, err := t.repo.RemoteTags(ctx, remote)
	if err != nil {
		return nil, classify(ErrRemoteUnreachable, err, "list tags of %s", t.remoteName())
	}

	return tags, nil
}

func (t *Tagger) latestFromCommand(ctx context.Context) (Version, error) {
	name, args := t.cfg.LatestCommand[0], t.cfg.LatestCommand[1:]

	out, err := t.runner.Run(ctx, name, args...)
	if err != nil {
		return Version{}, classify(ErrCommand, err, "latest tag command")
	}

	lines := splitLines(out)
	if len(lines) == 0 {
		return Version{}, errors.WithMessagef(ErrNoTagsFound, "%s printed nothing", strings.Join(t.cfg.LatestCommand, " "))
	}

	tag := lines[len(lines)-1]
	v, err := ParseVersion(tag)
	if err != nil {
		return Version{}, errors.WithMessagef(ErrNoTagsFound, "latest tag command printed %q", tag)
	}

	return v, nil
}

func (t *Tagger) message(tag string) string {
	return strings.ReplaceAll(t.cfg.Message, "{tag}", tag)
}

func (t *Tagger) remoteName() string {
	if t.cfg.RemoteURL != "" {
		return t.cfg.RemoteURL
	}

	return t.cfg.Remote
}
