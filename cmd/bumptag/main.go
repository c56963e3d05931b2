/*
Package main is the bumptag cli tool: it resolves the latest release tag of a
remote and creates the next vMAJOR.MINOR.PATCH tag in the working copy.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/woozymasta/bumptag"
	"github.com/woozymasta/bumptag/internal/config"
	"github.com/woozymasta/bumptag/internal/git"
	"github.com/woozymasta/bumptag/internal/logger"
	"github.com/woozymasta/bumptag/internal/shell"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

type Options struct {
	// betteralign:ignore

	// Increment or explicit version
	OptionsVersion OptionsVersion `group:"Version"`
	// Remote and working copy
	OptionsRemote OptionsRemote `group:"Remote"`
	// Latest tag selection
	OptionsSelect OptionsSelect `group:"Latest tag selection"`
	// Tag creation and logging
	OptionsOutput OptionsOutput `group:"Output"`
}

type OptionsVersion struct {
	Version string `short:"v" long:"version" value-name:"VERSION" description:"Use explicit tag vMAJOR.MINOR.PATCH[-SUFFIX]; ignores -m/-i/-p"`
	Major   bool   `short:"m" long:"major"   description:"Increment major version, reset minor and patch to 0"`
	Minor   bool   `short:"i" long:"minor"   description:"Increment minor version, reset patch to 0"`
	Patch   bool   `short:"p" long:"patch"   description:"Increment patch version"`
}

type OptionsRemote struct {
	Config    string `short:"c" long:"config"     value-name:"FILE" description:"Config file (default .bumptag.yml in the working copy, if present)"`
	Dir       string `short:"C" long:"dir"        value-name:"DIR"  description:"Working copy directory"`
	Remote    string `short:"r" long:"remote"     value-name:"NAME" description:"Remote holding the release tags (default origin)"`
	RemoteURL string `short:"u" long:"remote-url" value-name:"URL"  description:"Fetch tags from URL through a temporary remote"`
	Query     bool   `short:"Q" long:"query"      description:"Query remote tags with ls-remote instead of deleting and refetching local tags"`
	LatestCmd string `short:"L" long:"latest-cmd" value-name:"CMD"  description:"Command printing the latest release tag (e.g. \"make -s latest-tag\")"`
}

type OptionsSelect struct {
	ReleaseOnly bool   `short:"R" long:"release-only" description:"Ignore suffixed tags (vX.Y.Z-SUFFIX) when resolving the latest version"`
	Include     string `long:"include"                description:"Regexp to keep candidate tags"`
	Exclude     string `long:"exclude"                description:"Regexp to drop candidate tags"`
	Min         string `long:"min"                    description:"Lower bound for candidate tags (X / X.Y / X.Y.Z)"`
	Max         string `long:"max"                    description:"Upper bound for candidate tags (X / X.Y / X.Y.Z); --max 1 bumps the v1 line"`
}

type OptionsOutput struct {
	Message  string `short:"a" long:"message"   value-name:"MSG" description:"Create an annotated tag; {tag} is replaced with the tag name"`
	DryRun   bool   `short:"n" long:"dry-run"   description:"Resolve and print the new tag without creating it"`
	LogLevel string `short:"l" long:"log-level" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	LogFile  string `long:"log-file"            value-name:"FILE" description:"Also write JSON logs to a rotated file"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = "bumptag"
	parser.LongDescription = `bumptag — release tag bumper.
Synchronizes local tags with the remote, resolves the latest vMAJOR.MINOR.PATCH
release tag and creates the next one (explicit or incremented).`

	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	if len(rest) > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s (use -v to give a version)\n\n", strings.Join(rest, " "))
		parser.WriteHelp(stderr)
		return exitUsage
	}

	cfg, err := config.Load(opt.OptionsRemote.Config, opt.OptionsRemote.Dir)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	applyFlags(cfg, &opt)

	req, err := newRequest(cfg, opt.OptionsVersion)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\n", err)
		parser.WriteHelp(stderr)
		return exitUsage
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	if req.Overridden {
		log.Warnw("explicit version given, increment flags ignored", "version", req.Explicit.Tag())
	}
	if !req.IsExplicit() {
		log.Debugw("increment requested", "part", req.Part)
	}

	tcfg, err := cfg.TaggerConfig(opt.OptionsOutput.DryRun)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	runner := shell.NewExec(opt.OptionsRemote.Dir, log)
	tagger := bumptag.New(git.New(runner), runner, tcfg, log)

	res, err := tagger.Run(ctx, req)
	if err != nil {
		log.Errorw("release tag not created", "error", err, "kind", errorKind(err))
		return exitFailure
	}

	previous := "none"
	if !res.Previous.IsZero() {
		previous = res.Previous.Tag()
	}
	log.Infow("release tag", "previous", previous, "new", res.Next.Tag(), "created", res.Created)
	fmt.Fprintln(stdout, res.Next.Tag())

	return exitOK
}

// applyFlags overrides config values with the flags that were set.
func applyFlags(cfg *config.Config, opt *Options) {
	r := opt.OptionsRemote
	if r.Remote != "" {
		cfg.Remote = r.Remote
	}
	if r.RemoteURL != "" {
		cfg.RemoteURL = r.RemoteURL
	}
	if r.Query {
		cfg.Query = true
	}
	if s := strings.Fields(r.LatestCmd); len(s) > 0 {
		cfg.LatestCommand = s
	}

	s := opt.OptionsSelect
	if s.ReleaseOnly {
		cfg.Select.ReleaseOnly = true
	}
	if s.Include != "" {
		cfg.Select.Include = s.Include
	}
	if s.Exclude != "" {
		cfg.Select.Exclude = s.Exclude
	}
	if s.Min != "" {
		cfg.Select.Min = strings.TrimSpace(s.Min)
	}
	if s.Max != "" {
		cfg.Select.Max = strings.TrimSpace(s.Max)
	}

	o := opt.OptionsOutput
	if o.Message != "" {
		cfg.Message = o.Message
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
}

// newRequest validates the version flags. Without any of them the part
// configured as bump is incremented.
func newRequest(cfg *config.Config, v OptionsVersion) (bumptag.Request, error) {
	explicit := strings.TrimSpace(v.Version)
	major, minor, patch := v.Major, v.Minor, v.Patch

	if !major && !minor && !patch && explicit == "" {
		part, err := cfg.DefaultPart()
		if err != nil {
			return bumptag.Request{}, err
		}
		major, minor, patch = part == bumptag.PartMajor, part == bumptag.PartMinor, part == bumptag.PartPatch
	}

	return bumptag.NewRequest(major, minor, patch, explicit)
}

func errorKind(err error) string {
	for _, k := range []error{
		bumptag.ErrRemoteUnreachable,
		bumptag.ErrNoTagsFound,
		bumptag.ErrTagAlreadyExists,
		bumptag.ErrInvalidArgument,
		bumptag.ErrCommand,
	} {
		if errors.Is(err, k) {
			return k.Error()
		}
	}

	return "unknown"
}
