// Package config loads bumptag settings from a YAML file and BUMPTAG_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/bumptag"
)

// DefaultFile is read when no config file is given and it exists.
const DefaultFile = ".bumptag.yml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BUMPTAG_"

// Config holds settings shared by every invocation in a repository.
type Config struct {
	// Remote is the remote treated as the source of truth.
	Remote string `yaml:"remote" env:"REMOTE" default:"origin"`
	// RemoteURL, when set, is fetched through the temporary remote TempRemote.
	RemoteURL  string `yaml:"remote_url" env:"REMOTE_URL"`
	TempRemote string `yaml:"temp_remote" env:"TEMP_REMOTE" default:"bumptag-upstream"`

	// Query reads the remote tags with ls-remote instead of resyncing local tags.
	Query bool `yaml:"query" env:"QUERY"`

	// LatestCommand prints the latest release tag, e.g. ["make", "-s", "latest-tag"].
	LatestCommand []string `yaml:"latest_command" env:"LATEST_COMMAND" envSeparator:" "`

	// Message makes tags annotated; "{tag}" is replaced with the tag name.
	Message string `yaml:"message" env:"MESSAGE"`

	// Bump is the part incremented when no -m/-i/-p/-v flag is given
	// (major, minor, patch or an alias accepted by bumptag.ParsePart).
	Bump string `yaml:"bump" env:"BUMP"`

	Select SelectConfig `yaml:"select" envPrefix:"SELECT_"`
	Log    LogConfig    `yaml:"log" envPrefix:"LOG_"`
}

// SelectConfig narrows the candidate tags used to resolve the latest version.
type SelectConfig struct {
	Include      string `yaml:"include" env:"INCLUDE"`
	Exclude      string `yaml:"exclude" env:"EXCLUDE"`
	Min          string `yaml:"min" env:"MIN"`
	Max          string `yaml:"max" env:"MAX"`
	MinExclusive bool   `yaml:"min_exclusive" env:"MIN_EXCLUSIVE"`
	MaxExclusive bool   `yaml:"max_exclusive" env:"MAX_EXCLUSIVE"`
	// ReleaseOnly keeps suffixed tags (vX.Y.Z-SUFFIX) from being the latest version.
	ReleaseOnly bool `yaml:"release_only" env:"RELEASE_ONLY"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL" default:"info"`
	File  string `yaml:"file" env:"FILE"`
}

// Load applies defaults, then the YAML file, then environment overrides.
// An empty path reads DefaultFile in dir only if it exists; an explicit path must exist.
func Load(path, dir string) (*Config, error) {
	cfg := new(Config)
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "set defaults")
	}

	file, required := path, true
	if file == "" {
		file, required = filepath.Join(dir, DefaultFile), false
	}

	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %q", file)
		}
	case os.IsNotExist(err) && !required:
		// no config file, defaults only
	default:
		return nil, errors.Wrapf(err, "read config %q", file)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	return cfg, nil
}

// SelectOptions compiles the selection settings.
func (c *Config) SelectOptions() (bumptag.SelectOptions, error) {
	opt := bumptag.DefaultSelectOptions()
	opt.ReleaseOnly = c.Select.ReleaseOnly
	opt.Range = bumptag.Range{
		Min:               c.Select.Min,
		Max:               c.Select.Max,
		MinExclusive:      c.Select.MinExclusive,
		MaxExclusive:      c.Select.MaxExclusive,
		IncludePrerelease: !c.Select.ReleaseOnly,
	}

	if c.Select.Include != "" {
		re, err := regexp.Compile(c.Select.Include)
		if err != nil {
			return opt, errors.Wrap(err, "include regexp")
		}
		opt.Include = re
	}

	if c.Select.Exclude != "" {
		re, err := regexp.Compile(c.Select.Exclude)
		if err != nil {
			return opt, errors.Wrap(err, "exclude regexp")
		}
		opt.Exclude = re
	}

	return opt, nil
}

// DefaultPart resolves Bump. An empty Bump yields PartNone; an unknown one
// is an ErrInvalidArgument.
func (c *Config) DefaultPart() (bumptag.Part, error) {
	if c.Bump == "" {
		return bumptag.PartNone, nil
	}

	part := bumptag.ParsePart(c.Bump)
	if part == bumptag.PartNone {
		return part, errors.WithMessagef(bumptag.ErrInvalidArgument, "bump %q is not major, minor or patch", c.Bump)
	}

	return part, nil
}

// TaggerConfig builds the immutable Tagger configuration.
func (c *Config) TaggerConfig(dryRun bool) (bumptag.Config, error) {
	sel, err := c.SelectOptions()
	if err != nil {
		return bumptag.Config{}, err
	}

	return bumptag.Config{
		Remote:        c.Remote,
		RemoteURL:     c.RemoteURL,
		TempRemote:    c.TempRemote,
		Sync:          !c.Query,
		LatestCommand: append([]string(nil), c.LatestCommand...),
		Message:       c.Message,
		DryRun:        dryRun,
		Select:        sel,
	}, nil
}
