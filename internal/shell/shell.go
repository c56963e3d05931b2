// Package shell runs external commands and captures their output.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -package=mock -destination=../mock/mock_runner.go

// Runner runs a command and returns its trimmed standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Exec is a Runner backed by os/exec.
type Exec struct {
	log *zap.SugaredLogger
	// Dir is the working directory; empty means the current one.
	Dir string
}

// NewExec returns an Exec running commands in dir.
func NewExec(dir string, log *zap.SugaredLogger) *Exec {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Exec{Dir: dir, log: log}
}

// Run starts name with args and waits for it. On failure the error carries
// the command line and its standard error.
func (e *Exec) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	e.log.Debugw("run", "cmd", cmd.Args, "dir", e.Dir)

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", errors.Wrapf(err, "%s: %s", strings.Join(cmd.Args, " "), msg)
		}

		return "", errors.Wrap(err, strings.Join(cmd.Args, " "))
	}

	return strings.TrimSpace(stdout.String()), nil
}
