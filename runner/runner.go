// Package runner executes git commands using the os/exec package.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/fwojciec/gitcmd"
)

// Compile-time interface verification.
var _ gitcmd.Runner = (*ExecRunner)(nil)

// ExecRunner runs the configured git binary and captures its output.
type ExecRunner struct {
	bin     string
	env     []string
	timeout time.Duration
	log     gitcmd.Logger
}

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithBinary sets the git binary to execute. Defaults to "git" resolved
// from PATH.
func WithBinary(bin string) Option {
	return func(r *ExecRunner) {
		if strings.TrimSpace(bin) != "" {
			r.bin = bin
		}
	}
}

// WithEnv appends environment variables (KEY=VALUE) to each invocation.
func WithEnv(env ...string) Option {
	return func(r *ExecRunner) { r.env = append(r.env, env...) }
}

// WithTimeout bounds each invocation. Zero means no bound beyond the
// caller's context.
func WithTimeout(d time.Duration) Option {
	return func(r *ExecRunner) { r.timeout = d }
}

// WithLogger sets the logger for command diagnostics.
func WithLogger(log gitcmd.Logger) Option {
	return func(r *ExecRunner) { r.log = log }
}

// New creates an ExecRunner.
func New(opts ...Option) *ExecRunner {
	r := &ExecRunner{bin: "git", log: gitcmd.NopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes git with args in dir and returns its stdout. A non-zero
// exit folds the captured stderr into the returned error.
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.bin, args...)
	if strings.TrimSpace(dir) != "" {
		cmd.Dir = dir
	}
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.log.Debugf("%s %s (%s)", r.bin, strings.Join(args, " "), time.Since(start).Round(time.Millisecond))

	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("git %s: %w", commandName(args), ctx.Err())
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", commandName(args), msg)
	}
	return stdout.String(), nil
}

// commandName returns the subcommand for error messages, without the
// argument tail.
func commandName(args []string) string {
	if len(args) == 0 {
		return "<no-args>"
	}
	return args[0]
}
