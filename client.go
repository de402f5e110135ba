package gitcmd

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Client is a facade over one repository's git binary. All command
// execution goes through the injected Runner; the parsers in this
// package interpret what comes back.
type Client struct {
	runner Runner
	dir    string
	log    Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for command diagnostics.
func WithLogger(log Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client for the repository at dir.
func NewClient(runner Runner, dir string, opts ...ClientOption) *Client {
	c := &Client{runner: runner, dir: dir, log: NopLogger{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DiffOptions controls how a compare-two-trees command is built.
type DiffOptions struct {
	// Dirstat requests the directory-level change breakdown.
	Dirstat bool
	// Paths limits the diff to the given pathspecs.
	Paths []string
	// RenameLimit overrides the similarity threshold passed to -M,
	// e.g. 50 for -M50%. Zero uses git's default.
	RenameLimit int
}

func (o DiffOptions) args(base []string) []string {
	args := base
	if o.Dirstat {
		args = append(args, "--dirstat")
	}
	if o.RenameLimit > 0 {
		args = append(args, fmt.Sprintf("-M%d%%", o.RenameLimit))
	} else {
		args = append(args, "-M")
	}
	if len(o.Paths) > 0 {
		args = append(args, "--")
		args = append(args, o.Paths...)
	}
	return args
}

// revisionArgs inserts the non-empty revisions before any pathspec.
func revisionArgs(args []string, from, to string) []string {
	out := make([]string, 0, len(args)+2)
	sep := len(args)
	for i, a := range args {
		if a == "--" {
			sep = i
			break
		}
	}
	out = append(out, args[:sep]...)
	if from != "" {
		out = append(out, from)
	}
	if to != "" {
		out = append(out, to)
	}
	out = append(out, args[sep:]...)
	return out
}

// Diff compares two trees in patch mode and returns the parsed result,
// including each file's verbatim patch block.
func (c *Client) Diff(ctx context.Context, from, to string, opts DiffOptions) (*DiffResult, error) {
	args := opts.args([]string{"diff", "--numstat", "--shortstat", "-p"})
	out, err := c.run(ctx, revisionArgs(args, from, to))
	if err != nil {
		return nil, err
	}
	return ParsePatch(out, opts.Dirstat), nil
}

// DiffRaw compares two trees in raw mode: exact change kinds and object
// ids per file, with line counts merged in from the numstat section.
func (c *Client) DiffRaw(ctx context.Context, from, to string, opts DiffOptions) (*DiffResult, error) {
	args := opts.args([]string{"diff", "--numstat", "--shortstat", "--raw"})
	out, err := c.run(ctx, revisionArgs(args, from, to))
	if err != nil {
		return nil, err
	}
	return ParseRaw(out, opts.Dirstat), nil
}

// DiffStats compares two trees in numstat mode: per-file line counts and
// summary totals, without change kinds or patch text.
func (c *Client) DiffStats(ctx context.Context, from, to string, opts DiffOptions) (*DiffResult, error) {
	args := opts.args([]string{"diff", "--numstat", "--shortstat"})
	out, err := c.run(ctx, revisionArgs(args, from, to))
	if err != nil {
		return nil, err
	}
	return ParseNumstat(out, opts.Dirstat), nil
}

// RevisionPair names two trees to compare.
type RevisionPair struct {
	From, To string
}

// DiffMany runs a numstat-mode diff for each revision pair concurrently
// and returns the results in pair order.
func (c *Client) DiffMany(ctx context.Context, pairs []RevisionPair, opts DiffOptions) ([]*DiffResult, error) {
	results := make([]*DiffResult, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	for i, pair := range pairs {
		g.Go(func() error {
			res, err := c.DiffStats(ctx, pair.From, pair.To, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Version returns the version string reported by the git binary.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, []string{"version"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RepoRoot returns the absolute path of the repository's top level.
func (c *Client) RepoRoot(ctx context.Context) (string, error) {
	out, err := c.run(ctx, []string{"rev-parse", "--show-toplevel"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the short name of the checked-out branch, or the
// commit id when HEAD is detached.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	if out, err := c.run(ctx, []string{"symbolic-ref", "--short", "-q", "HEAD"}); err == nil {
		if branch := strings.TrimSpace(out); branch != "" {
			return branch, nil
		}
	}
	out, err := c.run(ctx, []string{"rev-parse", "HEAD"})
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// RevParse resolves a revision expression to an object id.
func (c *Client) RevParse(ctx context.Context, rev string) (string, error) {
	out, err := c.run(ctx, []string{"rev-parse", "--verify", rev})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepo reports whether the client's directory is inside a work tree.
func (c *Client) IsRepo(ctx context.Context) bool {
	out, err := c.run(ctx, []string{"rev-parse", "--is-inside-work-tree"})
	return err == nil && strings.TrimSpace(out) == "true"
}

func (c *Client) run(ctx context.Context, args []string) (string, error) {
	c.log.Debugf("git %s", strings.Join(args, " "))
	return c.runner.Run(ctx, c.dir, args...)
}
