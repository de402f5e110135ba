package gitcmd

import "context"

// Runner executes git commands. Implementations call the git binary;
// tests substitute canned output.
type Runner interface {
	// Run executes git with args in the given working directory and
	// returns the command's stdout. Stderr is folded into the error.
	Run(ctx context.Context, dir string, args ...string) (string, error)
}
