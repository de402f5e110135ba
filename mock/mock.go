// Package mock provides function-field test doubles for the gitcmd
// interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/gitcmd"
)

// Compile-time interface verification.
var (
	_ gitcmd.Runner           = (*Runner)(nil)
	_ gitcmd.HunkParser       = (*HunkParser)(nil)
	_ gitcmd.Tokenizer        = (*Tokenizer)(nil)
	_ gitcmd.LanguageDetector = (*LanguageDetector)(nil)
	_ gitcmd.Viewer           = (*Viewer)(nil)
	_ gitcmd.Logger           = (*Logger)(nil)
)

// Runner implements gitcmd.Runner.
type Runner struct {
	RunFn func(ctx context.Context, dir string, args ...string) (string, error)
}

func (r *Runner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	return r.RunFn(ctx, dir, args...)
}

// HunkParser implements gitcmd.HunkParser.
type HunkParser struct {
	ParseHunksFn func(patch string) ([]gitcmd.Hunk, error)
}

func (p *HunkParser) ParseHunks(patch string) ([]gitcmd.Hunk, error) {
	return p.ParseHunksFn(patch)
}

// Tokenizer implements gitcmd.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(language, source string) []gitcmd.Token
}

func (t *Tokenizer) Tokenize(language, source string) []gitcmd.Token {
	return t.TokenizeFn(language, source)
}

// LanguageDetector implements gitcmd.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

func (d *LanguageDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}

// Viewer implements gitcmd.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, diff *gitcmd.DiffResult) error
}

func (v *Viewer) View(ctx context.Context, diff *gitcmd.DiffResult) error {
	return v.ViewFn(ctx, diff)
}

// Logger implements gitcmd.Logger, collecting formatted messages.
type Logger struct {
	DebugfFn func(format string, args ...any)
	WarnfFn  func(format string, args ...any)
	ErrorfFn func(format string, args ...any)
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.DebugfFn != nil {
		l.DebugfFn(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...any) {
	if l.WarnfFn != nil {
		l.WarnfFn(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...any) {
	if l.ErrorfFn != nil {
		l.ErrorfFn(format, args...)
	}
}
