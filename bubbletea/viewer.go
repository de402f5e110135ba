// Package bubbletea implements an interactive diff viewer using the
// bubbletea terminal UI framework.
package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/gitcmd"
)

// Compile-time interface verification.
var _ gitcmd.Viewer = (*Viewer)(nil)

// Viewer displays a diff result in an alternate-screen TUI.
type Viewer struct {
	hunks     gitcmd.HunkParser
	tokenizer gitcmd.Tokenizer
	detector  gitcmd.LanguageDetector
	renderer  *lipgloss.Renderer
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithRenderer sets the lipgloss renderer used for styling. A nil
// renderer means the default renderer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(v *Viewer) {
		v.renderer = r
	}
}

// NewViewer creates a viewer. The tokenizer and detector may be nil, in
// which case patch lines render unhighlighted.
func NewViewer(hunks gitcmd.HunkParser, tokenizer gitcmd.Tokenizer, detector gitcmd.LanguageDetector, opts ...Option) *Viewer {
	v := &Viewer{hunks: hunks, tokenizer: tokenizer, detector: detector}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// View displays the diff and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, diff *gitcmd.DiffResult) error {
	if diff == nil || len(diff.Files) == 0 {
		return nil
	}
	m := newModel(diff, v.hunks, v.tokenizer, v.detector, v.renderer)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
