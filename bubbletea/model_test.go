package bubbletea

import (
	"bytes"
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/gitcmd"
	"github.com/fwojciec/gitcmd/mock"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors
// regardless of the test terminal.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func testDiff() *gitcmd.DiffResult {
	return &gitcmd.DiffResult{
		FilesChanged: 2,
		Insertions:   3,
		Deletions:    1,
		Files: []gitcmd.FileRecord{
			{
				Path:       "lib/foo.rb",
				Status:     gitcmd.StatusModified,
				Insertions: 2,
				Deletions:  1,
				Patch:      "diff --git a/lib/foo.rb b/lib/foo.rb\n@@ -1 +1,2 @@\n-old\n+new\n+more\n",
			},
			{
				Path:       "lib/bar.rb",
				Status:     gitcmd.StatusAdded,
				Insertions: 1,
				Patch:      "diff --git a/lib/bar.rb b/lib/bar.rb\n@@ -0,0 +1 @@\n+bar\n",
			},
		},
	}
}

func TestView_EmptyDiffIsNoop(t *testing.T) {
	t.Parallel()

	v := NewViewer(nil, nil, nil)
	require.NoError(t, v.View(context.Background(), nil))
	require.NoError(t, v.View(context.Background(), &gitcmd.DiffResult{}))
}

func TestModel_RendersSelectedFile(t *testing.T) {
	t.Parallel()

	m := newModel(testDiff(), nil, nil, nil, nil)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("lib/foo.rb"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_SwitchesFiles(t *testing.T) {
	t.Parallel()

	m := newModel(testDiff(), nil, nil, nil, nil)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("lib/bar.rb"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_RenderFile(t *testing.T) {
	t.Parallel()

	t.Run("binary files render a placeholder", func(t *testing.T) {
		t.Parallel()

		m := newModel(testDiff(), nil, nil, nil, nil)
		out := m.renderFile(gitcmd.FileRecord{Path: "img.png", Binary: true})
		assert.Contains(t, out, "binary")
	})

	t.Run("falls back to verbatim patch without a hunk parser", func(t *testing.T) {
		t.Parallel()

		m := newModel(testDiff(), nil, nil, nil, nil)
		f := testDiff().Files[0]
		assert.Equal(t, f.Patch, m.renderFile(f))
	})

	t.Run("uses structured hunks when available", func(t *testing.T) {
		t.Parallel()

		hunks := &mock.HunkParser{
			ParseHunksFn: func(string) ([]gitcmd.Hunk, error) {
				return []gitcmd.Hunk{{
					OldStart: 1, OldCount: 1, NewStart: 1, NewCount: 2,
					Lines: []gitcmd.Line{
						{Type: gitcmd.LineDeleted, Content: "old", OldLineNum: 1},
						{Type: gitcmd.LineAdded, Content: "new", NewLineNum: 1},
						{Type: gitcmd.LineAdded, Content: "more", NewLineNum: 2},
					},
				}}, nil
			},
		}
		m := newModel(testDiff(), hunks, nil, nil, nil)
		out := m.renderFile(testDiff().Files[0])
		assert.Contains(t, out, "@@ -1,1 +1,2 @@")
		assert.Contains(t, out, "new")
	})

	t.Run("colors markers with the renderer's profile", func(t *testing.T) {
		t.Parallel()

		hunks := &mock.HunkParser{
			ParseHunksFn: func(string) ([]gitcmd.Hunk, error) {
				return []gitcmd.Hunk{{
					OldStart: 1, OldCount: 1, NewStart: 1, NewCount: 1,
					Lines: []gitcmd.Line{
						{Type: gitcmd.LineDeleted, Content: "old", OldLineNum: 1},
						{Type: gitcmd.LineAdded, Content: "new", NewLineNum: 1},
					},
				}}, nil
			},
		}
		m := newModel(testDiff(), hunks, nil, nil, trueColorRenderer())
		out := m.renderFile(testDiff().Files[0])
		assert.Contains(t, out, "38;2;152;195;121") // added foreground
		assert.Contains(t, out, "38;2;224;108;117") // deleted foreground
	})

	t.Run("highlights context lines through the tokenizer", func(t *testing.T) {
		t.Parallel()

		tokenizer := &mock.Tokenizer{
			TokenizeFn: func(language, source string) []gitcmd.Token {
				assert.Equal(t, "Ruby", language)
				return []gitcmd.Token{{Text: source, Style: gitcmd.Style{Foreground: "#ffffff"}}}
			},
		}
		detector := &mock.LanguageDetector{
			DetectFromPathFn: func(path string) string { return "Ruby" },
		}
		hunks := &mock.HunkParser{
			ParseHunksFn: func(string) ([]gitcmd.Hunk, error) {
				return []gitcmd.Hunk{{
					OldStart: 1, OldCount: 1, NewStart: 1, NewCount: 1,
					Lines: []gitcmd.Line{{Type: gitcmd.LineContext, Content: "def foo", OldLineNum: 1, NewLineNum: 1}},
				}}, nil
			},
		}
		m := newModel(testDiff(), hunks, tokenizer, detector, nil)
		out := m.renderFile(testDiff().Files[0])
		assert.Contains(t, out, "def foo")
	})
}
