package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/gitcmd"
)

// styles holds the viewer's lipgloss styles, bound to one renderer so
// tests can control the color profile without touching global state.
type styles struct {
	renderer *lipgloss.Renderer
	header   lipgloss.Style
	status   lipgloss.Style
	added    lipgloss.Style
	deleted  lipgloss.Style
	gutter   lipgloss.Style
	footer   lipgloss.Style
}

func newStyles(renderer *lipgloss.Renderer) styles {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return styles{
		renderer: renderer,
		header:   renderer.NewStyle().Bold(true),
		status:   renderer.NewStyle().Foreground(lipgloss.Color("#61afef")),
		added:    renderer.NewStyle().Foreground(lipgloss.Color("#98c379")),
		deleted:  renderer.NewStyle().Foreground(lipgloss.Color("#e06c75")),
		gutter:   renderer.NewStyle().Foreground(lipgloss.Color("#5c6370")),
		footer:   renderer.NewStyle().Foreground(lipgloss.Color("#5c6370")),
	}
}

// model drives the viewer: one file visible at a time, its rendered
// patch in a scrollable viewport.
type model struct {
	diff      *gitcmd.DiffResult
	hunks     gitcmd.HunkParser
	tokenizer gitcmd.Tokenizer
	detector  gitcmd.LanguageDetector
	styles    styles

	selected int
	viewport viewport.Model
	ready    bool
}

func newModel(diff *gitcmd.DiffResult, hunks gitcmd.HunkParser, tokenizer gitcmd.Tokenizer, detector gitcmd.LanguageDetector, renderer *lipgloss.Renderer) *model {
	return &model{diff: diff, hunks: hunks, tokenizer: tokenizer, detector: detector, styles: newStyles(renderer)}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "l", "right", "tab":
			if m.selected < len(m.diff.Files)-1 {
				m.selected++
				m.viewport.SetContent(m.renderFile(m.diff.Files[m.selected]))
				m.viewport.GotoTop()
			}
			return m, nil
		case "h", "left", "shift+tab":
			if m.selected > 0 {
				m.selected--
				m.viewport.SetContent(m.renderFile(m.diff.Files[m.selected]))
				m.viewport.GotoTop()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.renderFile(m.diff.Files[m.selected]))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	f := m.diff.Files[m.selected]
	header := m.styles.header.Render(f.Path) +
		" " + m.styles.status.Render(f.Status.String()) +
		" " + m.styles.added.Render(fmt.Sprintf("+%d", f.Insertions)) +
		" " + m.styles.deleted.Render(fmt.Sprintf("-%d", f.Deletions))
	footer := m.styles.footer.Render(fmt.Sprintf(
		"file %d/%d · h/l switch · q quit", m.selected+1, len(m.diff.Files)))
	return header + "\n\n" + m.viewport.View() + "\n" + footer
}

// renderFile renders one file's patch: structured hunks when the hunk
// parser can read the block, the verbatim text otherwise.
func (m *model) renderFile(f gitcmd.FileRecord) string {
	if f.Binary {
		return m.styles.gutter.Render("(binary file)")
	}
	if m.hunks != nil {
		if hunks, err := m.hunks.ParseHunks(f.Patch); err == nil && len(hunks) > 0 {
			return m.renderHunks(f.Path, hunks)
		}
	}
	return f.Patch
}

func (m *model) renderHunks(path string, hunks []gitcmd.Hunk) string {
	language := ""
	if m.detector != nil {
		language = m.detector.DetectFromPath(path)
	}

	var b strings.Builder
	for i, h := range hunks {
		if i > 0 {
			b.WriteString("\n")
		}
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		if h.Section != "" {
			header += " " + h.Section
		}
		b.WriteString(m.styles.gutter.Render(header))
		b.WriteString("\n")
		for _, line := range h.Lines {
			b.WriteString(m.renderLine(language, line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderLine renders one diff line with a line-number gutter, the change
// marker, and syntax-highlighted content.
func (m *model) renderLine(language string, line gitcmd.Line) string {
	var gutter, marker string
	var markerStyle lipgloss.Style
	switch line.Type {
	case gitcmd.LineAdded:
		gutter = fmt.Sprintf("    %4d", line.NewLineNum)
		marker, markerStyle = "+", m.styles.added
	case gitcmd.LineDeleted:
		gutter = fmt.Sprintf("%4d    ", line.OldLineNum)
		marker, markerStyle = "-", m.styles.deleted
	default:
		gutter = fmt.Sprintf("%4d %4d", line.OldLineNum, line.NewLineNum)
		marker, markerStyle = " ", m.styles.renderer.NewStyle()
	}

	content := ExpandTabs(strings.TrimSuffix(line.Content, "\n"))
	return m.styles.gutter.Render(gutter) + " " + markerStyle.Render(marker) +
		m.renderContent(language, content, markerStyle)
}

// renderContent highlights the line's source text. Added and deleted
// lines keep their marker color; only context lines get syntax colors.
func (m *model) renderContent(language, content string, fallback lipgloss.Style) string {
	if m.tokenizer == nil || language == "" || content == "" {
		return fallback.Render(content)
	}
	tokens := m.tokenizer.Tokenize(language, content)
	if tokens == nil {
		return fallback.Render(content)
	}
	var b strings.Builder
	for _, tok := range tokens {
		style := m.styles.renderer.NewStyle()
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(tok.Text))
	}
	return b.String()
}
