package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsnider3/ffind/internal/matcher"
	"github.com/jsnider3/ffind/internal/preview"
)

var (
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	matchedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	plainStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedBgStyle  = lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("230"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	paneBorderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

const inputInset = 2

// inputHeight returns the input container's row count: 3 rows normally,
// 5 when an error banner is present.
func (m *Model) inputHeight() int {
	if m.input.Error() != "" {
		return 5
	}
	return 3
}

// resultsWindowHeight is the results pane's visible row count: total
// height minus the input container and its own border.
func (m *Model) resultsWindowHeight() int {
	h := m.height - m.inputHeight() - 2
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the full frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}

	snap := m.matchIdx.Snapshot()
	leftWidth := m.width
	var rightPane string

	if snap.MatchedCount > 0 || snap.TotalCount > 0 {
		leftWidth = m.width * (100 - m.previewWidthPct) / 100
		rightWidth := m.width - leftWidth
		rightPane = m.renderPreview(snap, rightWidth)
	}

	leftPane := lipgloss.JoinVertical(lipgloss.Left,
		m.renderResults(snap, leftWidth),
		m.renderInput(leftWidth),
	)

	if rightPane == "" {
		return leftPane
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

func (m *Model) renderResults(snap matcher.Snapshot, width int) string {
	height := m.resultsWindowHeight()
	m.results.SetWindowHeight(height)

	lines := m.matchIdx.GetResults(m.input.Text(), width-2, m.results.WindowOffset(), height)

	var b strings.Builder
	for i := 0; i < height; i++ {
		if i >= len(lines) {
			b.WriteString("\n")
			continue
		}
		rendered := renderSpans(lines[i].Spans)
		if i == m.results.GetSelectedIndex() {
			rendered = selectedBgStyle.Width(width - 2).Render(rendered)
		}
		b.WriteString(rendered)
		b.WriteString("\n")
	}

	body := strings.TrimRight(b.String(), "\n")
	return paneBorderStyle.Width(width - 2).Height(height).Render(body) + "\n" + statusStyle.Render(m.statusLine(snap))
}

func renderSpans(spans []matcher.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Matched {
			b.WriteString(matchedStyle.Render(sp.Text))
		} else {
			b.WriteString(plainStyle.Render(sp.Text))
		}
	}
	return b.String()
}

// statusLine derives the results pane's status text from the last walker
// event observed.
func (m *Model) statusLine(snap matcher.Snapshot) string {
	switch m.lastEvent {
	case eventResult:
		dots := (m.frameCount/8)%3 + 1
		return "Scanning files" + strings.Repeat(".", dots)
	case eventComplete:
		return fmt.Sprintf("%d files found", snap.MatchedCount)
	default:
		return ""
	}
}

func (m *Model) renderInput(width int) string {
	height := m.inputHeight()
	text := m.input.Text()

	var line string
	if text == "" {
		line = placeholderStyle.Render(" pattern [flags] • /help")
	} else {
		line = strings.Repeat(" ", inputInset) + text
	}

	body := line
	if errMsg := m.input.Error(); errMsg != "" {
		body = line + "\n" + errorStyle.Render("⚠ "+errMsg)
	}

	return paneBorderStyle.Width(width - 2).Height(height - 2).Render(body)
}

func (m *Model) renderPreview(snap matcher.Snapshot, width int) string {
	item, ok := m.results.GetSelected(snap)
	if !ok {
		return ""
	}

	m.prev.SyncSelection(item.Text)
	renderHeight := m.resultsWindowHeight()
	body := preview.Render(m.prev, renderHeight)
	title := preview.Title(item.Text, width-4)

	framed := paneBorderStyle.Width(width - 2).Height(renderHeight).Render(body)
	return title + "\n" + framed
}

func (m *Model) renderHelp() string {
	m.help.Width = m.width
	body := statusStyle.Bold(true).Render("ffind — key bindings") + "\n\n" + m.help.View(m.helpKeys)
	return paneBorderStyle.Render(body)
}
