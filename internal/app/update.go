package app

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsnider3/ffind/internal/keymap"
	"github.com/jsnider3/ffind/internal/walker"
)

// Update handles one incoming bubbletea message, dispatching key events
// through the keymap into actions.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.results.SetWindowHeight(m.resultsWindowHeight())
		return m, nil

	case walkerEventMsg:
		return m, m.handleWalkerEvent(walker.Event(msg))

	case frameTickMsg:
		m.frameCount++
		m.matchIdx.Tick(matcherTickBudget)
		m.results.SelectFirst()
		return m, frameTickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey resolves a terminal key event through the keymap and dispatches
// the resulting action.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	isPrintable := msg.Type == tea.KeyRunes
	isBackspace := msg.Type == tea.KeyBackspace

	chord, _ := keymap.ParseChord(msg.String())
	action := m.keys.Resolve(chord, isPrintable, isBackspace)

	switch action {
	case keymap.ActionQuit:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case keymap.ActionSelectNext:
		m.results.SelectNext(m.matchIdx.Snapshot().MatchedCount)

	case keymap.ActionSelectPrevious:
		m.results.SelectPrevious(m.matchIdx.Snapshot().MatchedCount)

	case keymap.ActionScrollPreviewUp:
		m.prev.ScrollUp()
	case keymap.ActionScrollPreviewDown:
		m.prev.ScrollDown()
	case keymap.ActionScrollPreviewLeft:
		m.prev.ScrollLeft()
	case keymap.ActionScrollPreviewRight:
		m.prev.ScrollRight()

	case keymap.ActionMoveCursorLeft:
		m.input.MoveLeft()
	case keymap.ActionMoveCursorRight:
		m.input.MoveRight()

	case keymap.ActionIncreasePreview:
		m.setPreviewWidthPct(m.previewWidthPct + 10)
	case keymap.ActionDecreasePreview:
		m.setPreviewWidthPct(m.previewWidthPct - 10)

	case keymap.ActionCopyToClipboard:
		m.copySelected()

	case keymap.ActionSearch:
		m.dispatchSearch()

	case keymap.ActionFilter:
		m.dispatchFilter(msg, isPrintable, isBackspace)

	case keymap.ActionBackspace:
		m.input.Backspace()
		m.results.MoveToTop()
		m.matchIdx.Reparse(m.input.Text())
	}

	return m, nil
}

// dispatchSearch implements the "Search" action: a blank input is a no-op;
// "/help" toggles the help screen; anything else starts a new run.
func (m *Model) dispatchSearch() {
	line := m.input.Text()
	if strings.TrimSpace(line) == "" {
		return
	}
	if line == "/help" {
		m.showHelp = !m.showHelp
		return
	}
	m.startSearch(line)
}

// dispatchFilter implements the "Filter" action: it both performs the input
// edit that produced this keystroke (insert or backspace) and then moves
// Results to top and reparses the matcher against the resulting text --
// live filtering, no new walker run.
func (m *Model) dispatchFilter(msg tea.KeyMsg, isPrintable, isBackspace bool) {
	switch {
	case isPrintable:
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				m.input.Insert(r)
			}
		}
	case isBackspace:
		m.input.Backspace()
	}

	m.results.MoveToTop()
	m.matchIdx.Reparse(m.input.Text())
}

// handleWalkerEvent folds one walker event into the matcher/status state
// and requeues the listener for the next event. Stale-run events (from a
// superseded search) are dropped by comparing run-ids.
func (m *Model) handleWalkerEvent(ev walker.Event) tea.Cmd {
	next := waitForWalkerEvent(m.events)

	if ev.RunID != m.currentRunID {
		return next
	}

	switch {
	case ev.Err != nil:
		m.input.SetError(ev.Err.Error())
	case ev.Done:
		m.lastEvent = eventComplete
	default:
		m.matchIdx.Push(ev.Path)
		m.lastEvent = eventResult
	}

	return next
}

func (m *Model) setPreviewWidthPct(pct int) {
	if pct < minPreviewWidthPct {
		pct = minPreviewWidthPct
	}
	if pct > maxPreviewWidthPct {
		pct = maxPreviewWidthPct
	}
	m.previewWidthPct = pct
}
