// Package app wires Query/Config parsing, the Walker, the Matcher, the
// Results view, Input, Preview and Keymap components into a single
// bubbletea program: the channel multiplexer that drains walker events,
// dispatches keymap-resolved actions, ticks the matcher, and draws the
// split-pane frame.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsnider3/ffind/internal/clipboard"
	"github.com/jsnider3/ffind/internal/input"
	"github.com/jsnider3/ffind/internal/keymap"
	"github.com/jsnider3/ffind/internal/logger"
	"github.com/jsnider3/ffind/internal/matcher"
	"github.com/jsnider3/ffind/internal/preview"
	"github.com/jsnider3/ffind/internal/queryline"
	"github.com/jsnider3/ffind/internal/resultsview"
	"github.com/jsnider3/ffind/internal/walker"
)

const (
	defaultPreviewWidthPct = 50
	minPreviewWidthPct     = 20
	maxPreviewWidthPct     = 80
	matcherTickBudget      = 2 * time.Millisecond
)

// eventKind distinguishes the last walker event observed, for the status
// line.
type eventKind int

const (
	eventNone eventKind = iota
	eventResult
	eventComplete
)

// Model is the bubbletea program state. It is the sole writer of Input,
// Results, Preview and the active walker run's bookkeeping -- every other
// goroutine only ever sends onto the shared events channel.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	input    *input.State
	keys     *keymap.Keymap
	matchIdx *matcher.Matcher
	results  *resultsview.View
	prev     *preview.State

	width, height   int
	previewWidthPct int
	showHelp        bool
	help            help.Model
	helpKeys        helpKeyMap

	events       chan walker.Event
	currentRunID uint64
	nextRunID    uint64
	lastEvent    eventKind
	frameCount   int

	quitting bool
}

// New constructs the initial Model with an empty input line; no search runs
// until the user submits a non-blank query.
func New() *Model {
	ctx, cancel := context.WithCancel(context.Background())

	km, err := keymap.LoadFile(keymap.UserConfigPath())
	if err != nil {
		logger.Warn("app: falling back to default keymap: %v", err)
		km, _ = keymap.Default()
	}

	return &Model{
		ctx:             ctx,
		cancel:          cancel,
		input:           input.New(),
		keys:            km,
		matchIdx:        matcher.New(),
		results:         resultsview.New(10),
		prev:            preview.New(),
		previewWidthPct: defaultPreviewWidthPct,
		events:          make(chan walker.Event, 256),
		help:            newHelpModel(),
		helpKeys:        newHelpKeyMap(),
	}
}

// Init starts the recurring frame tick and the walker-event listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(frameTickCmd(), waitForWalkerEvent(m.events))
}

// startSearch parses line into a Query, restarts the matcher, and spawns a
// walker run sharing m.events. Parse/build errors are surfaced through the
// input error banner and no matcher restart occurs.
func (m *Model) startSearch(line string) {
	q, err := queryline.ParseLine(line)
	if err != nil {
		m.input.SetError(err.Error())
		return
	}

	roots, err := q.NormalizedRoots()
	if err != nil {
		m.input.SetError(err.Error())
		return
	}

	cfg, re, err := q.ToConfig()
	if err != nil {
		m.input.SetError(err.Error())
		return
	}

	m.nextRunID++
	runID := m.nextRunID
	m.currentRunID = runID

	m.matchIdx.Restart()
	m.results.Reset()
	m.lastEvent = eventNone

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("walker run %d panicked: %v", runID, r)
			}
		}()
		if err := walker.Scan(m.ctx, runID, roots, re, cfg, m.events); err != nil {
			select {
			case m.events <- walker.Event{RunID: runID, Err: err}:
			case <-m.ctx.Done():
			}
		}
	}()

	m.input.ClearInput()
}

// copySelected writes the currently selected match's relative path to the
// clipboard, surfacing any failure through the input error banner.
func (m *Model) copySelected() {
	item, ok := m.results.GetSelected(m.matchIdx.Snapshot())
	if !ok {
		return
	}
	if err := clipboard.CopyPath(item.Text); err != nil {
		m.input.SetError(fmt.Sprintf("clipboard: %v", err))
	}
}
