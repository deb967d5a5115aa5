package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsnider3/ffind/internal/walker"
)

// walkerEventMsg wraps one event off the match channel so bubbletea can
// dispatch it through Update like any other message.
type walkerEventMsg walker.Event

// frameTickMsg drives the App loop's 60ms cadence: draining the match
// channel already happened via walkerEventMsg delivery, so this message's
// job is advancing the matcher's tick budget and redrawing, via a recurring
// tea.Tick command.
type frameTickMsg time.Time

const frameTickPeriod = 60 * time.Millisecond

func frameTickCmd() tea.Cmd {
	return tea.Tick(frameTickPeriod, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// waitForWalkerEvent returns a command that blocks on the shared match
// channel and resolves to the next event, the same "block on a channel
// inside a tea.Cmd" shape, requeued after every event.
func waitForWalkerEvent(ch <-chan walker.Event) tea.Cmd {
	return func() tea.Msg {
		return walkerEventMsg(<-ch)
	}
}
