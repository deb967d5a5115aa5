package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// helpKeyMap renders the toggleable help screen via bubbles/help, giving
// the in-app "/help" screen the same look and column-wrapping behavior as
// any other bubbletea program's help view, rather than hand-laying-out text.
type helpKeyMap struct {
	selectNext    key.Binding
	selectPrev    key.Binding
	scrollPreview key.Binding
	resizePreview key.Binding
	copyPath      key.Binding
	moveCursor    key.Binding
	search        key.Binding
	quit          key.Binding
}

func newHelpKeyMap() helpKeyMap {
	return helpKeyMap{
		selectNext:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("down/ctrl+n", "select next")),
		selectPrev:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("up/ctrl+p", "select previous")),
		scrollPreview: key.NewBinding(key.WithKeys("ctrl+up/down/left/right"), key.WithHelp("ctrl+arrows", "scroll preview")),
		resizePreview: key.NewBinding(key.WithKeys("ctrl+h", "ctrl+l"), key.WithHelp("ctrl+h/l", "shrink/grow preview")),
		copyPath:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy selected path")),
		moveCursor:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("left/right", "move input cursor")),
		search:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run search / toggle on /help")),
		quit:          key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc/ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k helpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.selectNext, k.selectPrev, k.search, k.quit}
}

// FullHelp implements help.KeyMap.
func (k helpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.selectNext, k.selectPrev, k.moveCursor},
		{k.scrollPreview, k.resizePreview},
		{k.copyPath, k.search, k.quit},
	}
}

func newHelpModel() help.Model {
	m := help.New()
	m.ShowAll = true
	return m
}
