// Package keymap implements the declarative chord->action table described
// backed by an embedded default TOML document and an
// optional user override file, both decoded with github.com/BurntSushi/toml,
// with unknown-key warnings rather than hard failures.
package keymap

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jsnider3/ffind/internal/logger"
)

// readFileOrNil returns (nil, nil) when path does not exist, the file's
// contents on success, or an error for any other failure mode.
func readFileOrNil(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}
	return data, nil
}

// Action is the closed enumeration of actions a key event can resolve to.
type Action string

const (
	ActionNone               Action = "None"
	ActionSelectNext         Action = "SelectNext"
	ActionSelectPrevious     Action = "SelectPrevious"
	ActionScrollPreviewUp    Action = "ScrollPreviewUp"
	ActionScrollPreviewDown  Action = "ScrollPreviewDown"
	ActionScrollPreviewLeft  Action = "ScrollPreviewLeft"
	ActionScrollPreviewRight Action = "ScrollPreviewRight"
	ActionMoveCursorLeft     Action = "MoveCursorLeft"
	ActionMoveCursorRight    Action = "MoveCursorRight"
	ActionIncreasePreview    Action = "IncreasePreview"
	ActionDecreasePreview    Action = "DecreasePreview"
	ActionCopyToClipboard    Action = "CopyToClipboard"
	ActionSearch             Action = "Search"
	ActionFilter             Action = "Filter"
	ActionQuit               Action = "Quit"
	ActionBackspace          Action = "Backspace"
)

var validActions = map[Action]bool{
	ActionNone: true, ActionSelectNext: true, ActionSelectPrevious: true,
	ActionScrollPreviewUp: true, ActionScrollPreviewDown: true,
	ActionScrollPreviewLeft: true, ActionScrollPreviewRight: true,
	ActionMoveCursorLeft: true, ActionMoveCursorRight: true,
	ActionIncreasePreview: true, ActionDecreasePreview: true,
	ActionCopyToClipboard: true, ActionSearch: true, ActionFilter: true,
	ActionQuit: true, ActionBackspace: true,
}

//go:embed keymap.toml
var defaultTOML []byte

// Keymap is a map from key chord to action.
type Keymap struct {
	bindings map[Chord]Action
}

type tomlDoc struct {
	Keymap map[string]string `toml:"keymap"`
}

// Default loads the embedded default keybinding table.
func Default() (*Keymap, error) {
	return decode(defaultTOML, "<embedded default>")
}

// UserConfigPath returns the path a user keymap override is read from:
// $XDG_CONFIG_HOME/ffind/keymap.toml, or ~/.config/ffind/keymap.toml when
// XDG_CONFIG_HOME is unset.
func UserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ffind", "keymap.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "ffind", "keymap.toml")
}

// LoadFile loads a user keymap.toml, falling back to the embedded default
// (rather than erroring) when path does not exist -- a missing user config
// file is the expected, common case, not a failure.
func LoadFile(path string) (*Keymap, error) {
	data, err := readFileOrNil(path)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return Default()
	}
	return decode(data, path)
}

func decode(data []byte, source string) (*Keymap, error) {
	var doc tomlDoc
	meta, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("parsing keymap %s: %w", source, err)
	}

	for _, key := range meta.Undecoded() {
		logger.Warn("keymap %s: ignoring unrecognized key %q", source, key.String())
	}

	bindings := make(map[Chord]Action, len(doc.Keymap))
	for raw, actionStr := range doc.Keymap {
		chord, ok := ParseChord(raw)
		if !ok {
			logger.Warn("keymap %s: ignoring unparseable chord %q", source, raw)
			continue
		}
		action := Action(actionStr)
		if !validActions[action] {
			logger.Warn("keymap %s: ignoring unknown action %q for chord %q", source, actionStr, raw)
			continue
		}
		bindings[chord] = action
	}

	return &Keymap{bindings: bindings}, nil
}

// Resolve looks up a chord, falling back to the printable-character and
// backspace defaults when there's no chord entry and the key itself is a
// plain character.
func (k *Keymap) Resolve(chord Chord, isPrintableChar bool, isBackspace bool) Action {
	if action, ok := k.bindings[chord]; ok {
		return action
	}
	if isPrintableChar {
		return ActionFilter
	}
	if isBackspace {
		return ActionFilter
	}
	return ActionNone
}
