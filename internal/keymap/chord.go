package keymap

import (
	"strings"
)

// Chord is a normalized textual key binding: "ctrl+shift+k", "esc", "a".
// Normalization lowercases everything and always orders modifiers as
// ctrl then shift, so "CTRL+A" and "ctrl+a" compare equal.
type Chord string

var namedKeys = map[string]bool{
	"esc": true, "escape": true, "enter": true, "return": true,
	"tab": true, "backspace": true, "up": true, "down": true,
	"left": true, "right": true,
}

// ParseChord normalizes a textual chord of the form
// "[ctrl+][shift+]<key>" where <key> is a named key or a single character.
// Parsing is case-insensitive; the result is suitable as a map key.
func ParseChord(s string) (Chord, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return "", false
	}

	parts := strings.Split(lower, "+")
	key := parts[len(parts)-1]
	mods := parts[:len(parts)-1]

	var ctrl, shift bool
	for _, m := range mods {
		switch m {
		case "ctrl":
			ctrl = true
		case "shift":
			shift = true
		default:
			return "", false
		}
	}

	if !namedKeys[key] && len([]rune(key)) != 1 {
		return "", false
	}

	var b strings.Builder
	if ctrl {
		b.WriteString("ctrl+")
	}
	if shift {
		b.WriteString("shift+")
	}
	b.WriteString(key)

	return Chord(b.String()), true
}
