package keymap

import "testing"

func TestParseChordSymmetry(t *testing.T) {
	a, ok := ParseChord("ctrl+a")
	if !ok {
		t.Fatal("expected ctrl+a to parse")
	}
	b, ok := ParseChord("CTRL+A")
	if !ok {
		t.Fatal("expected CTRL+A to parse")
	}
	if a != b {
		t.Errorf("parse(ctrl+a)=%q != parse(CTRL+A)=%q", a, b)
	}
}

func TestParseChordNamedKeys(t *testing.T) {
	for _, name := range []string{"esc", "enter", "tab", "backspace", "up", "down", "left", "right"} {
		if _, ok := ParseChord(name); !ok {
			t.Errorf("expected named key %q to parse", name)
		}
	}
}

func TestParseChordRejectsUnknownModifier(t *testing.T) {
	if _, ok := ParseChord("alt+a"); ok {
		t.Error("expected unknown modifier alt to be rejected")
	}
}

func TestParseChordRejectsMultiCharKey(t *testing.T) {
	if _, ok := ParseChord("ab"); ok {
		t.Error("expected a two-character non-named key to be rejected")
	}
}

func TestDefaultKeymapLoads(t *testing.T) {
	km, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if km.Resolve("ctrl+c", false, false) != ActionQuit {
		t.Error("default keymap should bind ctrl+c to Quit")
	}
	if km.Resolve("down", false, false) != ActionSelectNext {
		t.Error("default keymap should bind down to SelectNext")
	}
}

func TestResolveFallsBackToFilterForPrintable(t *testing.T) {
	km, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if km.Resolve("z", true, false) != ActionFilter {
		t.Error("an unbound printable character should resolve to Filter")
	}
	if km.Resolve("z", false, false) != ActionNone {
		t.Error("an unbound non-printable, non-backspace key should resolve to None")
	}
}

func TestLoadFileMissingFallsBackToDefault(t *testing.T) {
	km, err := LoadFile("/nonexistent/path/keymap.toml")
	if err != nil {
		t.Fatal(err)
	}
	if km.Resolve("esc", false, false) != ActionQuit {
		t.Error("missing user keymap file should fall back to the embedded default")
	}
}
