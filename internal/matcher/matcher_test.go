package matcher

import (
	"testing"
	"time"
)

func settle(m *Matcher) {
	for i := 0; i < 10; i++ {
		m.Tick(50 * time.Millisecond)
	}
}

func TestPushAndSnapshotMonotonic(t *testing.T) {
	m := New()
	m.Push("alpha.go")
	m.Push("beta.go")
	settle(m)

	snap := m.Snapshot()
	if snap.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", snap.TotalCount)
	}

	m.Push("gamma.go")
	settle(m)
	snap2 := m.Snapshot()
	if snap2.TotalCount != 3 {
		t.Errorf("TotalCount after another push = %d, want 3", snap2.TotalCount)
	}

	m.Restart()
	snap3 := m.Snapshot()
	if snap3.TotalCount != 0 {
		t.Errorf("TotalCount after Restart = %d, want 0", snap3.TotalCount)
	}
}

func TestHighlightRangeMarksByteRange(t *testing.T) {
	spans := HighlightRange("main_test.go", 5, 9) // "test"
	var b []byte
	for _, sp := range spans {
		if sp.Matched {
			b = append(b, sp.Text...)
		}
	}
	if string(b) != "test" {
		t.Errorf("matched text = %q, want %q", string(b), "test")
	}
}

func TestHighlightRangeEmptyRangeIsAllPlain(t *testing.T) {
	spans := HighlightRange("main.go", 0, 0)
	if len(spans) != 1 || spans[0].Matched || spans[0].Text != "main.go" {
		t.Errorf("spans = %#v, want a single unmatched span", spans)
	}
}

func TestReparseIdempotence(t *testing.T) {
	m := New()
	for _, s := range []string{"main.go", "matcher.go", "model.go", "readme.md"} {
		m.Push(s)
	}
	settle(m)

	m.Reparse("mat")
	settle(m)
	first := m.Snapshot()

	m.Reparse("mat")
	settle(m)
	second := m.Snapshot()

	if first.MatchedCount != second.MatchedCount {
		t.Fatalf("reparse(P); reparse(P) changed MatchedCount: %d vs %d", first.MatchedCount, second.MatchedCount)
	}
	for i := range first.Items {
		if first.Items[i].Text != second.Items[i].Text {
			t.Fatalf("reparse(P); reparse(P) changed ordering at %d", i)
		}
	}
}

func TestReparseEmptyPatternYieldsAll(t *testing.T) {
	m := New()
	m.Push("a")
	m.Push("b")
	m.Push("c")
	settle(m)

	m.Reparse("")
	settle(m)

	snap := m.Snapshot()
	if snap.MatchedCount != 3 {
		t.Errorf("MatchedCount with empty pattern = %d, want 3", snap.MatchedCount)
	}
}

func TestGetResultsWindowing(t *testing.T) {
	m := New()
	for _, s := range []string{"one", "two", "three", "four", "five"} {
		m.Push(s)
	}
	settle(m)
	m.Reparse("")
	settle(m)

	lines := m.GetResults("", 80, 0, 2)
	if len(lines) != 2 {
		t.Fatalf("GetResults height=2 returned %d lines", len(lines))
	}

	lines = m.GetResults("", 80, 100, 2)
	if len(lines) != 0 {
		t.Fatalf("GetResults with offset past matched_count should return 0 lines, got %d", len(lines))
	}

	lines = m.GetResults("", 80, 4, 10)
	if len(lines) != 1 {
		t.Fatalf("GetResults should clamp to min(height, matched_count-offset), got %d lines", len(lines))
	}
}

func TestTruncateRoundTripBound(t *testing.T) {
	cases := []struct {
		text  string
		width int
	}{
		{"short", 9},
		{"a reasonably long filename that needs truncation.go", 20},
		{"twelvechars!", 12},
	}
	for _, c := range cases {
		got := Truncate(c.text, c.width)
		if len([]rune(got)) > c.width && len([]rune(c.text)) >= c.width {
			t.Errorf("Truncate(%q, %d) = %q, len %d > width", c.text, c.width, got, len([]rune(got)))
		}
	}
}

func TestTruncateShortTextUnchanged(t *testing.T) {
	if got := Truncate("short.go", 80); got != "short.go" {
		t.Errorf("Truncate should leave short text alone, got %q", got)
	}
}

func TestHighlightEmptyPattern(t *testing.T) {
	spans := Highlight("file.go", "")
	if len(spans) != 1 || spans[0].Matched {
		t.Errorf("Highlight with empty pattern should yield one plain span, got %#v", spans)
	}
}

func TestHighlightMarksSubsequence(t *testing.T) {
	spans := Highlight("matcher.go", "mtr")
	var matchedChars string
	for _, s := range spans {
		if s.Matched {
			matchedChars += s.Text
		}
	}
	if matchedChars != "mtr" {
		t.Errorf("Highlight matched chars = %q, want \"mtr\"", matchedChars)
	}
}
