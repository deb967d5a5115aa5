package app

import (
	"testing"

	"github.com/jsnider3/ffind/internal/walker"
)

func TestSetPreviewWidthPctClamps(t *testing.T) {
	m := New()

	m.setPreviewWidthPct(5)
	if m.previewWidthPct != minPreviewWidthPct {
		t.Errorf("expected clamp to %d, got %d", minPreviewWidthPct, m.previewWidthPct)
	}

	m.setPreviewWidthPct(200)
	if m.previewWidthPct != maxPreviewWidthPct {
		t.Errorf("expected clamp to %d, got %d", maxPreviewWidthPct, m.previewWidthPct)
	}

	m.setPreviewWidthPct(defaultPreviewWidthPct + 10)
	if m.previewWidthPct != defaultPreviewWidthPct+10 {
		t.Errorf("expected %d, got %d", defaultPreviewWidthPct+10, m.previewWidthPct)
	}
}

func TestStatusLineDerivation(t *testing.T) {
	m := New()

	if got := m.statusLine(m.matchIdx.Snapshot()); got != "" {
		t.Errorf("expected blank status with no event, got %q", got)
	}

	m.lastEvent = eventResult
	if got := m.statusLine(m.matchIdx.Snapshot()); got == "" {
		t.Error("expected a non-blank scanning status")
	}

	m.lastEvent = eventComplete
	m.matchIdx.Push("a.txt")
	for i := 0; i < 10; i++ {
		m.matchIdx.Tick(matcherTickBudget)
	}
	got := m.statusLine(m.matchIdx.Snapshot())
	if got != "1 files found" {
		t.Errorf("expected %q, got %q", "1 files found", got)
	}
}

func TestHandleWalkerEventDropsStaleRun(t *testing.T) {
	m := New()
	m.currentRunID = 2

	m.handleWalkerEvent(walker.Event{RunID: 1, Path: "stale.txt"})
	if m.matchIdx.Snapshot().TotalCount != 0 {
		t.Error("expected a stale-run event to be dropped")
	}

	m.handleWalkerEvent(walker.Event{RunID: 2, Path: "fresh.txt"})
	if m.matchIdx.Snapshot().TotalCount != 1 {
		t.Error("expected a current-run event to be ingested")
	}
}

func TestCopySelectedNoopOnEmptyResults(t *testing.T) {
	m := New()
	// No crash, no-op: nothing is selected yet.
	m.copySelected()
	if m.input.Error() != "" {
		t.Errorf("expected no error banner on an empty selection, got %q", m.input.Error())
	}
}
