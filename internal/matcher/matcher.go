// Package matcher implements a streaming fuzzy index: a cooperatively-ticked
// corpus of pushed strings, re-ranked against a mutating pattern, exposing
// an ordered snapshot and a highlighted, width-truncated, windowed result
// view.
package matcher

import (
	"sync"
	"time"

	"github.com/sahilm/fuzzy"
)

// ingestBatchSize bounds how many pending pushes a single tick drains, so
// a huge backlog of walker results never stalls a frame.
const ingestBatchSize = 2000

// Item is one matched entry in a snapshot: the original pushed string plus
// its matched-index set from the last rescore.
type Item struct {
	Text           string
	MatchedIndexes []int
}

// Snapshot is the conceptually-immutable view returned by Snapshot(): the
// ordered matched items plus the matched/total counters.
type Snapshot struct {
	Items        []Item
	MatchedCount int
	TotalCount   int
}

// Matcher is safe for concurrent Push from any goroutine; Reparse, Tick,
// Snapshot and GetResults are intended to be called only from the UI
// goroutine (in this implementation the App loop is also the only caller of
// Push, so the mutex below is a defensive invariant rather than a
// requirement of the current call graph).
type Matcher struct {
	mu sync.Mutex

	corpus  []string
	pending []string

	pattern string

	results []fuzzy.Match

	// needsFullRescore is set whenever a reparse cannot be served by
	// pruning the existing result set (pattern shrank, or isn't an
	// extension of the previous one).
	needsFullRescore bool
	needsRescore     bool
}

// New returns an empty Matcher.
func New() *Matcher {
	return &Matcher{}
}

// Push ingests one string into the pending queue. It does not itself
// rescore -- that happens incrementally inside Tick.
func (m *Matcher) Push(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, s)
}

// Restart clears the entire corpus, pending queue and result set, but
// keeps the Matcher instance (and its pattern) alive across searches.
func (m *Matcher) Restart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.corpus = nil
	m.pending = nil
	m.results = nil
	m.needsFullRescore = true
}

// Reparse changes the active fuzzy pattern. When the new
// pattern extends the old one (old is a prefix of new) the matcher prunes
// the existing result set instead of rescoring the whole corpus; tick()
// performs the actual work, within budget, the next time it runs.
func (m *Matcher) Reparse(pattern string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	extendsOld := m.pattern != "" && len(pattern) >= len(m.pattern) && pattern[:len(m.pattern)] == m.pattern
	m.pattern = pattern
	m.needsRescore = true
	if !extendsOld {
		m.needsFullRescore = true
	}
}

// Tick drains at most ingestBatchSize pending pushes and then, only if
// budget has not yet elapsed, runs any outstanding rescore to completion;
// the rescore itself is not interrupted by the budget, and a zero budget
// never rescores. It returns true if the snapshot changed as a result -- a
// hint only, used by the App loop to decide whether to redraw.
func (m *Matcher) Tick(budget time.Duration) bool {
	deadline := time.Now().Add(budget)
	changed := false

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) > 0 {
		n := len(m.pending)
		if n > ingestBatchSize {
			n = ingestBatchSize
		}
		m.corpus = append(m.corpus, m.pending[:n]...)
		m.pending = m.pending[n:]
		m.needsRescore = true
		// Newly ingested items are not in the previous result set, so they
		// can only be scored by a full pass over the corpus.
		m.needsFullRescore = true
		changed = true
	}

	if time.Now().After(deadline) {
		return changed
	}

	if m.needsRescore {
		m.rescoreLocked()
		m.needsRescore = false
		m.needsFullRescore = false
		changed = true
	}

	return changed
}

func (m *Matcher) rescoreLocked() {
	if m.pattern == "" {
		m.results = identityMatches(m.corpus)
		return
	}

	if m.needsFullRescore || len(m.results) == 0 {
		m.results = fuzzy.Find(m.pattern, m.corpus)
		return
	}

	// Incremental prune: the new pattern extends the old one, so anything
	// that matched before is a superset candidate -- rescore only those
	// source strings instead of the whole corpus.
	prevTexts := make([]string, len(m.results))
	for i, r := range m.results {
		prevTexts[i] = r.Str
	}
	m.results = fuzzy.Find(m.pattern, prevTexts)
}

// identityMatches builds a Matches-shaped passthrough for an empty pattern:
// every corpus item "matches" with no highlighted indexes, preserving
// ingestion order.
func identityMatches(corpus []string) []fuzzy.Match {
	out := make([]fuzzy.Match, len(corpus))
	for i, s := range corpus {
		out[i] = fuzzy.Match{Str: s, Index: i}
	}
	return out
}

// Snapshot returns the current ordered matched-items view plus counts.
func (m *Matcher) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]Item, len(m.results))
	for i, r := range m.results {
		items[i] = Item{Text: r.Str, MatchedIndexes: r.MatchedIndexes}
	}

	return Snapshot{
		Items:        items,
		MatchedCount: len(m.results),
		TotalCount:   len(m.corpus) + len(m.pending),
	}
}

// Line is one rendered row from GetResults: the (possibly truncated) text
// split into highlight spans.
type Line struct {
	Spans []Span
}

// GetResults returns at most height highlighted display lines starting at
// offset within the matched view. Passing offset >= matched_count yields
// zero lines, not an error. Each line's underlying text is truncated to
// width before highlighting is computed against the truncated text.
func (m *Matcher) GetResults(pattern string, width, offset, height int) []Line {
	m.mu.Lock()
	defer m.mu.Unlock()

	if offset < 0 || offset >= len(m.results) || height <= 0 {
		return nil
	}

	end := offset + height
	if end > len(m.results) {
		end = len(m.results)
	}

	lines := make([]Line, 0, end-offset)
	for _, r := range m.results[offset:end] {
		text := Truncate(r.Str, width)
		var spans []Span
		if text == r.Str {
			spans = indexesToSpans(r.Str, r.MatchedIndexes)
		} else {
			// Truncation invalidates the original byte offsets; recompute
			// highlighting directly against the truncated text.
			spans = Highlight(text, pattern)
		}
		lines = append(lines, Line{Spans: spans})
	}
	return lines
}

