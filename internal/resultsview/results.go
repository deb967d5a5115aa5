// Package resultsview implements the virtualized selection/scroll state
// over a matcher snapshot.
package resultsview

import "github.com/jsnider3/ffind/internal/matcher"

// View owns (window_offset, list_selection, window_height) and the
// virtualization rules for moving through a matcher snapshot without ever
// materializing more than window_height rows of UI state.
type View struct {
	windowOffset  int
	listSelection int
	windowHeight  int

	hasSelection bool
}

// New returns a View with the given window height (must be >= 1).
func New(windowHeight int) *View {
	if windowHeight < 1 {
		windowHeight = 1
	}
	return &View{windowHeight: windowHeight}
}

// SetWindowHeight resizes the visible window (e.g. on terminal resize),
// clamping the current selection back inside the new bounds.
func (v *View) SetWindowHeight(h int) {
	if h < 1 {
		h = 1
	}
	v.windowHeight = h
	if v.listSelection >= h {
		v.listSelection = h - 1
	}
}

// SelectFirst selects index 0 exactly once: it is a no-op once a selection
// has ever been made: selection starts unset and the first call claims
// index 0.
func (v *View) SelectFirst() {
	if v.hasSelection {
		return
	}
	v.hasSelection = true
	v.windowOffset = 0
	v.listSelection = 0
}

// MoveToTop resets the window and selection to the very start of the
// matched view -- used by the Filter action before reparsing, so a
// narrowing query always starts the user back at the top result.
func (v *View) MoveToTop() {
	v.windowOffset = 0
	v.listSelection = 0
	v.hasSelection = true
}

// SelectNext advances the selection, scrolling the window forward once the
// visible slot is exhausted. totalMatched is the snapshot's matched_count.
// The very first call on an unset selection only establishes index 0 --
// it does not also advance -- matching SelectFirst's own idempotent-init
// contract rather than fusing init-and-advance into one step.
func (v *View) SelectNext(totalMatched int) {
	if totalMatched == 0 {
		return
	}
	if !v.hasSelection {
		v.SelectFirst()
		return
	}

	if v.listSelection+1 < v.windowHeight && v.absoluteSelected()+1 < totalMatched {
		v.listSelection++
		return
	}
	if v.absoluteSelected()+1 < totalMatched {
		v.windowOffset++
		v.listSelection = v.windowHeight - 1
	}
}

// SelectPrevious retreats the selection, scrolling the window backward once
// the top of the visible slots is reached. As with SelectNext, the first
// call on an unset selection only establishes index 0.
func (v *View) SelectPrevious(totalMatched int) {
	if totalMatched == 0 {
		return
	}
	if !v.hasSelection {
		v.SelectFirst()
		return
	}

	if v.listSelection == 0 && v.windowOffset > 0 {
		v.windowOffset--
		return
	}
	if v.listSelection > 0 {
		v.listSelection--
	}
}

func (v *View) absoluteSelected() int {
	return v.windowOffset + v.listSelection
}

// GetSelectedIndex returns the selection's position relative to the top of
// the visible window.
func (v *View) GetSelectedIndex() int {
	return v.listSelection
}

// AbsoluteSelected returns window_offset + list_selection.
func (v *View) AbsoluteSelected() int {
	return v.absoluteSelected()
}

// WindowOffset returns the current window_offset.
func (v *View) WindowOffset() int {
	return v.windowOffset
}

// WindowHeight returns the current window_height.
func (v *View) WindowHeight() int {
	return v.windowHeight
}

// GetSelected returns the currently selected item from snap, and whether a
// selection exists at all (false on an empty matcher).
func (v *View) GetSelected(snap matcher.Snapshot) (matcher.Item, bool) {
	if snap.MatchedCount == 0 || !v.hasSelection {
		return matcher.Item{}, false
	}
	idx := v.absoluteSelected()
	if idx < 0 || idx >= len(snap.Items) {
		return matcher.Item{}, false
	}
	return snap.Items[idx], true
}

// Reset clears the selection entirely -- used when a new search starts and
// the previous run's selection no longer corresponds to anything meaningful.
func (v *View) Reset() {
	v.windowOffset = 0
	v.listSelection = 0
	v.hasSelection = false
}
