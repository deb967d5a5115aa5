// Package preview renders a scrollable, syntax-highlighted preview of the
// currently selected file by shelling out to bat rather than
// reimplementing syntax highlighting in-process.
package preview

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/jsnider3/ffind/internal/logger"
)

const rendererBinary = "bat"

// State holds the preview pane's scroll position and the path it was last
// rendered for. Both scroll offsets reset to zero whenever the selected
// path changes.
type State struct {
	prevPath string
	vScroll  int
	hScroll  int
}

// New returns an empty preview state.
func New() *State {
	return &State{}
}

// SyncSelection resets scroll state when path differs from the path the
// preview was last rendered for. Returns true if a reset occurred.
func (s *State) SyncSelection(path string) bool {
	if path == s.prevPath {
		return false
	}
	s.prevPath = path
	s.vScroll = 0
	s.hScroll = 0
	return true
}

// ScrollUp/ScrollDown/ScrollLeft/ScrollRight adjust the scroll offsets,
// saturating at zero -- no selected entry scrolls above its top line or
// left of its first column.
func (s *State) ScrollUp() {
	if s.vScroll > 0 {
		s.vScroll--
	}
}

func (s *State) ScrollDown() {
	s.vScroll++
}

func (s *State) ScrollLeft() {
	if s.hScroll > 0 {
		s.hScroll--
	}
}

func (s *State) ScrollRight() {
	s.hScroll++
}

// VScroll and HScroll expose the current scroll offsets.
func (s *State) VScroll() int { return s.vScroll }
func (s *State) HScroll() int { return s.hScroll }

// RendererAvailable reports whether the bat binary is reachable on PATH.
func RendererAvailable() bool {
	_, err := exec.LookPath(rendererBinary)
	return err == nil
}

// Render produces the raw ANSI-colored body text for the preview state's
// current path at the given render height, or a fallback message when the
// file is a known binary format or the renderer is unavailable/fails. The
// caller is responsible for wrapping the returned text in the bordered
// frame. The returned text always starts at column 0: the horizontal scroll
// offset (HScroll) is tracked but not applied to the body.
func Render(s *State, renderHeight int) string {
	if IsBinaryExtension(s.prevPath) {
		return "Binary file not available for preview"
	}
	if !RendererAvailable() {
		return fmt.Sprintf("%s not found on PATH: preview unavailable", rendererBinary)
	}
	lineRange := fmt.Sprintf("%d:%d", s.vScroll+1, s.vScroll+renderHeight)
	return renderAt(s.prevPath, lineRange)
}

func renderAt(path, lineRange string) string {
	cmd := exec.Command(rendererBinary, "-n", "--color=always", "--line-range="+lineRange, path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logger.Debug("preview render failed for %s: %v: %s", path, err, stderr.String())
		return fmt.Sprintf("preview unavailable: %v", err)
	}
	return stdout.String()
}
