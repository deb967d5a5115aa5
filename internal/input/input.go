// Package input implements the query-line text editor state described in
// character-indexed editing plus an error banner.
package input

// State is {text, char_index, error_message}. char_index is measured in
// characters, not bytes, and is always kept within [0, char_count(text)].
type State struct {
	text         []rune
	charIndex    int
	errorMessage string
}

// New returns an empty input state.
func New() *State {
	return &State{}
}

// Text returns the current text.
func (s *State) Text() string { return string(s.text) }

// CharIndex returns the current cursor position, in characters.
func (s *State) CharIndex() int { return s.charIndex }

// CharCount returns the number of characters in the text.
func (s *State) CharCount() int { return len(s.text) }

// Error returns the current error banner message, empty if none.
func (s *State) Error() string { return s.errorMessage }

// Insert inserts r at the cursor and advances the cursor past it.
func (s *State) Insert(r rune) {
	next := make([]rune, 0, len(s.text)+1)
	next = append(next, s.text[:s.charIndex]...)
	next = append(next, r)
	next = append(next, s.text[s.charIndex:]...)
	s.text = next
	s.charIndex++
}

// InsertString inserts each rune of str at the cursor, in order.
func (s *State) InsertString(str string) {
	for _, r := range str {
		s.Insert(r)
	}
}

// Backspace deletes the character immediately before the cursor, if any.
func (s *State) Backspace() {
	if s.charIndex == 0 {
		return
	}
	s.text = append(s.text[:s.charIndex-1], s.text[s.charIndex:]...)
	s.charIndex--
}

// MoveLeft moves the cursor one character left, clamped at 0.
func (s *State) MoveLeft() {
	if s.charIndex > 0 {
		s.charIndex--
	}
}

// MoveRight moves the cursor one character right, clamped at char_count.
func (s *State) MoveRight() {
	if s.charIndex < len(s.text) {
		s.charIndex++
	}
}

// ClearInput empties the text, resets the cursor to 0, and clears any error.
func (s *State) ClearInput() {
	s.text = nil
	s.charIndex = 0
	s.errorMessage = ""
}

// SetError sets the error banner message.
func (s *State) SetError(msg string) {
	s.errorMessage = msg
}

// ClearError clears the error banner without touching the text.
func (s *State) ClearError() {
	s.errorMessage = ""
}

// ByteIndex computes the byte offset in Text() corresponding to char_index,
// by iterating char boundaries -- needed wherever the text must be sliced
// with Go's byte-indexed string operations.
func (s *State) ByteIndex() int {
	idx := s.charIndex
	if idx > len(s.text) {
		idx = len(s.text)
	}
	return len(string(s.text[:idx]))
}
