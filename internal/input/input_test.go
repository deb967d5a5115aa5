package input

import "testing"

func TestInsertAndCursorInvariant(t *testing.T) {
	s := New()
	s.InsertString("foo")
	if s.Text() != "foo" || s.CharIndex() != 3 {
		t.Fatalf("Text=%q CharIndex=%d, want foo/3", s.Text(), s.CharIndex())
	}

	s.MoveLeft()
	s.Insert('X')
	if s.Text() != "foXo" {
		t.Fatalf("Text = %q, want foXo", s.Text())
	}
	if s.CharIndex() < 0 || s.CharIndex() > s.CharCount() {
		t.Fatalf("CharIndex %d out of [0, %d]", s.CharIndex(), s.CharCount())
	}
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	s := New()
	s.InsertString("x")
	s.MoveLeft()
	s.Backspace()
	if s.Text() != "x" {
		t.Errorf("Backspace at index 0 should be a no-op, got %q", s.Text())
	}
}

func TestCursorClamping(t *testing.T) {
	s := New()
	s.InsertString("ab")
	for i := 0; i < 5; i++ {
		s.MoveRight()
	}
	if s.CharIndex() != 2 {
		t.Errorf("CharIndex = %d, want clamped to 2", s.CharIndex())
	}
	for i := 0; i < 5; i++ {
		s.MoveLeft()
	}
	if s.CharIndex() != 0 {
		t.Errorf("CharIndex = %d, want clamped to 0", s.CharIndex())
	}
}

func TestClearInputClearsError(t *testing.T) {
	s := New()
	s.InsertString("pattern")
	s.SetError("bad regex")
	s.ClearInput()
	if s.Text() != "" || s.CharIndex() != 0 || s.Error() != "" {
		t.Errorf("ClearInput left state %q/%d/%q", s.Text(), s.CharIndex(), s.Error())
	}
}

func TestByteIndexWithMultibyteRunes(t *testing.T) {
	s := New()
	s.InsertString("héllo") // é is 2 bytes in UTF-8
	s.MoveLeft()
	s.MoveLeft()
	s.MoveLeft()
	s.MoveLeft() // cursor now at char_index 1, right after 'h'
	if s.CharIndex() != 1 {
		t.Fatalf("CharIndex = %d, want 1", s.CharIndex())
	}
	if got := s.ByteIndex(); got != 1 {
		t.Errorf("ByteIndex = %d, want 1 (just past the single-byte 'h')", got)
	}
}
