package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no resolvable home directory in this environment")
	}

	if got := ExpandHome("~"); got != home {
		t.Errorf("ExpandHome(~) = %q, want %q", got, home)
	}

	want := filepath.Join(home, "projects", "x")
	if got := ExpandHome("~/projects/x"); got != want {
		t.Errorf("ExpandHome(~/projects/x) = %q, want %q", got, want)
	}

	if got := ExpandHome("/etc/passwd"); got != "/etc/passwd" {
		t.Errorf("ExpandHome should leave absolute paths alone, got %q", got)
	}
}

func TestNormalizeRootRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notadir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NormalizeRoot(file); err == nil {
		t.Fatal("expected error normalizing a non-directory root")
	}
}

func TestNormalizeRootsDefaultsToCWD(t *testing.T) {
	roots, err := NormalizeRoots(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 1 {
		t.Fatalf("expected exactly one default root, got %d", len(roots))
	}

	cwd, _ := os.Getwd()
	if roots[0] != cwd {
		t.Errorf("default root = %q, want cwd %q", roots[0], cwd)
	}
}

func TestRelativeToCWD(t *testing.T) {
	cwd, _ := os.Getwd()
	child := filepath.Join(cwd, "a", "b.txt")

	if got := RelativeToCWD(child); got != filepath.Join("a", "b.txt") {
		t.Errorf("RelativeToCWD(%q) = %q", child, got)
	}

	if got := RelativeToCWD("/totally/elsewhere/file.txt"); got != "/totally/elsewhere/file.txt" {
		t.Errorf("RelativeToCWD should fall back to the full path, got %q", got)
	}
}
