package walker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"
)

// defaultSkipPatterns are always-skipped directory names, independent of
// show_hidden and independent of any .gitignore content -- the handful of
// directories no name-search ever wants to descend into. Matched with
// doublestar so a future pattern with "**/" segments stays meaningful.
var defaultSkipPatterns = []string{
	".git", ".hg", ".svn",
	"node_modules", "vendor",
	".cache",
}

func isDefaultSkipped(name string) bool {
	for _, pat := range defaultSkipPatterns {
		if ok, _ := doublestar.Match(pat, name); ok {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// ignoreChain is the stack of compiled .gitignore/.ignore matchers from the
// search root down to (but not including) the current directory. Each
// element's patterns apply to everything at or below the directory it was
// loaded from -- the same hierarchical-override semantics git
// corpus's gitignore matchers implement, just evaluated lazily as the
// walker descends instead of precomputed over the whole tree up front.
type ignoreChain []*compiledIgnore

type compiledIgnore struct {
	dir     string // absolute directory the ignore file lives in
	matcher *gitignore.GitIgnore
}

// loadIgnoreFiles compiles any ".gitignore" and ".ignore" file present
// directly in dir, returning nil if neither exists or neither can be read and
// compiled. An empty ignore file still yields a (match-nothing) entry.
func loadIgnoreFiles(dir string) []*compiledIgnore {
	var out []*compiledIgnore
	for _, name := range []string{".gitignore", ".ignore"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		m, err := gitignore.CompileIgnoreFile(path)
		if err != nil {
			continue
		}
		out = append(out, &compiledIgnore{dir: dir, matcher: m})
	}
	return out
}

// extend returns a new chain with this directory's ignore files appended --
// the chain is immutable so sibling subdirectory tasks sharing a parent
// chain never interfere with one another.
func (c ignoreChain) extend(dir string) ignoreChain {
	loaded := loadIgnoreFiles(dir)
	if len(loaded) == 0 {
		return c
	}
	next := make(ignoreChain, len(c), len(c)+len(loaded))
	copy(next, c)
	return append(next, loaded...)
}

// matches reports whether absPath (a file or directory) is ignored by any
// matcher in the chain. go-gitignore matches relative to the directory its
// source file lives in, so each link is tested against the path relative
// to that link's own directory.
func (c ignoreChain) matches(absPath string, isDir bool) bool {
	for _, link := range c {
		rel, err := filepath.Rel(link.dir, absPath)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if isDir {
			if link.matcher.MatchesPath(rel + "/") {
				return true
			}
		}
		if link.matcher.MatchesPath(rel) {
			return true
		}
	}
	return false
}
