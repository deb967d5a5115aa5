// Package queryline parses a user-typed query line (or process argv) into a
// Query, and turns a Query into an immutable Config plus a compiled Regex --
// the two objects everything downstream (walker, matcher) treats as
// read-only for the lifetime of one search.
package queryline

import (
	"fmt"
	"regexp"
	"runtime"
	"sync/atomic"
	"unicode"

	"github.com/opencoff/shlex"
	flag "github.com/spf13/pflag"

	"github.com/jsnider3/ffind/internal/fsutil"
)

// Kind restricts matches to files or directories. KindAny applies no filter.
type Kind int

const (
	KindAny Kind = iota
	KindFile
	KindDir
)

// Query is the parsed, but not yet validated-against-the-filesystem, form
// of a query line: pattern plus flags.
type Query struct {
	Pattern       string
	Roots         []string
	Kind          Kind
	ShowHidden    bool
	MaxDepth      int // 0 means unset
	CaseSensitive bool
	Threads       int // 0 means unset (defaults to host parallelism)
	MaxResults    int // 0 means unset (unbounded)
	JSON          bool
}

// Config is the immutable product of Query.ToConfig: normalized search parameters
// shared read-only by every walker worker, plus the one piece of shared
// mutable state they all touch -- the results counter.
type Config struct {
	Kind          Kind
	ShowHidden    bool
	MaxDepth      int // 0 means unbounded
	CaseSensitive bool
	Threads       int // always >= 1
	MaxResults    int // 0 means unbounded
	ResultsCount  *atomic.Int64
}

// tokenize splits a raw query line with shell-word semantics (so quoted
// roots containing spaces survive) into argv-shaped words. ParseLine hands
// the result to ParseArgs, which parses it with the same flag grammar the
// CLI entrypoint uses.
func tokenize(line string) ([]string, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, err
	}
	return words, nil
}

// newFlagSet builds the flag grammar shared by the CLI root command and the
// in-TUI query line.
func newFlagSet() (*flag.FlagSet, *queryFlags) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.Usage = func() {}

	qf := &queryFlags{}
	fs.StringVarP(&qf.kind, "kind", "k", "", "file / directory")
	fs.BoolVarP(&qf.hidden, "hidden", "H", false, "include hidden files (ignore-file rules still apply)")
	fs.IntVarP(&qf.maxDepth, "max-depth", "d", 0, "maximum traversal depth")
	fs.BoolVarP(&qf.caseSensitive, "case-sensitive", "s", false, "force case-sensitive matching")
	fs.IntVarP(&qf.threads, "threads", "t", 0, "worker thread count")
	fs.IntVarP(&qf.maxResults, "max-results", "m", 0, "maximum results")
	fs.BoolVarP(&qf.json, "json", "j", false, "reserved; no-op in TUI mode")

	return fs, qf
}

type queryFlags struct {
	kind          string
	hidden        bool
	maxDepth      int
	caseSensitive bool
	threads       int
	maxResults    int
	json          bool
}

// ParseLine tokenizes and parses a raw query line typed by the user (or
// joined from argv) into a Query. An empty pattern is an error: the caller
// is responsible for treating a blank input specially before ever calling
// ParseLine.
func ParseLine(line string) (Query, error) {
	words, err := tokenize(line)
	if err != nil {
		return Query{}, fmt.Errorf("tokenizing query: %w", err)
	}
	return ParseArgs(words)
}

// ParseArgs parses pre-tokenized arguments (e.g. os.Args[1:]) into a Query.
func ParseArgs(args []string) (Query, error) {
	fs, qf := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Query{}, err
	}

	positional := fs.Args()
	if len(positional) == 0 {
		return Query{}, fmt.Errorf("a regex pattern is required")
	}

	q := Query{
		Pattern:       positional[0],
		Roots:         positional[1:],
		ShowHidden:    qf.hidden,
		MaxDepth:      qf.maxDepth,
		CaseSensitive: qf.caseSensitive,
		Threads:       qf.threads,
		MaxResults:    qf.maxResults,
		JSON:          qf.json,
	}

	switch qf.kind {
	case "", " ":
		q.Kind = KindAny
	case "file", "f":
		q.Kind = KindFile
	case "directory", "dir", "d":
		q.Kind = KindDir
	default:
		return Query{}, fmt.Errorf("unknown --kind value %q (want file/f or directory/dir/d)", qf.kind)
	}

	return q, nil
}

// hasUppercase reports whether s contains any uppercase rune -- the "smart
// case" trigger for regex compilation.
func hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// ToConfig validates and normalizes a Query into a Config plus compiled
// Regex. The config's ResultsCount is a fresh atomic counter for this run.
func (q Query) ToConfig() (Config, *regexp.Regexp, error) {
	caseSensitive := q.CaseSensitive || hasUppercase(q.Pattern)

	pattern := q.Pattern
	prefix := "(?s)"
	if !caseSensitive {
		prefix += "(?i)"
	}
	re, err := regexp.Compile(prefix + pattern)
	if err != nil {
		return Config{}, nil, fmt.Errorf("invalid pattern %q: %w", q.Pattern, err)
	}

	threads := q.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads < 1 {
		threads = 1
	}

	cfg := Config{
		Kind:          q.Kind,
		ShowHidden:    q.ShowHidden,
		MaxDepth:      q.MaxDepth,
		CaseSensitive: caseSensitive,
		Threads:       threads,
		MaxResults:    q.MaxResults,
		ResultsCount:  &atomic.Int64{},
	}

	return cfg, re, nil
}

// NormalizedRoots validates and normalizes the query's root paths.
func (q Query) NormalizedRoots() ([]string, error) {
	return fsutil.NormalizeRoots(q.Roots)
}
