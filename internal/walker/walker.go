// Package walker implements the parallel, filtered, regex-matching directory
// traversal: a pool of worker goroutines drains
// a shared directory queue, honoring ignore files, hidden-file suppression,
// kind/depth filters and a shared results cap, emitting matches onto a
// channel shared with the rest of the App loop.
package walker

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jsnider3/ffind/internal/fsutil"
	"github.com/jsnider3/ffind/internal/logger"
	"github.com/jsnider3/ffind/internal/queryline"
)

// Event is one message flowing from walker workers to the App loop. Exactly
// one of Path or Err is set, except for the terminal Done event where
// neither is set.
type Event struct {
	RunID uint64
	Path  string // relative match path, when this is a result
	Err   error  // background worker error, when set
	Done  bool   // terminal SearchComplete marker
}

// dirTask is one unit of traversal work: a directory to list, the chain of
// ignore matchers active above it, and its depth relative to the root that
// started this run (root itself is depth 0).
type dirTask struct {
	path  string
	depth int
	chain ignoreChain
}

// Scan walks roots in parallel across cfg.Threads worker goroutines,
// sending one Event per matched entry (and a final Done event) to emit.
// It returns once every worker has drained its queue, the results cap has
// been hit, or ctx is cancelled -- whichever comes first.
//
// Scan only returns an error for configuration failures (no roots);
// per-entry I/O errors are logged and skipped.
func Scan(ctx context.Context, runID uint64, roots []string, re *regexp.Regexp, cfg queryline.Config, emit chan<- Event) error {
	if len(roots) == 0 {
		return errNoRoots
	}

	// runCtx is cancelled both by the caller's ctx and by hitting the
	// results cap, and governs traversal: stop listing new directories,
	// stop enqueuing children. It deliberately does NOT gate the final
	// per-match emit send below -- a match that already passed the cap
	// check (n <= MaxResults) is a legitimate result and must reach emit
	// even if a sibling worker's cap hit cancels runCtx a moment later.
	// Only the caller's own ctx -- true external cancellation -- may drop
	// an already-accepted match.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan dirTask, cfg.Threads*4)
	var pending atomic.Int64 // in-flight + queued directory tasks, for quiescence detection

	enqueue := func(t dirTask) {
		pending.Add(1)
		select {
		case tasks <- t:
		case <-runCtx.Done():
			pending.Add(-1)
		}
	}

	// pending is charged for every root before any worker starts draining
	// tasks, so a worker that finishes one root while siblings are still
	// being enqueued can never observe a premature zero and close tasks
	// out from under an enqueue still in flight. Workers are started next,
	// ahead of the (potentially blocking, if there are more roots than
	// tasks' buffer) per-root sends below, so those sends always have a
	// consumer and can't deadlock on a large root list.
	pending.Add(int64(len(roots)))

	g, gctx := errgroup.WithContext(runCtx)
	for i := 0; i < cfg.Threads; i++ {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case t, ok := <-tasks:
					if !ok {
						return nil
					}
					processDir(gctx, ctx.Done(), cancel, runID, t, re, cfg, emit, enqueue)
					if pending.Add(-1) == 0 {
						// No task is queued or in flight: traversal is
						// quiescent. Closing tasks wakes every worker's
						// receive, which then observes the closed channel
						// and returns.
						select {
						case <-gctx.Done():
						default:
							close(tasks)
						}
					}
				}
			}
		})
	}

	for _, root := range roots {
		t := dirTask{path: root, depth: 0, chain: ignoreChain(nil).extend(root)}
		select {
		case tasks <- t:
		case <-runCtx.Done():
			if pending.Add(-1) == 0 {
				select {
				case <-gctx.Done():
				default:
					close(tasks)
				}
			}
		}
	}

	g.Wait()

	select {
	case emit <- Event{RunID: runID, Done: true}:
	case <-ctx.Done():
	}
	return nil
}

var errNoRoots = &scanError{"no search roots provided"}

type scanError struct{ msg string }

func (e *scanError) Error() string { return e.msg }

// processDir lists one directory, applies all entry filters, emits matches,
// and enqueues child directories that still have traversal budget. Hitting
// the results cap cancels ctx, which terminates every worker's traversal --
// not just this subtree. done is the caller's own cancellation signal
// (distinct from ctx): it alone may abort a send for a match that already
// passed the results-cap check, since that match is already legitimate and
// must not be dropped just because a sibling worker's cap hit cancelled ctx
// a moment later.
func processDir(ctx context.Context, done <-chan struct{}, cancel context.CancelFunc, runID uint64, t dirTask, re *regexp.Regexp, cfg queryline.Config, emit chan<- Event, enqueue func(dirTask)) {
	select {
	case <-ctx.Done():
		return
	default:
	}

	entries, err := os.ReadDir(t.path)
	if err != nil {
		logger.Debug("walker: skipping unreadable directory %s: %v", t.path, err)
		return
	}

	chain := t.chain.extend(t.path)

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return
		default:
		}

		name := entry.Name()
		childPath := filepath.Join(t.path, name)
		childDepth := t.depth + 1
		isDir := entry.IsDir()

		if !cfg.ShowHidden && isHidden(name) {
			continue
		}
		if isDir && isDefaultSkipped(name) {
			continue
		}
		if chain.matches(childPath, isDir) {
			continue
		}
		if cfg.MaxDepth > 0 && childDepth > cfg.MaxDepth {
			continue
		}

		if isDir {
			enqueue(dirTask{path: childPath, depth: childDepth, chain: chain})
		}

		// Filter order: depth (already enforced via childDepth, and
		// depth-0 never happens here since roots are never entries),
		// kind, then regex match.
		if cfg.Kind == queryline.KindFile && isDir {
			continue
		}
		if cfg.Kind == queryline.KindDir && !isDir {
			continue
		}
		if !re.Match(fsutil.Basename(childPath)) {
			continue
		}

		if cfg.MaxResults > 0 {
			n := cfg.ResultsCount.Add(1)
			if n > int64(cfg.MaxResults) {
				cancel()
				return
			}
		}

		rel := fsutil.RelativeToCWD(childPath)
		select {
		case emit <- Event{RunID: runID, Path: rel}:
		case <-done:
			return
		}
	}
}
