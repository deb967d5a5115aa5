// Command ffind is an interactive terminal filename search tool: launched
// bare it opens a fuzzy-filtering TUI with a live file preview; given a
// pattern it runs a single headless search and prints matches to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jsnider3/ffind/internal/app"
	"github.com/jsnider3/ffind/internal/logger"
	"github.com/jsnider3/ffind/internal/matcher"
	"github.com/jsnider3/ffind/internal/queryline"
	"github.com/jsnider3/ffind/internal/walker"
)

const (
	exitOK     = 0
	exitError  = 1
	exitSIGINT = 130
)

var headlessMatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)

var rootCmd = &cobra.Command{
	Use:           "ffind [pattern] [roots...]",
	Short:         "Interactive regex/fuzzy filename search with live preview",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
	// cobra declares no flags of its own: argv reaches run untouched, and
	// parsing for both this command and the in-TUI query line goes through
	// queryline's shared pflag grammar.
	DisableFlagParsing: true,
}

func run(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runTUI()
	}
	return runHeadless(args)
}

func runTUI() error {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	model := app.New()
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

// runHeadless parses the same flag grammar as the TUI's query line, runs
// one walker pass to completion, and prints each relative match path with
// its regex-matched basename segment highlighted.
func runHeadless(args []string) error {
	q, err := queryline.ParseArgs(args)
	if err != nil {
		return err
	}

	roots, err := q.NormalizedRoots()
	if err != nil {
		return err
	}

	cfg, re, err := q.ToConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	go func() {
		if _, ok := <-sigCh; ok {
			cancel()
		}
	}()

	events := make(chan walker.Event, 256)
	scanErr := make(chan error, 1)
	go func() {
		scanErr <- walker.Scan(ctx, 1, roots, re, cfg, events)
	}()

	interrupted := false
loop:
	for {
		select {
		case <-ctx.Done():
			interrupted = true
			break loop
		case ev := <-events:
			if ev.Err != nil {
				fmt.Fprintf(os.Stderr, "ffind: %v\n", ev.Err)
				continue
			}
			if ev.Done {
				break loop
			}
			fmt.Println(highlightMatch(ev.Path, re))
		}
	}

	if !interrupted {
		if err := <-scanErr; err != nil {
			return err
		}
	}
	if interrupted {
		os.Exit(exitSIGINT)
	}
	return nil
}

// highlightMatch re-locates the regex match within path's basename and
// renders it with the same Span representation (and the same bold/yellow
// style) the TUI uses for matched spans, so headless and interactive output
// never diverge on what counts as "matched".
func highlightMatch(path string, re *regexp.Regexp) string {
	dir, base := filepath.Split(path)

	loc := re.FindStringIndex(base)
	if loc == nil {
		return path
	}

	var b strings.Builder
	for _, sp := range matcher.HighlightRange(base, loc[0], loc[1]) {
		if sp.Matched {
			b.WriteString(headlessMatchStyle.Render(sp.Text))
		} else {
			b.WriteString(sp.Text)
		}
	}
	return dir + b.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ffind:", err)
		os.Exit(exitError)
	}
	os.Exit(exitOK)
}
