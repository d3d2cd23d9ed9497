// Package report is the console reporter for a generation run. It is
// an explicit value handed to each step rather than a global, so the
// builders stay pure and tests can inspect what a run accumulated.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	blue   = color.New(color.FgBlue).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

// Reporter prints run progress and accumulates warnings and errors for
// the end-of-run summary.
type Reporter struct {
	out      io.Writer
	verbose  bool
	runID    string
	started  time.Time
	warnings []string
	errors   []string
}

// New creates a Reporter writing to stdout.
func New(verbose bool) *Reporter {
	return NewWithWriter(os.Stdout, verbose)
}

// NewWithWriter creates a Reporter writing to w; tests pass a buffer.
func NewWithWriter(w io.Writer, verbose bool) *Reporter {
	return &Reporter{
		out:     w,
		verbose: verbose,
		runID:   uuid.NewString(),
		started: time.Now(),
	}
}

// RunID identifies this run in the summary output.
func (r *Reporter) RunID() string { return r.runID }

func (r *Reporter) Success(format string, args ...any) {
	fmt.Fprintln(r.out, green("✓")+" "+fmt.Sprintf(format, args...))
}

func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintln(r.out, blue("→")+" "+fmt.Sprintf(format, args...))
}

// Warning prints the message and records it for the summary.
func (r *Reporter) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.warnings = append(r.warnings, msg)
	fmt.Fprintln(r.out, yellow("⚠")+" "+msg)
}

// Error prints the message and records it for the summary. Errors here
// are non-fatal; fatal conditions return a Go error up the call stack.
func (r *Reporter) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.errors = append(r.errors, msg)
	fmt.Fprintln(r.out, red("✗")+" "+msg)
}

// Debug prints only when the run is verbose.
func (r *Reporter) Debug(format string, args ...any) {
	if r.verbose {
		fmt.Fprintln(r.out, gray("  "+fmt.Sprintf(format, args...)))
	}
}

// Warnings returns the accumulated warning messages.
func (r *Reporter) Warnings() []string { return r.warnings }

// Errors returns the accumulated non-fatal error messages.
func (r *Reporter) Errors() []string { return r.errors }

// RunSummary is the final accounting for one run.
type RunSummary struct {
	RunID              string
	CollectionsWritten int
	WallpapersWritten  int
	WarningCount       int
	ErrorCount         int
	Duration           time.Duration
}

// Summary closes out the run and returns its accounting.
func (r *Reporter) Summary(collections, wallpapers int) RunSummary {
	return RunSummary{
		RunID:              r.runID,
		CollectionsWritten: collections,
		WallpapersWritten:  wallpapers,
		WarningCount:       len(r.warnings),
		ErrorCount:         len(r.errors),
		Duration:           time.Since(r.started),
	}
}

// PrintSummary writes the end-of-run block the way the tool always has.
func (r *Reporter) PrintSummary(s RunSummary, dryRun bool) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "==================================================")
	r.Info("Summary (run %s):", s.RunID)
	r.Info("  Collections: %d created", s.CollectionsWritten)
	r.Info("  Wallpapers: %d created", s.WallpapersWritten)
	r.Info("  Warnings: %d", s.WarningCount)
	r.Info("  Errors: %d", s.ErrorCount)
	r.Info("  Duration: %.1fs", s.Duration.Seconds())

	if dryRun {
		fmt.Fprintln(r.out)
		r.Info("[DRY RUN] No files were actually created")
		return
	}
	fmt.Fprintln(r.out)
	r.Success("Content generation complete!")
}
