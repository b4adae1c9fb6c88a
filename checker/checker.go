// Package checker runs labeled pass/fail checks and reports a summary.
//
// Output is plain text when the destination is not a terminal, so the
// line format stays stable under redirection. On a terminal the runner
// keeps a live status line and colors the result tags.
package checker

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
)

var (
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Summary holds the running tallies of a check run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Runner executes checks sequentially and prints one line per check.
type Runner struct {
	out      io.Writer
	live     *uilive.Writer
	color    bool
	quiet    bool
	sections int
	summary  Summary
}

// Option configures a Runner.
type Option func(*Runner)

// WithoutColor disables colored result tags even on a terminal.
func WithoutColor() Option {
	return func(r *Runner) {
		r.color = false
	}
}

// Quiet suppresses the header, section and per-check lines; only the
// summary block is printed.
func Quiet() Option {
	return func(r *Runner) {
		r.quiet = true
	}
}

// New creates a runner writing to out. When out is a terminal the runner
// starts a live status line and enables colored tags.
func New(out io.Writer, opts ...Option) *Runner {
	r := &Runner{out: out}

	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		r.color = true
		live := uilive.New()
		live.Out = f
		live.RefreshInterval = time.Millisecond * 100
		r.live = live
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.live != nil {
		r.live.Start()
	}
	return r
}

// println writes a permanent line, above the live status line when one
// is active.
func (r *Runner) println(format string, a ...any) {
	w := r.out
	if r.live != nil {
		w = r.live.Bypass()
	}
	fmt.Fprintf(w, format+"\n", a...)
}

// Header prints the suite header line.
func (r *Runner) Header(title string) {
	if r.quiet {
		return
	}
	r.println("=== %s ===", title)
	r.println("")
}

// Section prints a group label. Sections after the first are separated
// by a blank line.
func (r *Runner) Section(label string) {
	r.sections++
	if r.quiet {
		return
	}
	if r.sections > 1 {
		r.println("")
	}
	r.println("%s", label)
}

// Check records one result and prints its [PASS]/[FAIL] line.
// It returns ok unchanged so callers can branch on it.
func (r *Runner) Check(label string, ok bool) bool {
	r.summary.Total++
	tag := "[PASS]"
	if ok {
		r.summary.Passed++
		if r.color {
			tag = passStyle.Render(tag)
		}
	} else {
		r.summary.Failed++
		tag = "[FAIL]"
		if r.color {
			tag = failStyle.Render(tag)
		}
	}

	if !r.quiet {
		r.println("  %s %s", tag, label)
	}

	if r.live != nil {
		fmt.Fprintf(r.live, "%d checks run\n", r.summary.Total)
		r.live.Flush()
	}
	return ok
}

// Summary returns the current tallies.
func (r *Runner) Summary() Summary {
	return r.summary
}

// ExitCode returns 0 when every check passed, 1 otherwise.
func (r *Runner) ExitCode() int {
	if r.summary.Failed == 0 {
		return 0
	}
	return 1
}

// PrintSummary stops the live status line and prints the summary block
// with the final verdict.
func (r *Runner) PrintSummary() {
	r.stopLive()

	s := r.summary
	fmt.Fprintf(r.out, "\n=== Test Summary ===\n")
	fmt.Fprintf(r.out, "Total tests: %d\n", s.Total)
	fmt.Fprintf(r.out, "Passed: %d\n", s.Passed)
	fmt.Fprintf(r.out, "Failed: %d\n", s.Failed)

	if s.Failed == 0 {
		verdict := "[SUCCESS] All tests passed!"
		if r.color {
			verdict = successStyle.Render(verdict)
		}
		fmt.Fprintf(r.out, "\n%s\n", verdict)
	} else {
		verdict := "[FAILURE] Some tests failed!"
		if r.color {
			verdict = failureStyle.Render(verdict)
		}
		fmt.Fprintf(r.out, "\n%s\n", verdict)
	}
}

func (r *Runner) stopLive() {
	if r.live == nil {
		return
	}
	// Blank out the status line so the summary starts clean
	fmt.Fprint(r.live, "\n")
	r.live.Flush()
	r.live.Stop()
	r.live = nil
}
