package formatter

import (
	"fmt"
	"io"

	"github.com/avairo/tplcheck/internal/check"
)

// ConsoleReporter renders validation progress as numbered stage lines with
// check/cross outcome marks and itemized violation lists.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter writes the validation report to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Begin prints the run preamble.
func (r *ConsoleReporter) Begin() {
	fmt.Fprintln(r.w, "Validating template catalog...")
}

// StageStart prints the numbered progress line for one stage.
func (r *ConsoleReporter) StageStart(num int, label string) {
	fmt.Fprintf(r.w, "%d. %s\n", num, label)
}

// StagePass prints a checkmark-style success line.
func (r *ConsoleReporter) StagePass(msg string) {
	fmt.Fprintln(r.w, StyleGreen.Render("✅ "+msg))
}

// StageFail prints a cross-style failure line.
func (r *ConsoleReporter) StageFail(msg string) {
	fmt.Fprintln(r.w, StyleRed.Render("❌ "+msg))
}

// SchemaErrors itemizes entry-level schema violations.
func (r *ConsoleReporter) SchemaErrors(errs []check.SchemaError) {
	for _, e := range errs {
		fmt.Fprintf(r.w, "  - Entry '%s' (%s): error at '%s'\n", Bold(e.ID), e.Name, e.Path)
		fmt.Fprintf(r.w, "    %s\n", Dim(e.Message))
	}
}

// IconErrors itemizes unresolved icon references with suggestions when one
// cleared the similarity cutoff.
func (r *ConsoleReporter) IconErrors(errs []check.IconError) {
	for _, e := range errs {
		fmt.Fprintf(r.w, "  - Entry '%s' (%s): %s - Icon: '%s'\n", Bold(e.ID), e.Name, e.Message, e.Icon)
		if e.Suggestion != "" {
			fmt.Fprintf(r.w, "    Did you mean: '%s'?\n", StyleYellow.Render(e.Suggestion))
		}
	}
}

// UnusedIcons prints the informational unused-file warning.
func (r *ConsoleReporter) UnusedIcons(names []string) {
	fmt.Fprintln(r.w, StyleYellow.Render(fmt.Sprintf("Warning: Found %d unused icon files:", len(names))))
	for _, name := range names {
		fmt.Fprintf(r.w, "  - %s\n", Dim(name))
	}
}

// Done prints the overall success line.
func (r *ConsoleReporter) Done() {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, StyleGreen.Render("✅ All validations completed successfully!"))
}
