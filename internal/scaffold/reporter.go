package scaffold

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives per-phase status updates during generation.
type Reporter interface {
	// StepStart announces a phase with an optional detail message.
	StepStart(name, detail string)
	// StepComplete marks the current phase as finished.
	StepComplete(detail string)
	// StepError marks the current phase as failed.
	StepError(err error)
	// Note prints a standalone guidance line (install hints, manual steps).
	Note(msg string)
}

// Reporter output styles.
var (
	repSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	repError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	repMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
)

// ConsoleReporter prints human-readable status lines for each phase.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a ConsoleReporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// StepStart prints the phase name and detail.
func (r *ConsoleReporter) StepStart(name, detail string) {
	if detail != "" {
		_, _ = fmt.Fprintf(r.out, "%s %s: %s\n", repMuted.Render("○"), name, detail)
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s %s\n", repMuted.Render("○"), name)
}

// StepComplete prints a completion line.
func (r *ConsoleReporter) StepComplete(detail string) {
	if detail == "" {
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s %s\n", repSuccess.Render("✓"), detail)
}

// StepError prints a failure line.
func (r *ConsoleReporter) StepError(err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s %v\n", repError.Render("✗"), err)
}

// Note prints a guidance line.
func (r *ConsoleReporter) Note(msg string) {
	_, _ = fmt.Fprintf(r.out, "%s\n", msg)
}

// NoOpReporter discards all status updates.
type NoOpReporter struct{}

// StepStart implements Reporter.
func (r *NoOpReporter) StepStart(_, _ string) {}

// StepComplete implements Reporter.
func (r *NoOpReporter) StepComplete(_ string) {}

// StepError implements Reporter.
func (r *NoOpReporter) StepError(_ error) {}

// Note implements Reporter.
func (r *NoOpReporter) Note(_ string) {}
