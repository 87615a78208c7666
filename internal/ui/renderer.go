package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"go.trai.ch/pali/internal/core/domain"
)

// Renderer implements ports.Renderer for terminal output.
type Renderer struct {
	ok       lipgloss.Style
	skip     lipgloss.Style
	fail     lipgloss.Style
	upstream lipgloss.Style
}

// NewRenderer creates a Renderer using the environment's color profile.
func NewRenderer() *Renderer {
	return NewRendererWithProfile(ColorProfile())
}

// NewRendererWithProfile creates a Renderer with an explicit color profile.
// Tests use termenv.Ascii for deterministic output.
func NewRendererWithProfile(profile termenv.Profile) *Renderer {
	re := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile), termenv.WithTTY(false))
	return &Renderer{
		ok:       re.NewStyle().Foreground(Green),
		skip:     re.NewStyle().Foreground(Slate),
		fail:     re.NewStyle().Foreground(Red),
		upstream: re.NewStyle().Foreground(Yellow),
	}
}

// RenderReport returns the human-readable rendering of the report: one line
// per target in processing order, the captured stderr of the first failing
// target, and a closing summary line.
func (r *Renderer) RenderReport(report *domain.Report) string {
	var b strings.Builder

	nameWidth := 0
	for _, entry := range report.Summary() {
		if n := len(entry.Target.String()); n > nameWidth {
			nameWidth = n
		}
	}

	for _, entry := range report.Summary() {
		icon, detail, style := r.entryParts(entry)
		fmt.Fprintf(&b, "%s %-*s  %s\n",
			style.Render(icon), nameWidth, entry.Target.String(), detail)
	}

	if entry, ok := report.FirstFailure(); ok {
		if entry.Result != nil && entry.Result.StderrTail != "" {
			b.WriteString("\n")
			fmt.Fprintf(&b, "stderr of %s:\n", entry.Target.String())
			tail := strings.TrimRight(entry.Result.StderrTail, "\n")
			for _, line := range strings.Split(tail, "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	b.WriteString("\n")
	if report.OK() {
		rebuilt := 0
		for _, entry := range report.Summary() {
			if entry.Status == domain.StatusSucceeded {
				rebuilt++
			}
		}
		if rebuilt == 0 {
			b.WriteString(r.ok.Render(Check) + " all targets up to date\n")
		} else {
			fmt.Fprintf(&b, "%s run succeeded (%d rebuilt)\n", r.ok.Render(Check), rebuilt)
		}
	} else if entry, ok := report.FirstFailure(); ok {
		fmt.Fprintf(&b, "%s run failed: %s\n", r.fail.Render(Cross), entry.Target.String())
	} else {
		fmt.Fprintf(&b, "%s run failed\n", r.fail.Render(Cross))
	}

	return b.String()
}

func (r *Renderer) entryParts(entry domain.ReportEntry) (string, string, lipgloss.Style) {
	switch entry.Status {
	case domain.StatusSucceeded:
		return Check, "rebuilt in " + formatDuration(entry.Result), r.ok
	case domain.StatusUpToDate:
		return Circle, "up to date", r.skip
	case domain.StatusSkippedUpstream:
		return Tilde, "skipped (upstream failure)", r.upstream
	case domain.StatusFailed:
		return Cross, failureDetail(entry.Result), r.fail
	default:
		return Warning, string(entry.Status), r.skip
	}
}

func failureDetail(result *domain.ActionResult) string {
	if result == nil {
		return "failed"
	}
	switch result.Failure {
	case domain.FailureLaunch:
		return "failed to launch"
	case domain.FailureExit:
		return fmt.Sprintf("failed with exit code %d", result.ExitCode)
	case domain.FailureTimeout:
		return "timed out"
	case domain.FailureCanceled:
		return "canceled"
	default:
		return "failed"
	}
}

func formatDuration(result *domain.ActionResult) string {
	if result == nil {
		return "0s"
	}
	return result.Duration.Round(time.Millisecond).String()
}
