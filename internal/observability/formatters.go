// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/anchor-insight/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// barWidth is the width of the score bar next to each anchor
	barWidth = 20
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs a human-readable summary of a scoring envelope.
func (p *Printer) PrintScores(envelope *types.ScoringEnvelope) {
	if envelope == nil || envelope.Derived == nil {
		return
	}

	var sb strings.Builder

	for _, code := range envelope.Derived.AnchorRank {
		score := envelope.Input.Scores.Anchors[code]
		filled := int(score / 100 * barWidth)
		if filled < 0 {
			filled = 0
		}
		if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("·", barWidth-filled)
		sb.WriteString(fmt.Sprintf("%-3s %s %5.1f\n", code, bar, score))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Pattern:  %s\n", envelope.Derived.ScorePattern))
	sb.WriteString(fmt.Sprintf("Bottom:   %v\n", envelope.Derived.BottomAnchors))
	for _, tc := range envelope.Derived.TradeoffCandidates {
		sb.WriteString(fmt.Sprintf("Tradeoff: %s sacrifices %s\n", tc.Focus, tc.Sacrifice))
	}

	p.printBox("Anchor Scores", strings.TrimRight(sb.String(), "\n"))
}

// PrintReportMeta outputs a human-readable summary of a report envelope's
// generation metadata.
func (p *Printer) PrintReportMeta(envelope *types.ReportEnvelope) {
	if envelope == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Market:   %s\n", envelope.Meta.Market))
	sb.WriteString(fmt.Sprintf("Model:    %s\n", envelope.Meta.Model))
	sb.WriteString(fmt.Sprintf("Prompt:   %s (%s)\n", envelope.Meta.PromptID, envelope.Meta.PromptVersion))
	if envelope.Meta.RequestID != "" {
		sb.WriteString(fmt.Sprintf("Request:  %s\n", envelope.Meta.RequestID))
	}
	if len(envelope.Meta.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings: %s\n", strings.Join(envelope.Meta.Warnings, ", ")))
	} else {
		sb.WriteString("Warnings: none\n")
	}
	sb.WriteString(fmt.Sprintf("Sections: %d", len(envelope.Report)))

	p.printBox("Report Generation", sb.String())
}
