// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxKeywordsToShow is the number of extracted keywords displayed
	maxKeywordsToShow = 15
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs a summary of the keyword set extracted for a posting
func (p *Printer) PrintKeywords(postingID string, kws []string) {
	shown := kws
	suffix := ""
	if len(shown) > maxKeywordsToShow {
		shown = shown[:maxKeywordsToShow]
		suffix = fmt.Sprintf("\n... and %d more", len(kws)-maxKeywordsToShow)
	}

	content := fmt.Sprintf("count: %d\n%s%s", len(kws), strings.Join(shown, ", "), suffix)
	p.printBox("Keywords for posting "+postingID, content)
}

// PrintSelection outputs a human-readable summary of the selected bullets
func (p *Printer) PrintSelection(selected []types.SelectedBullet) {
	if len(selected) == 0 {
		p.printBox("Selection", "no bullets selected")
		return
	}

	var sb strings.Builder
	for _, s := range selected {
		sb.WriteString(fmt.Sprintf("[%d] %s: %s\n", s.Score, s.Company, s.Bullet.Text))
	}

	p.printBox(fmt.Sprintf("Selection (%d bullets)", len(selected)), strings.TrimRight(sb.String(), "\n"))
}
