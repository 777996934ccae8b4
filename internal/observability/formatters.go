// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/letter-agent/internal/capability"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// previewLines is the number of letter lines shown in a preview
	previewLines = 12
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

// PrintLetterPreview shows the first lines of the current letter draft.
func (p *Printer) PrintLetterPreview(letter string) {
	if letter == "" {
		return
	}

	lines := strings.Split(letter, "\n")
	shown := lines
	if len(lines) > previewLines {
		shown = append(append([]string{}, lines[:previewLines]...),
			fmt.Sprintf("... and %d more line(s)", len(lines)-previewLines))
	}
	p.printBox("Letter draft", strings.Join(shown, "\n"))
}

// PrintCapabilities renders the probed capability set.
func (p *Printer) PrintCapabilities(set capability.Set) {
	var sb strings.Builder
	for _, c := range []capability.Capability{capability.Generation, capability.LaTeX, capability.Browser} {
		status := set[c]
		mark := "✗"
		if status.Available {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, c))
		if !status.Available && status.Detail != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", status.Detail))
		}
	}
	p.printBox("Capabilities", strings.TrimRight(sb.String(), "\n"))
}

// PrintValidationResult summarizes the outcome of the document gate.
func (p *Printer) PrintValidationResult(accepted bool, detail string) {
	title := "LaTeX document rejected"
	if accepted {
		title = "LaTeX document accepted"
	}
	p.printBox(title, detail)
}

// PrintCompileLog shows the tail of a compiler log for diagnosis.
func (p *Printer) PrintCompileLog(logOutput string) {
	if logOutput == "" {
		return
	}
	lines := strings.Split(strings.TrimRight(logOutput, "\n"), "\n")
	if len(lines) > 30 {
		lines = lines[len(lines)-30:]
	}
	p.printBox("Compiler log (tail)", strings.Join(lines, "\n"))
}
