package observability

import (
	"strings"
	"testing"

	"github.com/jonathan/letter-agent/internal/capability"
	"github.com/stretchr/testify/assert"
)

func TestPrintLetterPreview_TruncatesLongLetters(t *testing.T) {
	var sb strings.Builder
	p := NewPrinter(&sb)

	letter := strings.Repeat("Zeile\n", 40)
	p.PrintLetterPreview(letter)

	out := sb.String()
	assert.Contains(t, out, "Letter draft")
	assert.Contains(t, out, "more line(s)")
}

func TestPrintLetterPreview_EmptyLetterSilent(t *testing.T) {
	var sb strings.Builder
	NewPrinter(&sb).PrintLetterPreview("")
	assert.Empty(t, sb.String())
}

func TestPrintCapabilities(t *testing.T) {
	var sb strings.Builder
	set := capability.Set{
		capability.Generation: {Available: true},
		capability.LaTeX:      {Available: false, Detail: "pdflatex not found"},
		capability.Browser:    {Available: false, Detail: "no Chrome"},
	}
	NewPrinter(&sb).PrintCapabilities(set)

	out := sb.String()
	assert.Contains(t, out, "✓ generation")
	assert.Contains(t, out, "✗ latex")
	assert.Contains(t, out, "pdflatex not found")
}

func TestPrintValidationResult(t *testing.T) {
	var sb strings.Builder
	NewPrinter(&sb).PrintValidationResult(false, "placeholder text remains")
	assert.Contains(t, sb.String(), "rejected")
	assert.Contains(t, sb.String(), "placeholder text remains")
}

func TestPrintCompileLog_ShowsTail(t *testing.T) {
	var sb strings.Builder
	logOutput := strings.Repeat("noise\n", 50) + "! LaTeX Error: something\n"
	NewPrinter(&sb).PrintCompileLog(logOutput)
	assert.Contains(t, sb.String(), "LaTeX Error")
}
