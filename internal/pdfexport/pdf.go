// Package pdfexport renders the plain-text letter as a simple A4 PDF using
// the built-in core fonts, without LaTeX.
package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	// pageBreakMargin is the bottom margin triggering an automatic page break.
	pageBreakMargin = 20.0
	// wrapWidth is the column at which paragraphs are wrapped.
	wrapWidth = 90
	titleFontSize = 16.0
	bodyFontSize  = 12.0
	lineHeight    = 6.0
)

// SanitizeLatin1 replaces characters the core fonts cannot encode with '?'.
// Core-font PDFs are limited to Latin-1; this mirrors a lossy
// encode-decode round trip through that charset.
func SanitizeLatin1(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r <= 0xFF {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// Render produces a PDF from the letter text: bold title, 12pt body,
// paragraphs split on blank lines and wrapped at a fixed column.
func Render(letterText, title string) ([]byte, error) {
	letterText = SanitizeLatin1(letterText)

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, pageBreakMargin)
	doc.AddPage()
	doc.SetTitle(title, true)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", titleFontSize)
	doc.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")

	doc.Ln(2)
	doc.SetFont("Helvetica", "", bodyFontSize)

	for _, para := range strings.Split(letterText, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			doc.Ln(4)
			continue
		}
		doc.MultiCell(0, lineHeight, tr(wrapParagraph(para, wrapWidth)), "", "L", false)
		doc.Ln(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapParagraph greedily wraps each line of a paragraph at the given column,
// preserving line breaks already present in the text.
func wrapParagraph(para string, width int) string {
	var out []string
	for _, line := range strings.Split(para, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
