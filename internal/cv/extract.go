// Package cv extracts plain text from an uploaded resume so it can be fed
// into prompts.
package cv

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractError represents a failure reading or decoding a resume file.
type ExtractError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cv extraction error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("cv extraction error for %s: %s", e.Path, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// ReadText loads resume text from a file. PDF files go through text
// extraction; anything else is read as plain UTF-8 text.
func ReadText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return ExtractPDFText(path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}
	return strings.TrimSpace(string(content)), nil
}

// wholeDocExtract is the combined-reader fallback. Overridable in tests.
var wholeDocExtract = ExtractPDFTextAll

// ExtractPDFText extracts text from a PDF page by page. Pages that fail to
// decode contribute empty text rather than aborting the whole extraction;
// pages are joined with newlines. When the page-by-page pass yields nothing
// at all, the whole-document pass is tried before giving up.
func ExtractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractError{
			Path:    path,
			Message: "failed to open PDF",
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	text := strings.TrimSpace(strings.Join(pages, "\n"))
	if text != "" {
		return text, nil
	}

	// Some producers only decode cleanly through the combined reader. The
	// fallback is best-effort: if it fails too, the empty per-page result
	// stands, matching the tolerant per-page behavior.
	whole, err := wholeDocExtract(path)
	if err != nil {
		return "", nil
	}
	return whole, nil
}

// ExtractPDFTextAll extracts the whole document in one pass. ExtractPDFText
// falls back to it when per-page extraction yields nothing, since some
// producers only decode cleanly through the combined reader.
func ExtractPDFTextAll(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractError{
			Path:    path,
			Message: "failed to open PDF",
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractError{
			Path:    path,
			Message: "failed to extract text",
			Cause:   err,
		}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", &ExtractError{
			Path:    path,
			Message: "failed to read extracted text",
			Cause:   err,
		}
	}

	return strings.TrimSpace(buf.String()), nil
}
