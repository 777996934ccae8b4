// Package assembly decides whether generated LaTeX output is acceptable to
// hand to the compiler.
//
// The generation API cannot be constrained, so its output is treated as
// untrusted text: the document is de-fenced, checked for structural
// completeness, the letter body is isolated and scanned for leftover
// template placeholders, and a known model misspelling is patched. Only a
// document passing every gate is released for compilation; nothing is
// recovered or retried here, the caller must regenerate.
package assembly

import "strings"

// Document-level markers required for a moderncv letter to be compilable.
const (
	DocumentClassMarker = `\documentclass`
	BeginDocumentMarker = `\begin{document}`
	EndDocumentMarker   = `\end{document}`
)

// Letter body markers delimiting the free-text portion of the letter.
const (
	LetterTitleMarker   = `\makelettertitle`
	LetterClosingMarker = `\makeletterclosing`
)

// Models occasionally emit \moderncvsyle for the style command. Patched as a
// fixed find-and-replace before the document is accepted.
const (
	styleTypo    = `\moderncvsyle`
	styleCorrect = `\moderncvstyle`
)

// StripCodeFences removes a surrounding triple-backtick code block that a
// generation response may include despite instructions not to. The first and
// last fence lines are dropped, everything between is kept. Running it on an
// already de-fenced string returns the string unchanged (idempotent).
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	lines = lines[1:]
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// CheckStructure verifies the document contains a document-class declaration
// and both document-begin and document-end markers. The first missing marker
// is reported; no partial recovery is attempted.
func CheckStructure(doc string) error {
	for _, marker := range []string{DocumentClassMarker, BeginDocumentMarker, EndDocumentMarker} {
		if !strings.Contains(doc, marker) {
			return &StructureError{Missing: marker}
		}
	}
	return nil
}

// IsolateBody returns the text between the letter-title and letter-closing
// markers, using the first closing marker after the title (non-greedy). When
// the marker pair is absent the whole document is treated as the body and
// degraded is true.
func IsolateBody(doc string) (body string, degraded bool) {
	start := strings.Index(doc, LetterTitleMarker)
	if start < 0 {
		return doc, true
	}
	rest := doc[start+len(LetterTitleMarker):]
	end := strings.Index(rest, LetterClosingMarker)
	if end < 0 {
		return doc, true
	}
	return rest[:end], false
}

// CheckPlaceholders scans the letter body for known sample phrases,
// case-insensitively. A match means the model returned the template filler
// instead of real content.
func CheckPlaceholders(body string, placeholders []string) error {
	lower := strings.ToLower(body)
	for _, phrase := range placeholders {
		p := strings.ToLower(strings.TrimSpace(phrase))
		if p == "" {
			continue
		}
		if strings.Contains(lower, p) {
			return &PlaceholderError{Phrase: phrase}
		}
	}
	return nil
}

// PatchKnownTypos applies the fixed correction for the one style-command
// misspelling the generation API is known to produce.
func PatchKnownTypos(doc string) string {
	return strings.ReplaceAll(doc, styleTypo, styleCorrect)
}

// ValidateDocument runs the full acceptance gate over a raw generation
// response: de-fencing, structural check, body isolation, placeholder check,
// typo patch. On success it returns the accepted LaTeX source ready for
// compilation; on failure it returns a typed error describing the rejection.
func ValidateDocument(raw string, placeholders []string) (string, error) {
	doc := StripCodeFences(raw)

	if err := CheckStructure(doc); err != nil {
		return "", err
	}

	body, _ := IsolateBody(doc)
	if err := CheckPlaceholders(body, placeholders); err != nil {
		return "", err
	}

	return PatchKnownTypos(doc), nil
}
