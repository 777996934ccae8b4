// Package assembly decides whether generated LaTeX output is acceptable to
// hand to the compiler.
package assembly

import "fmt"

// StructureError reports a generated document missing one of the three
// document-level markers required for compilation.
type StructureError struct {
	Missing string // the marker that was not found
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("document structure incomplete: missing %s", e.Missing)
}

// PlaceholderError reports sample text from the template that the model
// failed to replace.
type PlaceholderError struct {
	Phrase string // the placeholder phrase found in the letter body
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("placeholder text remains in letter body: %q", e.Phrase)
}
