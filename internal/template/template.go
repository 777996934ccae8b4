// Package template holds the default moderncv letter template, the
// placeholder phrases seeded in it, and the optional header fields a
// template-fill request may splice into the document header.
package template

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

//go:embed moderncv_letter.tex
var defaultLaTeX string

// DefaultLaTeX returns the built-in moderncv letter template.
func DefaultLaTeX() string {
	return defaultLaTeX
}

// DefaultPlaceholders lists sample phrases from the default template body.
// A generated document whose letter body still contains any of these was not
// actually filled by the model and must be rejected. Matching is
// case-insensitive.
//
// The list is tied to the default template: when a user supplies their own
// template, leftover filler from that template is not detected.
var DefaultPlaceholders = []string{
	"lorem ipsum",
	"consectetur adipiscing",
	"suspendisse potenti",
	"pellentesque habitant",
	"loremstraße",
	"ipsumstadt",
}

// Load reads a user-supplied template file, falling back to the built-in
// template when path is empty.
func Load(path string) (string, error) {
	if path == "" {
		return defaultLaTeX, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return string(content), nil
}

// HeaderFields are the optional sender/recipient strings a fill request asks
// the model to splice into the template's header commands. All fields are
// optional; empty fields leave the template header untouched.
type HeaderFields struct {
	SenderName    string `validate:"omitempty,max=200"`
	SenderAddress string `validate:"omitempty,max=500"`
	SenderEmail   string `validate:"omitempty,email"`
	SenderPhone   string `validate:"omitempty,max=50"`
	Recipient     string `validate:"omitempty,max=500"`
	Opening       string `validate:"omitempty,max=200"`
}

var validate = validator.New()

// Validate checks the header fields against their constraints.
func (h *HeaderFields) Validate() error {
	if err := validate.Struct(h); err != nil {
		return fmt.Errorf("invalid header fields: %w", err)
	}
	return nil
}

// IsEmpty reports whether no header field is set.
func (h *HeaderFields) IsEmpty() bool {
	return h == nil || *h == HeaderFields{}
}

// PromptHint renders the header fields as instruction lines for the
// template-fill prompt. Returns "" when no field is set.
func (h *HeaderFields) PromptHint() string {
	if h.IsEmpty() {
		return ""
	}
	hint := ""
	add := func(label, value string) {
		if value != "" {
			hint += fmt.Sprintf("- %s: %s\n", label, value)
		}
	}
	add(`\name`, h.SenderName)
	add(`\address`, h.SenderAddress)
	add(`\email`, h.SenderEmail)
	add(`\phone`, h.SenderPhone)
	add(`\recipient`, h.Recipient)
	add(`\opening`, h.Opening)
	return hint
}
