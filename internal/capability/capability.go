// Package capability probes the optional external dependencies once at
// startup and exposes the result as an explicit capability set, so each
// action can check what it needs before running instead of failing halfway
// through.
package capability

import (
	"fmt"
	"os/exec"
)

// Capability identifies an optional feature backed by an external dependency.
type Capability string

const (
	// Generation is the text-generation API (requires an API key).
	Generation Capability = "generation"
	// LaTeX is PDF compilation via pdflatex.
	LaTeX Capability = "latex"
	// Browser is headless rendering for JavaScript-only pages.
	Browser Capability = "browser"
)

// Status describes whether a capability is usable and, if not, what to do
// about it.
type Status struct {
	Available bool
	Detail    string
}

// Set maps each capability to its probed status.
type Set map[Capability]Status

// chromeBinaries are the binary names probed for headless rendering.
var chromeBinaries = []string{"google-chrome", "chromium", "chromium-browser"}

// Probe checks every capability once. apiKey is the resolved generation API
// key ("" means generation is unavailable).
func Probe(apiKey string) Set {
	set := Set{}

	if apiKey != "" {
		set[Generation] = Status{Available: true}
	} else {
		set[Generation] = Status{
			Detail: "no API key configured. Set OPENAI_API_KEY (or GEMINI_API_KEY) or pass --api-key",
		}
	}

	if _, err := exec.LookPath("pdflatex"); err == nil {
		set[LaTeX] = Status{Available: true}
	} else {
		set[LaTeX] = Status{
			Detail: "pdflatex not found in PATH. Install TeX Live or MiKTeX with the moderncv class, or download the .tex file and compile locally",
		}
	}

	set[Browser] = Status{
		Detail: "no Chrome/Chromium binary found. Install Chrome to enable --browser fallback",
	}
	for _, bin := range chromeBinaries {
		if _, err := exec.LookPath(bin); err == nil {
			set[Browser] = Status{Available: true}
			break
		}
	}

	return set
}

// Require returns an instructive error when the capability is unavailable.
func (s Set) Require(c Capability) error {
	status, ok := s[c]
	if !ok {
		return fmt.Errorf("unknown capability %q", c)
	}
	if !status.Available {
		return fmt.Errorf("capability %s unavailable: %s", c, status.Detail)
	}
	return nil
}

// Has reports whether the capability is available.
func (s Set) Has(c Capability) bool {
	return s[c].Available
}
