// Package session models the mutable per-session state of the letter
// workflow as a single explicit context object instead of ambient globals.
// The session is persisted between CLI invocations as a JSON file and
// validated against a schema on load.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonathan/letter-agent/internal/prompts"
	"github.com/jonathan/letter-agent/internal/schemas"
)

// Session is the single source of truth for the current letter workflow.
// Field ownership:
//   - LetterText: written by generate, refine and URL import; read by every
//     export action.
//   - CVText, JobText: source caches written when a generation call succeeds;
//     read by generate, refine and fill-template.
//   - ChangeRequest: written by the user (refine flag); read by refine.
//   - LaTeXTemplate: written by the user (template upload/flag); read by
//     fill-template. Empty means the built-in default.
//   - Prompts: user overrides; read by the prompt builders.
type Session struct {
	ID            string            `json:"id"`
	LetterText    string            `json:"letter_text"`
	CVText        string            `json:"cv_text"`
	JobText       string            `json:"job_text"`
	ChangeRequest string            `json:"change_request,omitempty"`
	LaTeXTemplate string            `json:"latex_template,omitempty"`
	Prompts       *prompts.Overrides `json:"prompts,omitempty"`
}

// New creates an empty session with a fresh identifier.
func New() *Session {
	return &Session{ID: uuid.NewString()}
}

// Load reads and schema-validates a session file. A missing file is not an
// error: a fresh session is returned so every command can be the first one
// run.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read session file %s: %w", path, err)
	}

	if err := schemas.ValidateSession(data); err != nil {
		return nil, fmt.Errorf("session file %s is not valid: %w", path, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", path, err)
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return &s, nil
}

// Save writes the session back to disk, creating parent directories as
// needed.
func (s *Session) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", path, err)
	}
	return nil
}

// HasLetter reports whether a letter draft exists to refine or export.
func (s *Session) HasLetter() bool {
	return s.LetterText != ""
}

// HasSources reports whether both generation inputs are cached.
func (s *Session) HasSources() bool {
	return s.CVText != "" && s.JobText != ""
}
