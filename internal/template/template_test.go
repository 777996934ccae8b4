package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLaTeX_IsCompleteLetter(t *testing.T) {
	tex := DefaultLaTeX()

	assert.Contains(t, tex, `\documentclass`)
	assert.Contains(t, tex, `\begin{document}`)
	assert.Contains(t, tex, `\end{document}`)
	assert.Contains(t, tex, `\makelettertitle`)
	assert.Contains(t, tex, `\makeletterclosing`)
	assert.Contains(t, tex, "moderncv")
}

func TestDefaultPlaceholders_PresentInDefaultTemplate(t *testing.T) {
	tex := strings.ToLower(DefaultLaTeX())
	for _, phrase := range DefaultPlaceholders {
		assert.Contains(t, tex, phrase, "placeholder %q not seeded in template", phrase)
	}
}

func TestLoad_EmptyPathFallsBack(t *testing.T) {
	tex, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLaTeX(), tex)
}

func TestLoad_CustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letter.tex")
	require.NoError(t, os.WriteFile(path, []byte(`\documentclass{letter}`), 0644))

	tex, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, `\documentclass{letter}`, tex)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.tex"))
	assert.Error(t, err)
}

func TestHeaderFields_Validate(t *testing.T) {
	ok := &HeaderFields{SenderName: "Max Mustermann", SenderEmail: "max@example.com"}
	assert.NoError(t, ok.Validate())

	bad := &HeaderFields{SenderEmail: "not-an-email"}
	assert.Error(t, bad.Validate())
}

func TestHeaderFields_IsEmpty(t *testing.T) {
	var nilFields *HeaderFields
	assert.True(t, nilFields.IsEmpty())
	assert.True(t, (&HeaderFields{}).IsEmpty())
	assert.False(t, (&HeaderFields{Opening: "Sehr geehrte Frau Schmidt,"}).IsEmpty())
}

func TestHeaderFields_PromptHint(t *testing.T) {
	h := &HeaderFields{
		SenderName: "Max Mustermann",
		Recipient:  "Beispiel GmbH",
	}
	hint := h.PromptHint()
	assert.Contains(t, hint, `\name: Max Mustermann`)
	assert.Contains(t, hint, `\recipient: Beispiel GmbH`)
	assert.NotContains(t, hint, `\email`)

	assert.Empty(t, (&HeaderFields{}).PromptHint())
}
