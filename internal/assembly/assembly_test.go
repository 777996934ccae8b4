package assembly

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPlaceholders = []string{"lorem ipsum", "suspendisse potenti"}

func TestStripCodeFences_Fenced(t *testing.T) {
	input := "```latex\n\\documentclass{moderncv}\n\\begin{document}\n\\end{document}\n```"
	expected := "\\documentclass{moderncv}\n\\begin{document}\n\\end{document}"
	assert.Equal(t, expected, StripCodeFences(input))
}

func TestStripCodeFences_Unfenced(t *testing.T) {
	input := "\\documentclass{moderncv}\n\\begin{document}\n\\end{document}"
	assert.Equal(t, input, StripCodeFences(input))
}

func TestStripCodeFences_Idempotent(t *testing.T) {
	input := "```\n\\documentclass{x}\ncontent\n```"
	once := StripCodeFences(input)
	twice := StripCodeFences(once)
	assert.Equal(t, once, twice)
}

func TestStripCodeFences_MissingClosingFence(t *testing.T) {
	input := "```latex\n\\documentclass{x}\ncontent"
	assert.Equal(t, "\\documentclass{x}\ncontent", StripCodeFences(input))
}

func TestCheckStructure_Complete(t *testing.T) {
	doc := `\documentclass{moderncv}\begin{document}text\end{document}`
	assert.NoError(t, CheckStructure(doc))
}

func TestCheckStructure_MissingMarkers(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		missing string
	}{
		{
			name:    "no documentclass",
			doc:     `\begin{document}text\end{document}`,
			missing: `\documentclass`,
		},
		{
			name:    "no begin",
			doc:     `\documentclass{moderncv}text\end{document}`,
			missing: `\begin{document}`,
		},
		{
			name:    "no end",
			doc:     `\documentclass{moderncv}\begin{document}text`,
			missing: `\end{document}`,
		},
		{
			name:    "empty document",
			doc:     "",
			missing: `\documentclass`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStructure(tt.doc)
			require.Error(t, err)

			var structErr *StructureError
			require.ErrorAs(t, err, &structErr)
			assert.Equal(t, tt.missing, structErr.Missing)
		})
	}
}

func TestIsolateBody_MarkersPresent(t *testing.T) {
	doc := `\documentclass{x}\begin{document}\makelettertitle Hello world \makeletterclosing\end{document}`
	body, degraded := IsolateBody(doc)
	assert.False(t, degraded)
	assert.Equal(t, " Hello world ", body)
}

func TestIsolateBody_NonGreedy(t *testing.T) {
	// Two closing markers: the body must end at the first one.
	doc := `\makelettertitle first \makeletterclosing middle \makeletterclosing`
	body, degraded := IsolateBody(doc)
	assert.False(t, degraded)
	assert.Equal(t, " first ", body)
}

func TestIsolateBody_NeverIncludesTextOutsideMarkers(t *testing.T) {
	doc := `PREAMBLE \makelettertitle body text \makeletterclosing TRAILER`
	body, degraded := IsolateBody(doc)
	assert.False(t, degraded)
	assert.NotContains(t, body, "PREAMBLE")
	assert.NotContains(t, body, "TRAILER")
}

func TestIsolateBody_MarkersAbsent(t *testing.T) {
	doc := `\documentclass{x}\begin{document}just text\end{document}`
	body, degraded := IsolateBody(doc)
	assert.True(t, degraded)
	assert.Equal(t, doc, body)
}

func TestIsolateBody_OnlyTitleMarker(t *testing.T) {
	doc := `\makelettertitle body without closing`
	body, degraded := IsolateBody(doc)
	assert.True(t, degraded)
	assert.Equal(t, doc, body)
}

func TestCheckPlaceholders_Clean(t *testing.T) {
	assert.NoError(t, CheckPlaceholders("Sehr geehrte Damen und Herren", testPlaceholders))
}

func TestCheckPlaceholders_Found(t *testing.T) {
	err := CheckPlaceholders("some Lorem Ipsum remains", testPlaceholders)
	require.Error(t, err)

	var phErr *PlaceholderError
	require.ErrorAs(t, err, &phErr)
	assert.Equal(t, "lorem ipsum", phErr.Phrase)
}

func TestCheckPlaceholders_CaseInsensitive(t *testing.T) {
	err := CheckPlaceholders("SUSPENDISSE POTENTI here", testPlaceholders)
	assert.Error(t, err)
}

func TestCheckPlaceholders_EmptyList(t *testing.T) {
	assert.NoError(t, CheckPlaceholders("Lorem ipsum everywhere", nil))
}

func TestPatchKnownTypos(t *testing.T) {
	doc := `\moderncvsyle{classic}`
	assert.Equal(t, `\moderncvstyle{classic}`, PatchKnownTypos(doc))

	// Correct spelling is left alone.
	correct := `\moderncvstyle{classic}`
	assert.Equal(t, correct, PatchKnownTypos(correct))
}

func TestValidateDocument_Accepted(t *testing.T) {
	doc := `\documentclass{x}\begin{document}\makelettertitle Hello world \makeletterclosing\end{document}`
	accepted, err := ValidateDocument(doc, testPlaceholders)
	require.NoError(t, err)
	assert.Equal(t, doc, accepted)
}

func TestValidateDocument_FencedPlaceholderRejected(t *testing.T) {
	input := "```\n\\documentclass{x}\\begin{document}\\makelettertitle Lorem ipsum \\makeletterclosing\\end{document}\n```"
	_, err := ValidateDocument(input, testPlaceholders)
	require.Error(t, err)

	var phErr *PlaceholderError
	assert.ErrorAs(t, err, &phErr)
}

func TestValidateDocument_MissingEndRejected(t *testing.T) {
	input := `\documentclass{x}\begin{document}\makelettertitle Hello \makeletterclosing`
	_, err := ValidateDocument(input, testPlaceholders)
	require.Error(t, err)

	var structErr *StructureError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, `\end{document}`, structErr.Missing)
}

func TestValidateDocument_DegradedModeChecksWholeDocument(t *testing.T) {
	// No body markers: the placeholder scan covers the entire document.
	input := `\documentclass{x}\begin{document}Lorem ipsum\end{document}`
	_, err := ValidateDocument(input, testPlaceholders)
	assert.Error(t, err)
}

func TestValidateDocument_PatchesTypo(t *testing.T) {
	input := `\documentclass{x}\moderncvsyle{classic}\begin{document}\makelettertitle Hi \makeletterclosing\end{document}`
	accepted, err := ValidateDocument(input, testPlaceholders)
	require.NoError(t, err)
	assert.Contains(t, accepted, `\moderncvstyle{classic}`)
	assert.NotContains(t, accepted, `\moderncvsyle`)
}

func TestValidateDocument_PlaceholderOutsideBodyIgnored(t *testing.T) {
	// Filler left in the preamble (e.g. \name{Lorem}{Ipsum}) is not the
	// letter body's problem when the body itself was replaced.
	input := `\documentclass{x}
\name{Lorem}{Ipsum}
\begin{document}
\makelettertitle Real content here \makeletterclosing
\end{document}`
	_, err := ValidateDocument(input, []string{"lorem"})
	assert.NoError(t, err)
}

func TestErrorMessages(t *testing.T) {
	structErr := &StructureError{Missing: `\end{document}`}
	assert.Contains(t, structErr.Error(), "structure incomplete")

	phErr := &PlaceholderError{Phrase: "lorem ipsum"}
	assert.Contains(t, phErr.Error(), "placeholder text remains")

	// Both are plain errors with no wrapped cause.
	assert.Nil(t, errors.Unwrap(structErr))
}
