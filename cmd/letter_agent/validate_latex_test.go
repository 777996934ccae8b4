package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLetterDoc = `\documentclass[11pt,a4paper,sans]{moderncv}
\moderncvstyle{classic}
\begin{document}
\makelettertitle
Sehr geehrte Damen und Herren, hiermit bewerbe ich mich.
\makeletterclosing
\end{document}`

func TestValidateLatexCommand_Accepts(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()

	texFile := filepath.Join(tmpDir, "letter.tex")
	require.NoError(t, os.WriteFile(texFile, []byte(validLetterDoc), 0644))

	validateLatexInput = texFile
	validateLatexOutput = filepath.Join(tmpDir, "normalized.tex")

	require.NoError(t, runValidateLatex(nil, nil))

	normalized, err := os.ReadFile(validateLatexOutput)
	require.NoError(t, err)
	assert.Contains(t, string(normalized), `\makelettertitle`)
}

func TestValidateLatexCommand_StripsFencesAndPatchesTypo(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()

	fenced := "```latex\n" + `\documentclass{moderncv}
\moderncvsyle{classic}
\begin{document}
\makelettertitle
Text.
\makeletterclosing
\end{document}` + "\n```"

	texFile := filepath.Join(tmpDir, "letter.tex")
	require.NoError(t, os.WriteFile(texFile, []byte(fenced), 0644))

	validateLatexInput = texFile
	validateLatexOutput = filepath.Join(tmpDir, "normalized.tex")

	require.NoError(t, runValidateLatex(nil, nil))

	normalized, err := os.ReadFile(validateLatexOutput)
	require.NoError(t, err)
	assert.NotContains(t, string(normalized), "```")
	assert.Contains(t, string(normalized), `\moderncvstyle`)
	assert.NotContains(t, string(normalized), `\moderncvsyle{`)
}

func TestValidateLatexCommand_RejectsIncompleteDocument(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()

	texFile := filepath.Join(tmpDir, "letter.tex")
	require.NoError(t, os.WriteFile(texFile, []byte(`\documentclass{moderncv}`), 0644))

	validateLatexInput = texFile

	err := runValidateLatex(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestValidateLatexCommand_RejectsPlaceholderBody(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()

	doc := `\documentclass{moderncv}
\begin{document}
\makelettertitle
Lorem ipsum dolor sit amet.
\makeletterclosing
\end{document}`

	texFile := filepath.Join(tmpDir, "letter.tex")
	require.NoError(t, os.WriteFile(texFile, []byte(doc), 0644))

	validateLatexInput = texFile

	err := runValidateLatex(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "placeholder")
}

func TestValidateLatexCommand_MissingInputFile(t *testing.T) {
	resetFlags(t)
	validateLatexInput = "/nonexistent/letter.tex"

	assert.Error(t, runValidateLatex(nil, nil))
}
