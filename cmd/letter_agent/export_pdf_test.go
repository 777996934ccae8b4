package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/letter-agent/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPDFCommand_WritesPDF(t *testing.T) {
	sessionPath := resetFlags(t)

	sess := session.New()
	sess.LetterText = "Sehr geehrte Damen und Herren,\n\nhiermit bewerbe ich mich.\n\nMit freundlichen Grüßen"
	require.NoError(t, sess.Save(sessionPath))

	exportPDFOut = filepath.Join(t.TempDir(), "Anschreiben.pdf")
	exportPDFTitle = "Anschreiben"

	require.NoError(t, runExportPDF(nil, nil))

	data, err := os.ReadFile(exportPDFOut)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportPDFCommand_NoLetter(t *testing.T) {
	resetFlags(t)
	exportPDFOut = filepath.Join(t.TempDir(), "Anschreiben.pdf")

	err := runExportPDF(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no letter draft")
}
