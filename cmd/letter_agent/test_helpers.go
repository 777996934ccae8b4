package main

import (
	"path/filepath"
	"testing"
)

// resetFlags clears all package-level flag state and points the session at a
// throwaway file, so tests do not leak state into each other or into the
// working directory.
func resetFlags(t *testing.T) string {
	t.Helper()

	flagConfig = ""
	flagProvider = ""
	flagTier = ""
	flagAPIKey = ""
	flagVerbose = false

	generateCV = ""
	generateJob = ""
	generateJobURL = ""
	generateBrowser = false
	refineChange = ""
	fillTemplatePath = ""
	validateLatexInput = ""
	validateLatexOutput = ""
	compileLatexInput = ""
	compileLatexOutput = ""
	importURLValue = ""
	importURLTarget = "job"
	importURLBrowser = false
	setPromptSystem = ""
	setPromptInitial = ""
	setPromptRefine = ""
	setPromptLatexFill = ""
	setPromptReset = false

	sessionPath := filepath.Join(t.TempDir(), "session.json")
	flagSession = sessionPath
	return sessionPath
}
