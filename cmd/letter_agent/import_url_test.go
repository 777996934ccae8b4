package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/letter-agent/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportURLCommand_FillsJobText(t *testing.T) {
	sessionPath := resetFlags(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><script>var x;</script></head><body>
			<nav>Menu</nav>
			<p>Wir suchen eine Softwareentwicklerin für unser Team in Berlin.</p>
			<footer>Impressum</footer>
		</body></html>`))
	}))
	defer server.Close()

	importURLValue = server.URL
	importURLTarget = "job"

	require.NoError(t, runImportURL(nil, nil))

	sess, err := session.Load(sessionPath)
	require.NoError(t, err)
	assert.Contains(t, sess.JobText, "Softwareentwicklerin")
	assert.NotContains(t, sess.JobText, "Impressum")
	assert.NotContains(t, sess.JobText, "var x")
}

func TestImportURLCommand_UnknownTarget(t *testing.T) {
	resetFlags(t)
	importURLValue = "https://example.com"
	importURLTarget = "resume"

	err := runImportURL(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown import target")
}

func TestImportURLCommand_FetchFailure(t *testing.T) {
	resetFlags(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	importURLValue = server.URL
	importURLTarget = "job"

	assert.Error(t, runImportURL(nil, nil))
}
