// Package latex invokes the external pdflatex binary to compile an accepted
// letter document.
package latex

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompileTimeout bounds a single pdflatex run. moderncv documents compile in
// seconds; the generous ceiling covers cold font-cache builds.
const CompileTimeout = 2 * time.Minute

// texFileName is the fixed name the source is written under inside the
// per-invocation working directory.
const texFileName = "main.tex"

// pdflatexBin is the compiler binary name. Overridable in tests.
var pdflatexBin = "pdflatex"

// CompilationError represents a pdflatex failure: missing binary, non-zero
// exit, timeout, or a run that produced no output file.
type CompilationError struct {
	Message   string
	LogOutput string // combined stdout+stderr of the compiler run
	Cause     error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("LaTeX compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("LaTeX compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}

// Available reports whether the pdflatex binary is on PATH.
func Available() bool {
	_, err := exec.LookPath(pdflatexBin)
	return err == nil
}

// Compile writes texSource into a fresh temporary working directory, runs
// pdflatex non-interactively with a bounded timeout, and returns the
// resulting PDF bytes together with the compiler log.
//
// Success means exit code zero AND the output file exists; every other
// outcome is a *CompilationError carrying the captured log. The working
// directory is removed on return regardless of how the compiler terminated.
// No retry is attempted.
func Compile(ctx context.Context, texSource string) (pdfBytes []byte, logOutput string, err error) {
	if _, err := exec.LookPath(pdflatexBin); err != nil {
		return nil, "", &CompilationError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution with the moderncv class (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	workDir, err := os.MkdirTemp("", "letter-latex-*")
	if err != nil {
		return nil, "", &CompilationError{
			Message: "failed to create temporary working directory",
			Cause:   err,
		}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, texFileName)
	if err := os.WriteFile(texPath, []byte(texSource), 0644); err != nil {
		return nil, "", &CompilationError{
			Message: fmt.Sprintf("failed to write LaTeX source to working directory: %s", workDir),
			Cause:   err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, CompileTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, pdflatexBin, "-interaction=nonstopmode", "-halt-on-error", texFileName)
	cmd.Dir = workDir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	logOutput = stdout.String() + stderr.String()

	if runErr != nil {
		msg := "pdflatex exited with an error"
		if ctx.Err() == context.DeadlineExceeded {
			msg = fmt.Sprintf("pdflatex timed out after %s", CompileTimeout)
		}
		return nil, logOutput, &CompilationError{
			Message:   msg,
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	pdfPath := filepath.Join(workDir, strings.TrimSuffix(texFileName, ".tex")+".pdf")
	pdfBytes, readErr := os.ReadFile(pdfPath)
	if readErr != nil {
		// Exit code zero but no output file is still a failure.
		return nil, logOutput, &CompilationError{
			Message:   "pdflatex exited cleanly but produced no PDF",
			LogOutput: logOutput,
			Cause:     readErr,
		}
	}

	return pdfBytes, logOutput, nil
}
