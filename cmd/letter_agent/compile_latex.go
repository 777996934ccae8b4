package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/letter-agent/internal/capability"
	"github.com/jonathan/letter-agent/internal/latex"
	"github.com/jonathan/letter-agent/internal/observability"
	"github.com/spf13/cobra"
)

var compileLatexCmd = &cobra.Command{
	Use:   "compile-latex",
	Short: "Compile a LaTeX letter document to PDF",
	Long:  "Runs pdflatex on the given document in a temporary working directory and writes the resulting PDF. Compilation is bounded by a two-minute timeout and is never retried.",
	RunE:  runCompileLatex,
}

var (
	compileLatexInput  string
	compileLatexOutput string
)

func init() {
	compileLatexCmd.Flags().StringVarP(&compileLatexInput, "in", "i", "", "Path to LaTeX file (required)")
	compileLatexCmd.Flags().StringVarP(&compileLatexOutput, "out", "o", "", "Path for the PDF (default: input name with .pdf)")

	if err := compileLatexCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(compileLatexCmd)
}

func runCompileLatex(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	caps := capability.Probe(cfg.ResolveAPIKey())
	if err := caps.Require(capability.LaTeX); err != nil {
		return err
	}

	content, err := os.ReadFile(compileLatexInput)
	if err != nil {
		return fmt.Errorf("failed to read LaTeX file %s: %w", compileLatexInput, err)
	}

	output := compileLatexOutput
	if output == "" {
		output = strings.TrimSuffix(compileLatexInput, ".tex") + ".pdf"
	}

	pdfBytes, logOutput, err := latex.Compile(context.Background(), string(content))
	if err != nil {
		if cfg.Verbose {
			observability.NewPrinter(os.Stdout).PrintCompileLog(logOutput)
		}
		return err
	}

	if err := os.WriteFile(output, pdfBytes, 0644); err != nil {
		return fmt.Errorf("failed to write PDF file %s: %w", output, err)
	}

	fmt.Printf("PDF written: %s\n", output)
	return nil
}
