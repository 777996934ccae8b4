package main

import (
	"fmt"
	"os"

	"github.com/jonathan/letter-agent/internal/assembly"
	"github.com/jonathan/letter-agent/internal/observability"
	"github.com/jonathan/letter-agent/internal/template"
	"github.com/spf13/cobra"
)

var validateLatexCmd = &cobra.Command{
	Use:   "validate-latex",
	Short: "Validate a LaTeX letter document",
	Long:  "Checks a LaTeX letter document for structural completeness and leftover template placeholder text, after stripping Markdown code fences and patching known command typos. Writes the normalized document when --out is given.",
	RunE:  runValidateLatex,
}

var (
	validateLatexInput  string
	validateLatexOutput string
)

func init() {
	validateLatexCmd.Flags().StringVarP(&validateLatexInput, "in", "i", "", "Path to LaTeX file (required)")
	validateLatexCmd.Flags().StringVarP(&validateLatexOutput, "out", "o", "", "Path to write the normalized document (optional)")

	if err := validateLatexCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateLatexCmd)
}

func runValidateLatex(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	content, err := os.ReadFile(validateLatexInput)
	if err != nil {
		return fmt.Errorf("failed to read LaTeX file %s: %w", validateLatexInput, err)
	}

	printer := observability.NewPrinter(os.Stdout)
	doc, err := assembly.ValidateDocument(string(content), template.DefaultPlaceholders)
	if err != nil {
		if cfg.Verbose {
			printer.PrintValidationResult(false, err.Error())
		}
		return fmt.Errorf("document rejected: %w", err)
	}

	if validateLatexOutput != "" {
		if err := os.WriteFile(validateLatexOutput, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write normalized document %s: %w", validateLatexOutput, err)
		}
	}

	fmt.Println("Document accepted")
	return nil
}
