package main

import (
	"fmt"
	"os"

	"github.com/jonathan/letter-agent/internal/pdfexport"
	"github.com/spf13/cobra"
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Export the current letter draft as a simple PDF",
	Long:  "Renders the current letter draft as an A4 PDF with standard fonts. No LaTeX installation is needed; characters outside Latin-1 are replaced.",
	RunE:  runExportPDF,
}

var (
	exportPDFOut   string
	exportPDFTitle string
)

func init() {
	exportPDFCmd.Flags().StringVarP(&exportPDFOut, "out", "o", "Anschreiben.pdf", "Path for the exported PDF")
	exportPDFCmd.Flags().StringVar(&exportPDFTitle, "title", "Anschreiben", "Title printed above the letter text")

	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	sess, err := openSession(&cfg)
	if err != nil {
		return err
	}
	if !sess.HasLetter() {
		return fmt.Errorf("no letter draft in session %s: run generate first", cfg.Session)
	}

	pdfBytes, err := pdfexport.Render(sess.LetterText, exportPDFTitle)
	if err != nil {
		return fmt.Errorf("PDF export failed: %w", err)
	}

	if err := os.WriteFile(exportPDFOut, pdfBytes, 0644); err != nil {
		return fmt.Errorf("failed to write PDF file %s: %w", exportPDFOut, err)
	}

	fmt.Printf("PDF written: %s\n", exportPDFOut)
	return nil
}
