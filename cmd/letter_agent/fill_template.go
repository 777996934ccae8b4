package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/letter-agent/internal/assembly"
	"github.com/jonathan/letter-agent/internal/latex"
	"github.com/jonathan/letter-agent/internal/llm"
	"github.com/jonathan/letter-agent/internal/observability"
	"github.com/jonathan/letter-agent/internal/prompts"
	"github.com/jonathan/letter-agent/internal/template"
	"github.com/spf13/cobra"
)

var fillTemplateCmd = &cobra.Command{
	Use:   "fill-template",
	Short: "Fill the moderncv LaTeX template with the current letter",
	Long:  "Asks the model to splice the current letter, resume data and optional header fields into the moderncv template, validates the returned document, writes the .tex file and compiles it to PDF when pdflatex is available.",
	RunE:  runFillTemplate,
}

var (
	fillTemplatePath  string
	fillOutTex        string
	fillOutPDF        string
	fillSkipPDF       bool
	fillSenderName    string
	fillSenderAddress string
	fillSenderEmail   string
	fillSenderPhone   string
	fillRecipient     string
	fillOpening       string
)

func init() {
	fillTemplateCmd.Flags().StringVarP(&fillTemplatePath, "template", "t", "", "Path to a custom LaTeX letter template (default: built-in moderncv)")
	fillTemplateCmd.Flags().StringVar(&fillOutTex, "out-tex", "Anschreiben_moderncv.tex", "Path for the filled LaTeX document")
	fillTemplateCmd.Flags().StringVar(&fillOutPDF, "out-pdf", "Anschreiben_moderncv.pdf", "Path for the compiled PDF")
	fillTemplateCmd.Flags().BoolVar(&fillSkipPDF, "skip-pdf", false, "Write the .tex file only, do not compile")
	fillTemplateCmd.Flags().StringVar(&fillSenderName, "sender-name", "", "Sender name for the letter header")
	fillTemplateCmd.Flags().StringVar(&fillSenderAddress, "sender-address", "", "Sender address for the letter header")
	fillTemplateCmd.Flags().StringVar(&fillSenderEmail, "sender-email", "", "Sender email for the letter header")
	fillTemplateCmd.Flags().StringVar(&fillSenderPhone, "sender-phone", "", "Sender phone number for the letter header")
	fillTemplateCmd.Flags().StringVar(&fillRecipient, "recipient", "", "Recipient (company and address) for the letter header")
	fillTemplateCmd.Flags().StringVar(&fillOpening, "opening", "", "Salutation line, e.g. 'Sehr geehrte Frau Schmidt,'")

	rootCmd.AddCommand(fillTemplateCmd)
}

func runFillTemplate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	cfg.Template = firstNonEmpty(fillTemplatePath, cfg.Template)
	if err := cfg.Validate(); err != nil {
		return err
	}

	sess, err := openSession(&cfg)
	if err != nil {
		return err
	}
	if !sess.HasLetter() {
		return fmt.Errorf("no letter draft in session %s: run generate first", cfg.Session)
	}

	// Flag > previously uploaded template in the session > built-in default.
	var tmpl string
	if cfg.Template != "" {
		tmpl, err = template.Load(cfg.Template)
		if err != nil {
			return err
		}
		sess.LaTeXTemplate = tmpl
	} else if sess.LaTeXTemplate != "" {
		tmpl = sess.LaTeXTemplate
	} else {
		tmpl = template.DefaultLaTeX()
	}

	header := &template.HeaderFields{
		SenderName:    fillSenderName,
		SenderAddress: fillSenderAddress,
		SenderEmail:   fillSenderEmail,
		SenderPhone:   fillSenderPhone,
		Recipient:     fillRecipient,
		Opening:       fillOpening,
	}
	if err := header.Validate(); err != nil {
		return err
	}

	client, err := newLLMClient(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	// The fill prompt carries its own instructions, so no system prompt is
	// sent alongside it.
	user := prompts.LatexFill(sess.Prompts, sess.LetterText, sess.CVText, tmpl, sess.JobText, header.PromptHint())

	raw, err := client.Complete(ctx, "", user, llm.ModelTier(cfg.ModelTier))
	if err != nil {
		return fmt.Errorf("template fill failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	doc, err := assembly.ValidateDocument(raw, template.DefaultPlaceholders)
	if err != nil {
		if cfg.Verbose {
			printer.PrintValidationResult(false, err.Error())
		}
		return fmt.Errorf("generated document rejected: %w", err)
	}
	if cfg.Verbose {
		printer.PrintValidationResult(true, "document structure complete, no placeholder text")
	}

	if err := os.WriteFile(fillOutTex, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write LaTeX file %s: %w", fillOutTex, err)
	}
	fmt.Printf("LaTeX document written: %s\n", fillOutTex)

	if err := sess.Save(cfg.Session); err != nil {
		return err
	}

	if fillSkipPDF {
		return nil
	}
	if !latex.Available() {
		fmt.Fprintf(os.Stderr, "pdflatex not found, skipping PDF compilation. Compile %s locally or install TeX Live with moderncv.\n", fillOutTex)
		return nil
	}

	pdfBytes, logOutput, err := latex.Compile(ctx, doc)
	if err != nil {
		if cfg.Verbose {
			printer.PrintCompileLog(logOutput)
		}
		return fmt.Errorf("PDF compilation failed: %w", err)
	}

	if err := os.WriteFile(fillOutPDF, pdfBytes, 0644); err != nil {
		return fmt.Errorf("failed to write PDF file %s: %w", fillOutPDF, err)
	}
	fmt.Printf("PDF written: %s\n", fillOutPDF)
	return nil
}
