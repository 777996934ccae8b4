package main

import (
	"context"
	"fmt"

	"github.com/jonathan/letter-agent/internal/fetch"
	"github.com/jonathan/letter-agent/internal/textutil"
	"github.com/spf13/cobra"
)

var importURLCmd = &cobra.Command{
	Use:   "import-url",
	Short: "Import text from a web page into the session",
	Long:  "Fetches a URL, strips boilerplate markup and stores the readable text in the session as the job posting, resume or letter draft. Use --browser for pages that only render with JavaScript.",
	RunE:  runImportURL,
}

var (
	importURLValue   string
	importURLTarget  string
	importURLBrowser bool
)

func init() {
	importURLCmd.Flags().StringVarP(&importURLValue, "url", "u", "", "URL to fetch (required)")
	importURLCmd.Flags().StringVar(&importURLTarget, "target", "job", "Session field to fill: job, cv or letter")
	importURLCmd.Flags().BoolVar(&importURLBrowser, "browser", false, "Render the page with a headless browser when plain HTTP yields too little text")

	if err := importURLCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(importURLCmd)
}

func runImportURL(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	switch importURLTarget {
	case "job", "cv", "letter":
	default:
		return fmt.Errorf("unknown import target %q (expected job, cv or letter)", importURLTarget)
	}

	sess, err := openSession(&cfg)
	if err != nil {
		return err
	}

	var text string
	if importURLBrowser {
		text, err = fetch.ImportTextWithFallback(ctx, importURLValue, nil, cfg.Verbose)
	} else {
		text, err = fetch.ImportText(ctx, importURLValue, nil)
	}
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("no readable text found at %s (try --browser for JavaScript-only pages)", importURLValue)
	}

	switch importURLTarget {
	case "job":
		sess.JobText = textutil.Truncate(text, textutil.DefaultMaxChars)
	case "cv":
		sess.CVText = textutil.Truncate(text, textutil.DefaultMaxChars)
	case "letter":
		sess.LetterText = text
	}

	if err := sess.Save(cfg.Session); err != nil {
		return err
	}

	fmt.Printf("Imported %d characters into %s\n", len(text), importURLTarget)
	return nil
}
