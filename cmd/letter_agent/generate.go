package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/letter-agent/internal/llm"
	"github.com/jonathan/letter-agent/internal/prompts"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft a new cover letter from a resume and a job posting",
	Long:  "Drafts a cover letter in plain text from the resume and the job posting. Inputs are cached in the session, so repeated runs only need flags when a source changes.",
	RunE:  runGenerate,
}

var (
	generateCV      string
	generateJob     string
	generateJobURL  string
	generateBrowser bool
)

func init() {
	generateCmd.Flags().StringVar(&generateCV, "cv", "", "Path to resume (PDF or plain text)")
	generateCmd.Flags().StringVar(&generateJob, "job", "", "Path to job posting text file")
	generateCmd.Flags().StringVar(&generateJobURL, "job-url", "", "URL to fetch the job posting from")
	generateCmd.Flags().BoolVar(&generateBrowser, "browser", false, "Render the job URL with a headless browser when plain HTTP yields too little text")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	cfg.CV = firstNonEmpty(generateCV, cfg.CV)
	cfg.Job = firstNonEmpty(generateJob, cfg.Job)
	cfg.JobURL = firstNonEmpty(generateJobURL, cfg.JobURL)
	cfg.UseBrowser = generateBrowser || cfg.UseBrowser
	if err := cfg.Validate(); err != nil {
		return err
	}

	sess, err := openSession(&cfg)
	if err != nil {
		return err
	}
	if err := loadSources(ctx, &cfg, sess); err != nil {
		return err
	}
	if !sess.HasSources() {
		return fmt.Errorf("generate needs both a resume and a job posting: pass --cv and --job (or --job-url), or import them with import-url")
	}

	client, err := newLLMClient(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	system := prompts.System(sess.Prompts)
	user := prompts.Initial(sess.Prompts, sess.CVText, sess.JobText)

	letter, err := client.Complete(ctx, system, user, llm.ModelTier(cfg.ModelTier))
	if err != nil {
		return fmt.Errorf("letter generation failed: %w", err)
	}

	sess.LetterText = strings.TrimSpace(letter)
	if err := sess.Save(cfg.Session); err != nil {
		return err
	}

	fmt.Println(sess.LetterText)
	return nil
}
