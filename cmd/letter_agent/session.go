package main

import (
	"fmt"
	"os"

	"github.com/jonathan/letter-agent/internal/observability"
	"github.com/jonathan/letter-agent/internal/session"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or reset the session state",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current session state",
	RunE:  runSessionShow,
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the session and start fresh",
	RunE:  runSessionReset,
}

func init() {
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionResetCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	sess, err := openSession(&cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Session:        %s (%s)\n", cfg.Session, sess.ID)
	fmt.Printf("Resume text:    %d characters\n", len(sess.CVText))
	fmt.Printf("Job posting:    %d characters\n", len(sess.JobText))
	fmt.Printf("Letter draft:   %d characters\n", len(sess.LetterText))
	if sess.ChangeRequest != "" {
		fmt.Printf("Last change:    %s\n", sess.ChangeRequest)
	}
	if sess.LaTeXTemplate != "" {
		fmt.Printf("Template:       custom (%d characters)\n", len(sess.LaTeXTemplate))
	}
	if sess.Prompts != nil {
		fmt.Println("Prompts:        overridden")
	}

	if sess.HasLetter() {
		observability.NewPrinter(os.Stdout).PrintLetterPreview(sess.LetterText)
	}
	return nil
}

func runSessionReset(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	if err := os.Remove(cfg.Session); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file %s: %w", cfg.Session, err)
	}

	sess := session.New()
	if err := sess.Save(cfg.Session); err != nil {
		return err
	}

	fmt.Printf("Session reset: %s (%s)\n", cfg.Session, sess.ID)
	return nil
}
