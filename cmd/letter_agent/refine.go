package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/letter-agent/internal/llm"
	"github.com/jonathan/letter-agent/internal/prompts"
	"github.com/spf13/cobra"
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Revise the current letter draft according to a change request",
	Long:  "Sends the current letter together with a change request back to the model and replaces the draft with the revised version. Without --change a generic polish request is used.",
	RunE:  runRefine,
}

var refineChange string

func init() {
	refineCmd.Flags().StringVarP(&refineChange, "change", "m", "", "Change request, e.g. 'kürzer und formeller'")

	rootCmd.AddCommand(refineCmd)
}

func runRefine(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

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

	client, err := newLLMClient(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	system := prompts.System(sess.Prompts)
	user := prompts.Refine(sess.Prompts, sess.LetterText, refineChange, sess.CVText, sess.JobText)

	letter, err := client.Complete(ctx, system, user, llm.ModelTier(cfg.ModelTier))
	if err != nil {
		return fmt.Errorf("letter refinement failed: %w", err)
	}

	sess.LetterText = strings.TrimSpace(letter)
	sess.ChangeRequest = refineChange
	if err := sess.Save(cfg.Session); err != nil {
		return err
	}

	fmt.Println(sess.LetterText)
	return nil
}
