package main

import (
	"fmt"

	"github.com/jonathan/letter-agent/internal/prompts"
	"github.com/spf13/cobra"
)

var setPromptCmd = &cobra.Command{
	Use:   "set-prompt",
	Short: "Override the built-in prompts for this session",
	Long:  "Stores custom prompt texts in the session. Overridden prompts are used by generate, refine and fill-template until reset. User prompt templates may reference {{.CV}}, {{.Job}}, {{.Letter}}, {{.ChangeRequest}}, {{.Template}} and {{.HeaderHint}}.",
	RunE:  runSetPrompt,
}

var (
	setPromptSystem    string
	setPromptInitial   string
	setPromptRefine    string
	setPromptLatexFill string
	setPromptReset     bool
)

func init() {
	setPromptCmd.Flags().StringVar(&setPromptSystem, "system", "", "System prompt for letter drafting")
	setPromptCmd.Flags().StringVar(&setPromptInitial, "initial", "", "User prompt template for the first draft")
	setPromptCmd.Flags().StringVar(&setPromptRefine, "refine", "", "User prompt template for revisions")
	setPromptCmd.Flags().StringVar(&setPromptLatexFill, "latex-fill", "", "User prompt template for the template fill")
	setPromptCmd.Flags().BoolVar(&setPromptReset, "reset", false, "Drop all overrides and return to the built-in prompts")

	rootCmd.AddCommand(setPromptCmd)
}

func runSetPrompt(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	sess, err := openSession(&cfg)
	if err != nil {
		return err
	}

	if setPromptReset {
		sess.Prompts = nil
		if err := sess.Save(cfg.Session); err != nil {
			return err
		}
		fmt.Println("Prompt overrides cleared")
		return nil
	}

	if setPromptSystem == "" && setPromptInitial == "" && setPromptRefine == "" && setPromptLatexFill == "" {
		return fmt.Errorf("nothing to set: pass --system, --initial, --refine, --latex-fill or --reset")
	}

	if sess.Prompts == nil {
		sess.Prompts = &prompts.Overrides{}
	}
	if setPromptSystem != "" {
		sess.Prompts.System = setPromptSystem
	}
	if setPromptInitial != "" {
		sess.Prompts.Initial = setPromptInitial
	}
	if setPromptRefine != "" {
		sess.Prompts.Refine = setPromptRefine
	}
	if setPromptLatexFill != "" {
		sess.Prompts.LatexFill = setPromptLatexFill
	}

	if err := sess.Save(cfg.Session); err != nil {
		return err
	}

	fmt.Println("Prompt overrides saved")
	return nil
}
