// Package main provides the entry point for the letter_agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "letter_agent",
	Short: "AI cover letter generator",
	Long:  "letter_agent drafts German cover letters from a resume and a job posting, refines them on request, and exports them as plain PDF or compiled moderncv LaTeX.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
