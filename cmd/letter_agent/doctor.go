package main

import (
	"os"

	"github.com/jonathan/letter-agent/internal/capability"
	"github.com/jonathan/letter-agent/internal/observability"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which optional features are available",
	Long:  "Probes the environment for an API key, a pdflatex installation and a Chrome/Chromium binary, and reports what each missing piece disables.",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	caps := capability.Probe(cfg.ResolveAPIKey())
	observability.NewPrinter(os.Stdout).PrintCapabilities(caps)
	return nil
}
