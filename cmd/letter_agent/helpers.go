package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/letter-agent/internal/capability"
	"github.com/jonathan/letter-agent/internal/config"
	"github.com/jonathan/letter-agent/internal/cv"
	"github.com/jonathan/letter-agent/internal/fetch"
	"github.com/jonathan/letter-agent/internal/llm"
	"github.com/jonathan/letter-agent/internal/session"
	"github.com/jonathan/letter-agent/internal/textutil"
)

// defaultSessionFile is where session state is persisted when no --session
// flag or config value is given.
const defaultSessionFile = "session.json"

// Flags shared by every command.
var (
	flagConfig   string
	flagSession  string
	flagProvider string
	flagTier     string
	flagAPIKey   string
	flagVerbose  bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to JSON config file (optional)")
	pf.StringVarP(&flagSession, "session", "s", "", "Path to session file (default session.json)")
	pf.StringVar(&flagProvider, "provider", "", "LLM provider: openai or gemini")
	pf.StringVar(&flagTier, "model-tier", "", "Model tier: lite, standard or advanced")
	pf.StringVar(&flagAPIKey, "api-key", "", "API key (environment variables are used when unset)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed progress information")
}

// loadSettings merges CLI flags, the optional config file and built-in
// defaults, in that precedence order.
func loadSettings() (config.Config, error) {
	cfg := config.Config{
		Session:   flagSession,
		Provider:  flagProvider,
		ModelTier: flagTier,
		APIKey:    flagAPIKey,
		Verbose:   flagVerbose,
	}

	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Session:   defaultSessionFile,
		Provider:  "openai",
		ModelTier: "standard",
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openSession loads (or creates) the session named in the configuration.
func openSession(cfg *config.Config) (*session.Session, error) {
	return session.Load(cfg.Session)
}

// newLLMClient verifies that generation is available and constructs the
// provider client.
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	apiKey := cfg.ResolveAPIKey()
	caps := capability.Probe(apiKey)
	if err := caps.Require(capability.Generation); err != nil {
		return nil, err
	}

	client, err := llm.NewClient(ctx, llm.ConfigForProvider(llm.Provider(cfg.Provider)), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Using %s model %s\n", cfg.Provider, client.GetModel(llm.ModelTier(cfg.ModelTier)))
	}
	return client, nil
}

// loadSources refreshes the session's CV and job-posting caches from the
// configured inputs. Inputs already cached in the session are kept when no
// fresh source is given.
func loadSources(ctx context.Context, cfg *config.Config, sess *session.Session) error {
	if cfg.CV != "" {
		text, err := cv.ReadText(cfg.CV)
		if err != nil {
			return err
		}
		sess.CVText = textutil.Truncate(text, textutil.DefaultMaxChars)
	}

	switch {
	case cfg.JobURL != "":
		var text string
		var err error
		if cfg.UseBrowser {
			text, err = fetch.ImportTextWithFallback(ctx, cfg.JobURL, nil, cfg.Verbose)
		} else {
			text, err = fetch.ImportText(ctx, cfg.JobURL, nil)
		}
		if err != nil {
			return err
		}
		sess.JobText = textutil.Truncate(text, textutil.DefaultMaxChars)
	case cfg.Job != "":
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job posting file %s: %w", cfg.Job, err)
		}
		sess.JobText = textutil.Truncate(string(data), textutil.DefaultMaxChars)
	}

	return nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
