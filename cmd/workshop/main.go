// Package main provides the workshop CLI over the resume and pathway-packet content core.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mandy1eigh007/resume-workshop-app/internal/config"
)

var (
	cfgPath          string
	contentDirFlag   string
	keywordsFlag     string
	translationsFlag string
	verbose          bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "workshop",
	Short: "Resume workshop content tools",
	Long: `Workshop builds construction-trade resumes and instructor pathway packets from a
Markdown content library: objective starters, role bullets, the skills canon,
credential badges, artifact templates and the certification table.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		resolved, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		cfg = resolved

		zc := zap.NewProductionConfig()
		if cfg.Verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "Path to JSON config file")
	pf.StringVar(&contentDirFlag, "content-dir", "", "Content library directory (default: embedded library)")
	pf.StringVar(&keywordsFlag, "keywords", "", "Keyword table YAML overriding the library's")
	pf.StringVar(&translationsFlag, "translations", "", "Prior-industry translation CSV")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Debug logging and detailed summaries")
}

// resolveConfig layers the config file, WORKSHOP_* variables and flags, in
// that order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	c := &config.Config{}
	if cfgPath != "" {
		loaded, err := config.LoadConfig(cfgPath)
		if err != nil {
			return nil, err
		}
		c = loaded
	}
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("content-dir") {
		c.ContentDir = contentDirFlag
	}
	if flags.Changed("keywords") {
		c.Keywords = keywordsFlag
	}
	if flags.Changed("translations") {
		c.Translations = translationsFlag
	}
	if flags.Changed("verbose") {
		c.Verbose = verbose
	}

	merged := c.MergeWithDefaults(config.Config{})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
