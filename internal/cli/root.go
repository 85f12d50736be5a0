package cli

import (
	"fmt"

	"github.com/contextguard/contextguard/internal/branding"
	"github.com/contextguard/contextguard/internal/config"
	"github.com/contextguard/contextguard/internal/platform"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// templatesDirFlag overrides the configured template directory.
var templatesDirFlag string

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` detects what kind of project a directory holds, generates a
configuration for it from a type-specific template, and hands off to the
activation script that prepares the project's environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&templatesDirFlag, "templates-dir", "", "Template directory (default: <install dir>/../templates)")
}

// Execute runs the root command with build info injected via ldflags.
// Any error is printed once to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// resolveTemplatesDir applies the flag > config/env > executable-relative order.
func resolveTemplatesDir() (string, error) {
	dir, err := platform.TemplatesDir(templatesDirFlag, config.Get(config.KeyTemplatesDir))
	if err != nil {
		return "", fmt.Errorf("resolving template directory: %w", err)
	}
	return dir, nil
}
