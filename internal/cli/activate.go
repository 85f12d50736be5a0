package cli

import (
	"fmt"

	"github.com/contextguard/contextguard/internal/activate"
	"github.com/contextguard/contextguard/internal/branding"
	"github.com/contextguard/contextguard/internal/config"
	"github.com/contextguard/contextguard/internal/platform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(activateCmd)
}

var activateCmd = &cobra.Command{
	Use:   "activate [args...]",
	Short: "Run the activation script with the given arguments",
	Long: `Run the activation script that ships next to this binary, forwarding every
argument verbatim. The script's standard streams are connected to this
process. Any failure of the script exits with status 1.

The script location can be overridden with the activate_script config key or
the ` + branding.EnvVar(config.KeyActivateScript) + ` environment variable.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		scriptPath, err := platform.SiblingPath(branding.ActivateScript(), config.Get(config.KeyActivateScript))
		if err != nil {
			return fmt.Errorf("resolving activation script: %w", err)
		}

		a := activate.New(scriptPath)
		a.Stdin = cmd.InOrStdin()
		a.Stdout = cmd.OutOrStdout()
		a.Stderr = cmd.ErrOrStderr()
		return a.Run(cmd.Context(), args)
	},
}
