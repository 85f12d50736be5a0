package cli

import (
	"fmt"

	"github.com/contextguard/contextguard/internal/branding"
	"github.com/contextguard/contextguard/internal/generator"
	"github.com/contextguard/contextguard/internal/templates"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <project_type> <output_path>",
	Short: "Generate a config file from a project template",
	Long: `Render <project_type>-project.yaml from the template directory into
<output_path>, stamping generated_at. Unknown project types fall back to
general-project.yaml. An existing output file is overwritten. Arguments after
<output_path> are ignored.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("usage: %s generate <project_type> <output_path>", branding.CLIName())
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		projectType, outputPath := args[0], args[1]

		dir, err := resolveTemplatesDir()
		if err != nil {
			return err
		}

		_, err = runGenerate(cmd, dir, projectType, outputPath)
		return err
	},
}

// runGenerate renders one config and notes on stderr when the fallback
// template was used.
func runGenerate(cmd *cobra.Command, dir, projectType, outputPath string) (*generator.Result, error) {
	g := generator.New(dir)
	g.CLIVersion = buildVersion
	g.Stdout = cmd.OutOrStdout()
	g.Stderr = cmd.ErrOrStderr()

	result, err := g.Generate(projectType, outputPath)
	if err != nil {
		return nil, err
	}

	if result.FellBack && projectType != templates.FallbackType {
		msg := fmt.Sprintf("Note: no template for %q, used %s", projectType, templates.FallbackFileName())
		if available, err := templates.Available(dir); err == nil {
			if s, ok := templates.Suggest(projectType, available); ok {
				msg += fmt.Sprintf(" (did you mean %q?)", s)
			}
		}
		fmt.Fprintln(cmd.ErrOrStderr(), msg)
	}
	return result, nil
}
