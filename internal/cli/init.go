package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/contextguard/contextguard/internal/branding"
	"github.com/contextguard/contextguard/internal/detect"
	"github.com/spf13/cobra"
)

var (
	initOutput string
	initForce  bool
)

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Config file to write (default: <path>/"+branding.ProjectConfigFile()+")")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Detect the project type and generate its config",
	Long: `Detect the project type of a directory (default: current directory) and
generate the matching config into it. Unlike "generate", an existing config
file is kept unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		return runProjectInit(cmd, path)
	},
}

func runProjectInit(cmd *cobra.Command, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("project directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project path %s is not a directory", path)
	}

	outputPath := initOutput
	if outputPath == "" {
		outputPath = filepath.Join(path, branding.ProjectConfigFile())
	}

	if !initForce {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("project already initialized: %s exists (use --force to overwrite)", outputPath)
		}
	}

	dir, err := resolveTemplatesDir()
	if err != nil {
		return err
	}

	d := detect.Detect(path)
	fmt.Fprintf(cmd.OutOrStdout(), "Detected project type: %s\n", d.Type)

	if _, err := runGenerate(cmd, dir, d.Type.String(), outputPath); err != nil {
		return fmt.Errorf("initializing project: %w", err)
	}
	return nil
}
