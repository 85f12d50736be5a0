package cli

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/contextguard/contextguard/internal/detect"
	"github.com/contextguard/contextguard/internal/generator"
	"github.com/contextguard/contextguard/internal/templates"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var templatesInstallForce bool

func init() {
	templatesInstallCmd.Flags().BoolVar(&templatesInstallForce, "force", false, "Overwrite existing template files")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesValidateCmd)
	templatesCmd.AddCommand(templatesInstallCmd)
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect and install project templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the project types that have a template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveTemplatesDir()
		if err != nil {
			return err
		}

		available, err := templates.Available(dir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Templates in %s:\n", dir)
		if len(available) == 0 {
			fmt.Fprintln(out, "  (none)")
			return nil
		}

		title := cases.Title(language.English)
		for _, t := range available {
			label := title.String(strings.ReplaceAll(t, "_", " "))
			var notes []string
			if _, known := detect.ParseType(t); !known {
				notes = append(notes, "not detectable")
			}
			if t == templates.FallbackType {
				notes = append(notes, "fallback")
			}
			line := fmt.Sprintf("  %-16s %s", t, label)
			if len(notes) > 0 {
				line += " (" + strings.Join(notes, ", ") + ")"
			}
			fmt.Fprintln(out, line)
		}

		if !slices.Contains(available, templates.FallbackType) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s is missing; unknown project types will fail to generate\n", templates.FallbackFileName())
		}
		return nil
	},
}

var templatesValidateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate template files",
	Long: `Check that template files parse as a YAML mapping and that any keys the
generator interprets have the expected form. Without arguments every template
in the template directory is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := args
		if len(files) == 0 {
			dir, err := resolveTemplatesDir()
			if err != nil {
				return err
			}
			available, err := templates.Available(dir)
			if err != nil {
				return err
			}
			for _, t := range available {
				files = append(files, filepath.Join(dir, templates.FileName(t)))
			}
		}
		if len(files) == 0 {
			return fmt.Errorf("no templates to validate")
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, f := range files {
			result, err := generator.ValidateTemplateFile(f)
			if err != nil {
				failed++
				fmt.Fprintf(out, "FAIL %s\n  %v\n", f, err)
				continue
			}
			if !result.Valid {
				failed++
				fmt.Fprintf(out, "FAIL %s\n", f)
				for _, issue := range result.Issues {
					fmt.Fprintf(out, "  %s\n", issue)
				}
				continue
			}
			fmt.Fprintf(out, "ok   %s\n", f)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d template(s) failed validation", failed, len(files))
		}
		return nil
	},
}

var templatesInstallCmd = &cobra.Command{
	Use:   "install [dir]",
	Short: "Write the built-in default templates",
	Long: `Write the built-in templates for every project type into dir (default: the
resolved template directory). Existing files are kept unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dir string
		if len(args) > 0 {
			dir = args[0]
		} else {
			resolved, err := resolveTemplatesDir()
			if err != nil {
				return err
			}
			dir = resolved
		}

		result, err := templates.Install(dir, templatesInstallForce)
		if err != nil {
			return fmt.Errorf("installing templates: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Installed templates to %s\n", result.Dir)
		for _, name := range result.Written {
			fmt.Fprintf(out, "  wrote   %s\n", name)
		}
		for _, name := range result.Skipped {
			fmt.Fprintf(out, "  skipped %s (exists)\n", name)
		}
		return nil
	},
}
