package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/contextguard/contextguard/internal/detect"
	"github.com/spf13/cobra"
)

var (
	detectExplain bool
	detectJSON    bool
)

func init() {
	detectCmd.Flags().BoolVar(&detectExplain, "explain", false, "Show which markers decided the type")
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Print the detection result as JSON")
	// An argument that parses as an unknown flag names no directory we can
	// list, so it reports general like any other unreadable path.
	detectCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintln(cmd.OutOrStdout(), detect.TypeGeneral)
		return nil
	})
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Print the project type of a directory",
	Long: `Inspect the immediate entries of a directory (default: current directory) and
print its project type: development, data_analysis, research, automation, or
general. A path that does not exist is reported as general. To inspect a
directory whose name begins with a dash, pass it after "--".`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		d := detect.Detect(path)
		out := cmd.OutOrStdout()

		switch {
		case detectJSON:
			data, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling detection: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case detectExplain:
			fmt.Fprintln(out, d.Type)
			if len(d.Markers) > 0 {
				fmt.Fprintf(out, "  %s: %s\n", d.Reason, strings.Join(d.Markers, ", "))
			} else {
				fmt.Fprintf(out, "  %s\n", d.Reason)
			}
		default:
			fmt.Fprintln(out, d.Type)
		}
		return nil
	},
}
