package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCat bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the bundled configuration resource",
	Long: `Show the bundled configuration resource name and version.

With --cat, print the full configuration content instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newEngine().Show()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if showCat {
			fmt.Fprint(cmd.OutOrStdout(), result.Content)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (bundled, version %s)\n", result.Name, result.Version)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showCat, "cat", false, "Print the configuration content")
}
