package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cajias/lint-configs/internal/engine"
)

var (
	copyTarget string
	copyMerge  bool
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the linting configuration to your project",
	Long: `Copy the bundled linting configuration into a project directory.

If the directory has no pyproject.toml the configuration is written there.
If one exists, a pyproject-linters.toml is written next to it instead, unless
--merge is given, in which case the configuration is appended to the existing
pyproject.toml below a separator block.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := copyTarget
		if target == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			target = cwd
		}

		result, err := newEngine().Copy(&engine.CopyRequest{
			TargetDir: target,
			Merge:     copyMerge,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		printCopyStatus(result)
		printNextSteps(result)
		return nil
	},
}

func init() {
	copyCmd.Flags().StringVarP(&copyTarget, "target", "t", "", "Target directory (default: current directory)")
	copyCmd.Flags().BoolVar(&copyMerge, "merge", false, "Append to an existing pyproject.toml")
}

func printCopyStatus(result *engine.CopyResult) {
	switch {
	case result.Merged:
		PrintSuccess(fmt.Sprintf("Configuration appended to %s", result.Path))
		fmt.Println()
		PrintWarning("Please review the merged file and:")
		PrintInfo("   - Remove any duplicate [tool.*] sections")
		PrintInfo("   - Merge conflicting settings as needed")
	case result.Sidecar:
		PrintWarning(fmt.Sprintf("%s already exists. Creating %s instead.", engine.CanonicalName, engine.SidecarName))
		PrintInfo(fmt.Sprintf("   To merge with the existing %s, use: lint-configs copy --merge", engine.CanonicalName))
		PrintSuccess(fmt.Sprintf("Configuration copied to %s", result.Path))
	default:
		PrintSuccess(fmt.Sprintf("Configuration copied to %s", result.Path))
	}
}

func printNextSteps(result *engine.CopyResult) {
	steps := []string{
		"Review and customize the config for your project",
		"Update [tool.ruff.lint.isort] known-first-party with your package name",
		"Update [tool.coverage.run] source with your package name",
	}
	if result.Sidecar {
		steps = append(steps,
			fmt.Sprintf("Either rename to %s or merge into the existing %s", engine.CanonicalName, engine.CanonicalName),
			"Run: ruff check . --fix",
		)
	} else {
		steps = append(steps,
			"Run: ruff check . --fix",
			"Run: mypy .",
		)
	}

	PrintSection("Next Steps")
	PrintNumberedList(steps, 1)
}
