package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch <path>",
	Short: "Launch an executable",
	Long: `Launch an executable by absolute path.

The path must pass the same checks used during discovery. The program is
started detached with no arguments and is not waited on.

Examples:
  execlauncher-cli launch ~/.local/bin/backup.sh
  execlauncher-cli launch /opt/tools/bin/deploy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		ctx := context.Background()

		if err := GetService().LaunchChecked(ctx, path); err != nil {
			return err
		}

		fmt.Printf("Launched %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(launchCmd)
}
