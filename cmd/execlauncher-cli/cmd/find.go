package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var findJSON bool

var findCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Find executables by name",
	Long: `Find executables whose filename contains the query (case-insensitive).

Names starting with the query are listed first, then the rest in
alphabetical order. At most 10 results are shown.

Examples:
  execlauncher-cli find
  execlauncher-cli find backup
  execlauncher-cli find --json deploy`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) == 1 {
			query = args[0]
		}
		ctx := context.Background()

		items := GetService().Query(ctx, query)

		if findJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}

		if len(items) == 0 {
			fmt.Println("No executables found")
			return nil
		}

		for _, item := range items {
			fmt.Printf("%-24s %s\n", item.Name, item.Path)
		}
		return nil
	},
}

func init() {
	findCmd.Flags().BoolVar(&findJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(findCmd)
}
