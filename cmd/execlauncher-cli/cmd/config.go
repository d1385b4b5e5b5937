package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"execlauncher/internal/application"
	"execlauncher/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change stored preferences",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the preference values in effect after merging flags, environment,
stored preferences and defaults, and the directories that will be searched.

Examples:
  execlauncher-cli config show
  execlauncher-cli config show --dirs /opt/tools/bin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := GetRuntime()
		prefs := rt.Service.Preferences()
		settings := rt.Service.Settings()

		fmt.Printf("database:         %s\n", rt.Store.Path())
		fmt.Printf("%-17s %s\n", domain.PrefDirectories+":", prefs.Directories)
		fmt.Printf("%-17s %v\n", domain.PrefFilterLibraries+":", prefs.FilterLibraries)
		fmt.Println()
		fmt.Printf("Library filter: %t\n", settings.FilterLibraries)
		if len(settings.Roots) == 0 {
			fmt.Println("Search roots:   (none)")
			return nil
		}
		fmt.Println("Search roots:")
		for _, root := range settings.Roots {
			fmt.Printf("  %s\n", root)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a preference",
	Long: `Store a preference in the preference database.

Keys:
  directories        comma-separated directories, ~ expands to your home
  filter_libraries   true/false, exclude lib* and *.so* files

Examples:
  execlauncher-cli config set directories "~/bin,/opt/tools/bin"
  execlauncher-cli config set filter_libraries true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := application.ValidatePreferenceKey(key); err != nil {
			return err
		}

		if err := GetRuntime().Store.Set(key, value); err != nil {
			return err
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a stored preference",
	Long: `Remove a stored preference so the default applies again.

Examples:
  execlauncher-cli config unset directories`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if err := application.ValidatePreferenceKey(key); err != nil {
			return err
		}

		if err := GetRuntime().Store.Delete(key); err != nil {
			return err
		}

		fmt.Printf("Removed %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}
