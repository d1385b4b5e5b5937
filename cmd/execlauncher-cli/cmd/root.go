package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"execlauncher/internal/application/pipeline"
	"execlauncher/internal/bootstrap"
	"execlauncher/internal/config"
)

var (
	dirsFlag   string
	filterFlag string
	dbPath     string
	debug      bool
	current    *bootstrap.Runtime
)

var rootCmd = &cobra.Command{
	Use:   "execlauncher-cli",
	Short: "Find and launch executables from configured directories",
	Long: `execlauncher-cli searches the configured directories for shell scripts
and ELF binaries the current user may execute.

It provides commands to find executables by name, launch one, and inspect
or change the stored preferences.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		rt, err := bootstrap.Open(context.Background(), bootstrap.Options{
			Prefix:    "execlauncher",
			LogOutput: os.Stderr,
			Debug:     debug,
			DBPath:    dbPath,
			Overrides: config.Overrides{
				Directories:     dirsFlag,
				FilterLibraries: filterFlag,
			},
		})
		if err != nil {
			return err
		}
		current = rt
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current == nil {
			return nil
		}
		return current.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dirsFlag, "dirs", "d", "", "comma-separated directories to search")
	rootCmd.PersistentFlags().StringVar(&filterFlag, "filter-libs", "", "exclude library-like files (true/false)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the preference database")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// GetService returns the configured pipeline
func GetService() *pipeline.Service {
	return current.Service
}

// GetRuntime returns the initialized runtime
func GetRuntime() *bootstrap.Runtime {
	return current
}
