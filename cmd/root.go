package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/colstat-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "colstat [file]",
	Short: "ColStat CLI: per-column descriptive statistics for delimited files",
	Long: `ColStat reads a delimited text file (first line = column headers) and
reports mean, median, standard deviation, min and max for every numeric
column. Non-numeric fields are skipped, not treated as errors.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		path := args[0]
		if _, err := os.Stat(path); os.IsNotExist(err) {
			// Reference behavior: report and terminate normally.
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ File not found: %s\n", path)
			return nil
		}
		return runAnalyze(cmd.OutOrStdout(), path, defaultAnalyzeParams())
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.colstat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults for commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	if debug {
		fmt.Fprintf(os.Stderr, "config: delimiter=%q precision=%d workspaces_dir=%q\n",
			cfg.Delimiter, cfg.Precision, cfg.WorkspacesDir)
	}
}
