package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	cfgpkg "github.com/KaramelBytes/colstat-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set ColStat configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "delimiter: %s\n", cfg.Delimiter)
		fmt.Fprintf(out, "precision: %d\n", cfg.Precision)
		if cfg.WorkspacesDir != "" {
			fmt.Fprintf(out, "workspaces_dir: %s\n", cfg.WorkspacesDir)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value and persist it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			cfg = &cfgpkg.Global{Delimiter: ",", Precision: 4}
		}
		key, val := args[0], args[1]
		switch key {
		case "delimiter":
			if _, err := parseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "precision":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("precision must be a positive integer, got %q", val)
			}
			cfg.Precision = n
		case "workspaces_dir":
			cfg.WorkspacesDir = val
		default:
			return fmt.Errorf("unknown config key: %s (use delimiter|precision|workspaces_dir)", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", key, val)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home dir: %w", err)
			}
			path = filepath.Join(home, ".colstat", "config.yaml")
		}
		// Refuse to overwrite an existing config.
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat config file: %w", err)
		}
		def := &cfgpkg.Global{Delimiter: ",", Precision: 4}
		if err := cfgpkg.Save(def, cfgFile); err != nil {
			return err
		}
		cfg = def
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Config initialized: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
}
