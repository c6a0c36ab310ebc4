package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/colstat-cli/internal/workspace"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces and their saved reports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := defaultWorkspacesDir()
		if err != nil {
			return err
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			return fmt.Errorf("read workspaces dir: %w", err)
		}
		out := cmd.OutOrStdout()
		found := 0
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			w, err := workspace.LoadWorkspace(filepath.Join(root, e.Name()))
			if err != nil {
				continue
			}
			found++
			fmt.Fprintf(out, "%s (%d report(s))\n", w.Name, len(w.Reports))
			if w.Description != "" {
				fmt.Fprintf(out, "  %s\n", w.Description)
			}
		}
		if found == 0 {
			fmt.Fprintln(out, "No workspaces found. Create one with: colstat init <name>")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
