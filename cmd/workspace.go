package cmd

import (
	"fmt"

	"github.com/KaramelBytes/colstat-cli/internal/workspace"
	"github.com/spf13/cobra"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Inspect or modify a workspace",
}

var workspaceShowCmd = &cobra.Command{
	Use:   "show <workspace-name>",
	Short: "Show a workspace and its saved reports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveWorkspaceDirByName(args[0])
		if err != nil {
			return err
		}
		w, err := workspace.LoadWorkspace(dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Workspace: %s\n", w.Name)
		if w.Description != "" {
			fmt.Fprintf(out, "Description: %s\n", w.Description)
		}
		fmt.Fprintf(out, "Location: %s\n", w.RootDir())
		fmt.Fprintf(out, "Reports: %d\n", len(w.Reports))
		for _, r := range w.SortedReports() {
			fmt.Fprintf(out, "- %s  %s (%d column(s), source %s)\n", r.ID, r.Name, r.Columns, r.Source)
			if r.Description != "" {
				fmt.Fprintf(out, "    %s\n", r.Description)
			}
		}
		return nil
	},
}

var workspaceRemoveCmd = &cobra.Command{
	Use:   "remove <workspace-name> <report-id>",
	Short: "Remove a report entry from a workspace",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveWorkspaceDirByName(args[0])
		if err != nil {
			return err
		}
		w, err := workspace.LoadWorkspace(dir)
		if err != nil {
			return err
		}
		if err := w.RemoveReport(args[1]); err != nil {
			return err
		}
		if err := w.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed report %s from workspace '%s'\n", args[1], w.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
	workspaceCmd.AddCommand(workspaceShowCmd)
	workspaceCmd.AddCommand(workspaceRemoveCmd)
}
