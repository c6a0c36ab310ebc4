package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

var (
	bDelimiter   string
	bPrecision   int
	bWorkspace   string
	bDescription string
	bQuiet       bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Analyze multiple delimited files, with optional workspace attachment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		seen := map[string]struct{}{}
		for _, arg := range args {
			matches, err := filepath.Glob(arg)
			if err != nil {
				return fmt.Errorf("bad pattern %q: %w", arg, err)
			}
			if len(matches) == 0 {
				// treat as literal path if exists
				if _, err := os.Stat(arg); err == nil {
					matches = []string{arg}
				}
			}
			for _, m := range matches {
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				files = append(files, m)
			}
		}
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		sort.Strings(files)

		p := defaultAnalyzeParams()
		if d, err := parseDelimiter(bDelimiter); err != nil {
			return err
		} else if d != 0 {
			p.delimiter = d
		}
		if bPrecision > 0 {
			p.precision = bPrecision
		}
		p.workspace = bWorkspace
		p.desc = bDescription

		out := cmd.OutOrStdout()
		for i, f := range files {
			if !bQuiet {
				fmt.Fprintf(out, "(%d/%d) %s\n", i+1, len(files), f)
			}
			if err := runAnalyze(out, f, p); err != nil {
				return fmt.Errorf("analyze %s: %w", f, err)
			}
		}
		if !bQuiet {
			fmt.Fprintf(out, "✓ Analyzed %d file(s)\n", len(files))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&bWorkspace, "workspace", "w", "", "workspace name to attach reports to")
	batchCmd.Flags().StringVar(&bDescription, "desc", "", "description when attaching to a workspace")
	batchCmd.Flags().StringVar(&bDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab'")
	batchCmd.Flags().IntVar(&bPrecision, "precision", 0, "decimal digits in reported values (default 4)")
	batchCmd.Flags().BoolVarP(&bQuiet, "quiet", "q", false, "suppress progress output")
}
