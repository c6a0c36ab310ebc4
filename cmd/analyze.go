package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/colstat-cli/internal/dataset"
	"github.com/KaramelBytes/colstat-cli/internal/report"
	"github.com/KaramelBytes/colstat-cli/internal/stats"
	"github.com/KaramelBytes/colstat-cli/internal/utils"
	"github.com/KaramelBytes/colstat-cli/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	anaWorkspace   string
	anaOutputPath  string
	anaDescription string
	anaDelimiter   string
	anaPrecision   int
)

// analyzeParams carries the resolved per-run settings for one analysis.
type analyzeParams struct {
	delimiter  rune
	precision  int
	outputPath string
	workspace  string
	desc       string
}

func defaultAnalyzeParams() analyzeParams {
	p := analyzeParams{delimiter: ',', precision: report.DefaultPrecision}
	if cfg != nil {
		if d, err := parseDelimiter(cfg.Delimiter); err == nil && d != 0 {
			p.delimiter = d
		}
		if cfg.Precision > 0 {
			p.precision = cfg.Precision
		}
	}
	return p
}

// parseDelimiter maps a flag/config spelling to a delimiter rune.
// Empty input returns 0 (meaning: keep the current default).
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %s (use ','|';'|'tab')", s)
	}
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a delimited file and report per-column statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := defaultAnalyzeParams()
		if d, err := parseDelimiter(anaDelimiter); err != nil {
			return err
		} else if d != 0 {
			p.delimiter = d
		}
		if anaPrecision > 0 {
			p.precision = anaPrecision
		}
		p.outputPath = anaOutputPath
		p.workspace = anaWorkspace
		p.desc = anaDescription
		return runAnalyze(cmd.OutOrStdout(), args[0], p)
	},
}

// runAnalyze loads a file, computes statistics and delivers the rendered
// report to stdout, an output file, a workspace, or any combination.
func runAnalyze(out io.Writer, path string, p analyzeParams) error {
	ds := dataset.New(dataset.Options{Delimiter: p.delimiter})
	if err := ds.Load(path); err != nil {
		return err
	}
	text := report.RenderPrecision(ds.Headers, stats.ComputeAll(ds.Columns), p.precision)

	written := false
	if p.outputPath != "" {
		if err := os.WriteFile(p.outputPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(out, "✓ Wrote report to %s\n", p.outputPath)
		written = true
	}
	if p.workspace != "" {
		name, err := attachToWorkspace(p.workspace, path, text, p.desc, len(ds.Headers))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Added report to workspace '%s' as %s\n", p.workspace, name)
		written = true
	}
	if !written {
		fmt.Fprint(out, text)
	}
	return nil
}

// attachToWorkspace writes the report under the workspace's reports dir and
// records it in workspace.json. Returns the report file basename.
func attachToWorkspace(wsName, source, text, desc string, columns int) (string, error) {
	wsDir, err := resolveWorkspaceDirByName(wsName)
	if err != nil {
		return "", err
	}
	w, err := workspace.LoadWorkspace(wsDir)
	if err != nil {
		return "", err
	}
	outDir := filepath.Join(w.RootDir(), "reports")
	if err := utils.EnsureDir(outDir); err != nil {
		return "", err
	}
	base := filepath.Base(source)
	safe := strings.TrimSuffix(base, filepath.Ext(base))
	outFile := reportOutPath(outDir, safe)
	if err := os.WriteFile(outFile, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write workspace report: %w", err)
	}
	if desc == "" {
		desc = "Auto-generated column statistics report"
	}
	if _, err := w.AddReport(source, outFile, desc, columns); err != nil {
		return "", err
	}
	if err := w.Save(); err != nil {
		return "", err
	}
	return filepath.Base(outFile), nil
}

// reportOutPath picks a non-colliding <safe>.report.txt path, suffixing the
// basename with __2, __3, ... when files from same-named sources collide.
func reportOutPath(dir, safe string) string {
	out := filepath.Join(dir, safe+".report.txt")
	for i := 2; ; i++ {
		if _, err := os.Stat(out); os.IsNotExist(err) {
			return out
		}
		out = filepath.Join(dir, fmt.Sprintf("%s__%d.report.txt", safe, i))
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaWorkspace, "workspace", "w", "", "workspace name to attach the report to")
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the report")
	analyzeCmd.Flags().StringVar(&anaDescription, "desc", "", "description when attaching to a workspace")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().IntVar(&anaPrecision, "precision", 0, "decimal digits in reported values (default 4)")
}
