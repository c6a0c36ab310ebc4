package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/colstat-cli/internal/stats"
)

// DefaultPrecision is the number of digits after the decimal point.
const DefaultPrecision = 4

// Render formats one text block per column: a label line followed by the
// five statistics indented beneath it. Headers that are empty or
// whitespace-only are replaced with a generated "Column N" label (1-based).
func Render(headers []string, summaries []stats.Summary) string {
	return RenderPrecision(headers, summaries, DefaultPrecision)
}

// RenderPrecision is Render with an explicit number of decimal digits.
func RenderPrecision(headers []string, summaries []stats.Summary, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	var b strings.Builder
	for i, s := range summaries {
		label := ""
		if i < len(headers) {
			label = strings.TrimSpace(headers[i])
		}
		if label == "" {
			label = fmt.Sprintf("Column %d", i+1)
		}
		b.WriteString(label)
		b.WriteString(":\n")
		writeStat(&b, "Mean", s.Mean, precision)
		writeStat(&b, "Median", s.Median, precision)
		writeStat(&b, "Std Dev", s.StdDev, precision)
		writeStat(&b, "Min", s.Min, precision)
		writeStat(&b, "Max", s.Max, precision)
	}
	return b.String()
}

func writeStat(b *strings.Builder, name string, v float64, precision int) {
	fmt.Fprintf(b, "  %s = %.*f\n", name, precision, v)
}
