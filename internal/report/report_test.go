package report

import (
	"math"
	"strings"
	"testing"

	"github.com/KaramelBytes/colstat-cli/internal/stats"
)

func TestRenderLabelsAndValues(t *testing.T) {
	headers := []string{"A", "   "}
	summaries := []stats.Summary{
		{Mean: 4, Median: 4, StdDev: math.Sqrt(6), Min: 1, Max: 7},
		{Mean: 5, Median: 5, StdDev: math.Sqrt(6), Min: 2, Max: 8},
	}
	got := Render(headers, summaries)

	want := strings.Join([]string{
		"A:",
		"  Mean = 4.0000",
		"  Median = 4.0000",
		"  Std Dev = 2.4495",
		"  Min = 1.0000",
		"  Max = 7.0000",
		"Column 2:",
		"  Mean = 5.0000",
		"  Median = 5.0000",
		"  Std Dev = 2.4495",
		"  Min = 2.0000",
		"  Max = 8.0000",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderNaNSentinel(t *testing.T) {
	nan := math.NaN()
	got := Render([]string{"Empty"}, []stats.Summary{{Mean: nan, Median: nan, StdDev: nan, Min: nan, Max: nan}})
	if !strings.Contains(got, "  Mean = NaN\n") {
		t.Fatalf("missing NaN mean: %q", got)
	}
	if strings.Count(got, "NaN") != 5 {
		t.Fatalf("want all five statistics NaN: %q", got)
	}
}

func TestRenderPrecision(t *testing.T) {
	got := RenderPrecision([]string{"X"}, []stats.Summary{{Mean: 2.5, Median: 2.5, StdDev: 1.5, Min: 1, Max: 4}}, 2)
	if !strings.Contains(got, "  Mean = 2.50\n") {
		t.Fatalf("precision not applied: %q", got)
	}
}

func TestRenderMissingHeaderFallsBack(t *testing.T) {
	// More summaries than headers still labels every block.
	got := Render(nil, []stats.Summary{{}, {}})
	if !strings.Contains(got, "Column 1:") || !strings.Contains(got, "Column 2:") {
		t.Fatalf("missing generated labels: %q", got)
	}
}
