package dataset

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Options controls how a delimited file is split into columns.
type Options struct {
	// Delimiter separating fields. If 0, defaults to ','.
	Delimiter rune
}

// DefaultOptions returns the defaults for plain comma-separated input.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

// LoadError describes a failure to load a file into a Dataset.
type LoadError struct {
	Kind string
	Path string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s", e.Path, e.Kind)
}

// Dataset holds the headers and parsed numeric columns of one delimited file.
// Headers and Columns are aligned positionally: Columns[i] contains every
// successfully parsed value from field position i across all data rows, in
// row order. A Dataset is reusable: each Load fully replaces its state.
// Not safe for concurrent use.
type Dataset struct {
	Headers []string
	Columns [][]float64

	opt Options
}

// New returns an empty Dataset using the given options.
func New(opt Options) *Dataset {
	if opt.Delimiter == 0 {
		opt.Delimiter = ','
	}
	return &Dataset{opt: opt}
}

// Load reads the file at path and rebuilds Headers and Columns from it,
// discarding any previously loaded state. The first line fixes the column
// count; fields in later rows beyond that count are ignored, and rows with
// fewer fields contribute nothing to the missing trailing columns.
//
// Fields are split on the raw delimiter with no quote handling; a delimiter
// inside a quoted string is treated as a field separator. Fields that do not
// parse as numbers are dropped without error.
func (d *Dataset) Load(path string) error {
	d.Headers = nil
	d.Columns = nil

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(b) == 0 {
		return &LoadError{Kind: "empty input", Path: path}
	}

	sep := string(d.opt.Delimiter)
	lines := strings.Split(string(b), "\n")
	// A trailing newline produces one final empty element, not an extra row.
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	d.Headers = strings.Split(lines[0], sep)
	d.Columns = make([][]float64, len(d.Headers))

	for _, line := range lines[1:] {
		fields := strings.Split(line, sep)
		n := len(fields)
		if n > len(d.Columns) {
			n = len(d.Columns)
		}
		for i := 0; i < n; i++ {
			token := strings.TrimSpace(fields[i])
			// ParseFloat also accepts hex floats ("0x1p-2"), grouped digits
			// ("1_000"), and NaN/Inf tokens; none are part of the plain
			// decimal grammar, and columns hold finite values only.
			if strings.ContainsAny(token, "xX_") {
				continue
			}
			v, err := strconv.ParseFloat(token, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			d.Columns[i] = append(d.Columns[i], v)
		}
	}
	return nil
}
