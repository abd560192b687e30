// Package tabular implements chaospp's plain-text tabular export
// format: whitespace-separated columns, one row per line, read back
// with Go's standard text scanning rather than a CSV parser — matching
// the original C++ io::save/io::load pair, which this package is
// grounded on.
package tabular

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// digits10Plus1 mirrors std::numeric_limits<double>::digits10 + 1, the
// precision io::save formatted every column with.
const digits10Plus1 = 16

// Row is a single exported data row; []float64 fits every table this
// package writes (histogram bins, entropy curves, optimizer profiles).
type Row = []float64

// Save writes rows to path, one row per line, columns separated by a
// single space and formatted at digits10+1 significant digits.
// Grounded on io::save in io.h.
func Save(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tabular: creating %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		cols := make([]string, len(row))
		for i, v := range row {
			cols[i] = strconv.FormatFloat(v, 'g', digits10Plus1, 64)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cols, " ")); err != nil {
			return fmt.Errorf("tabular: writing %q: %w", path, err)
		}
	}
	return w.Flush()
}

// Load reads back a table written by Save (or any whitespace-column
// file of floats), skipping blank lines. Grounded on io::load in io.h.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tabular: opening %q: %w", path, err)
	}
	defer f.Close()

	var rows []Row
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		row := make(Row, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("tabular: parsing %q in %q: %w", field, path, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tabular: reading %q: %w", path, err)
	}
	return rows, nil
}

// HistogramFileName builds the "histogram_<name>" export file name a
// SamplingHistogram's ExportHistogram/ExportPretty output is written
// to, per sampler.h's SamplingHistogram::export_histogram prefixing.
func HistogramFileName(name string) string {
	return "histogram_" + name
}

// EntropyFileName builds the "entropy_<name>" export file name
// SamplingHistogram.ExportEntropy output is written to.
func EntropyFileName(name string) string {
	return "entropy_" + name
}
