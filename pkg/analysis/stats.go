/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: stats.go
Description: Descriptive statistics over converted X431 CSV files. Loads a CSV
produced by the converter and computes per-column numeric moments or categorical
value distributions for quick diagnostic insight.
*/

package analysis

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnType classifies a column by its dominant content
type ColumnType string

const (
	ColumnNumeric     ColumnType = "numeric"
	ColumnCategorical ColumnType = "categorical"
)

// ValueCount pairs a categorical value with its occurrence count
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnStats holds the statistics of one CSV column
type ColumnStats struct {
	Name         string     `json:"column_name"`
	Index        int        `json:"index"`
	Type         ColumnType `json:"type"`
	TotalValues  int        `json:"total_values"`
	UniqueValues int        `json:"unique_values"`

	// Numeric columns only
	NumericCount int     `json:"numeric_count,omitempty"`
	Min          float64 `json:"min,omitempty"`
	Max          float64 `json:"max,omitempty"`
	Mean         float64 `json:"avg,omitempty"`
	StdDev       float64 `json:"std_dev,omitempty"`

	// Categorical columns only
	MostCommon []ValueCount `json:"most_common,omitempty"`
}

// ChangingColumn describes an active channel: a column whose live values vary
type ChangingColumn struct {
	Index       int      `json:"index"`
	Name        string   `json:"name"`
	UniqueCount int      `json:"unique_count"`
	Samples     []string `json:"sample_values"`
}

// Summary holds whole-file information
type Summary struct {
	File         string   `json:"file"`
	TotalRows    int      `json:"total_rows"`
	TotalColumns int      `json:"total_columns"`
	Columns      []string `json:"columns"`
}

// Analyzer computes statistics over a converted CSV file. It consumes the
// serialized output only, never the decoder's in-memory result.
type Analyzer struct {
	path    string
	headers []string
	data    [][]string
}

// NewAnalyzer loads a CSV file into memory
func NewAnalyzer(path string) (*Analyzer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // converted files are rectangular, but stay tolerant
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file: %s", path)
	}

	return &Analyzer{
		path:    path,
		headers: records[0],
		data:    records[1:],
	}, nil
}

// Summary returns basic whole-file statistics
func (a *Analyzer) Summary() *Summary {
	return &Summary{
		File:         filepath.Base(a.path),
		TotalRows:    len(a.data),
		TotalColumns: len(a.headers),
		Columns:      a.headers,
	}
}

// ColumnStats computes statistics for one column by index
func (a *Analyzer) ColumnStats(index int) (*ColumnStats, error) {
	if index < 0 || index >= len(a.headers) {
		return nil, fmt.Errorf("column index %d out of range (%d columns)", index, len(a.headers))
	}

	var values []string
	for _, row := range a.data {
		if index < len(row) {
			values = append(values, row[index])
		}
	}

	unique := make(map[string]int)
	var numeric []float64
	for _, v := range values {
		unique[v]++
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			numeric = append(numeric, f)
		}
	}

	stats := &ColumnStats{
		Name:         a.headers[index],
		Index:        index,
		TotalValues:  len(values),
		UniqueValues: len(unique),
	}

	if len(numeric) > 0 {
		stats.Type = ColumnNumeric
		stats.NumericCount = len(numeric)
		stats.Min = floats.Min(numeric)
		stats.Max = floats.Max(numeric)
		stats.Mean = stat.Mean(numeric, nil)
		stats.StdDev = stat.StdDev(numeric, nil)
		return stats, nil
	}

	stats.Type = ColumnCategorical
	stats.MostCommon = topValues(unique, 5)
	return stats, nil
}

// inactiveValues carry no signal when deciding whether a channel is active:
// the converter's cell placeholder, empty cells, and the scan tool's own
// "Not Avl" marker
var inactiveValues = map[string]struct{}{
	"0":       {},
	"":        {},
	"Not Avl": {},
}

// maxSampleValues caps how many distinct values a ChangingColumn carries
const maxSampleValues = 5

// ChangingColumns finds the active channels: columns past the ordinal whose
// values, placeholders excluded, take more than one distinct value. Results
// keep column order; samples are sorted for deterministic output.
func (a *Analyzer) ChangingColumns() []ChangingColumn {
	var changing []ChangingColumn
	for i := 1; i < len(a.headers); i++ {
		unique := make(map[string]struct{})
		for _, row := range a.data {
			if i >= len(row) {
				continue
			}
			if _, skip := inactiveValues[row[i]]; skip {
				continue
			}
			unique[row[i]] = struct{}{}
		}
		if len(unique) <= 1 {
			continue
		}

		samples := make([]string, 0, len(unique))
		for value := range unique {
			samples = append(samples, value)
		}
		sort.Strings(samples)
		if len(samples) > maxSampleValues {
			samples = samples[:maxSampleValues]
		}

		changing = append(changing, ChangingColumn{
			Index:       i,
			Name:        a.headers[i],
			UniqueCount: len(unique),
			Samples:     samples,
		})
	}
	return changing
}

// AllStats computes statistics for every column
func (a *Analyzer) AllStats() ([]*ColumnStats, error) {
	all := make([]*ColumnStats, 0, len(a.headers))
	for i := range a.headers {
		stats, err := a.ColumnStats(i)
		if err != nil {
			return nil, err
		}
		all = append(all, stats)
	}
	return all, nil
}

// topValues returns the n most common values, ties broken by value for
// deterministic output
func topValues(counts map[string]int, n int) []ValueCount {
	ranked := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		ranked = append(ranked, ValueCount{Value: value, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Value < ranked[j].Value
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
