/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: CSV serialization for decoded X431 results. Writes headers and data
rows with standard quoting and derives default output paths from the input file
and the selected header policy.
*/

package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Write serializes headers and rows to a CSV file at path. Fields containing
// the separator, quotes, or newlines are quoted by the encoder.
func Write(path string, headers []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// DefaultOutputPath derives the output CSV path for an input file.
// Verbose output appends ".csv" to the full input name; clean output replaces
// the extension with a "_clean.csv" suffix.
func DefaultOutputPath(inputPath, policyName string) string {
	if policyName == "clean" {
		base := filepath.Base(inputPath)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		return filepath.Join(filepath.Dir(inputPath), stem+"_clean.csv")
	}
	return inputPath + ".csv"
}
