/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: convert.go
Description: Convert command implementation for the X431 converter. Decodes a
single log file and writes its headers and data rows to CSV.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/x431-converter/pkg/csvout"
	"github.com/kleascm/x431-converter/pkg/x431"
)

// RunConvert converts a single X431 file to CSV
func RunConvert(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	inputPath := args[0]
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if !strings.EqualFold(filepath.Ext(inputPath), ".x431") {
		logger.GetLogger().Warnf("File does not have .x431 extension: %s", inputPath)
	}

	policy := SelectedPolicy()
	fmt.Printf("Processing: %s\n", filepath.Base(inputPath))

	result, err := x431.ParseFile(inputPath, policy)
	if err != nil {
		fmt.Printf("✗ Error processing %s: %v\n", filepath.Base(inputPath), err)
		return err
	}

	outputPath := viper.GetString("output")
	if outputPath == "" {
		outputPath = csvout.DefaultOutputPath(inputPath, policy.Name())
	}

	if err := csvout.Write(outputPath, result.Headers, result.Rows); err != nil {
		fmt.Printf("✗ Error processing %s: %v\n", filepath.Base(inputPath), err)
		return err
	}

	fmt.Printf("✓ CSV export complete: %s\n", filepath.Base(outputPath))
	fmt.Printf("  Rows: %d, Columns: %d\n", len(result.Rows), len(result.Headers))
	return nil
}
