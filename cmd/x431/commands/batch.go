/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: Batch command implementation for the X431 converter. Converts every
log file under a directory through the worker pool and optionally writes an HTML
session report.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/x431-converter/pkg/batch"
	"github.com/kleascm/x431-converter/pkg/reporting"
)

// RunBatch converts all X431 files under a directory
func RunBatch(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	// Allow a clean Ctrl-C mid-batch
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := batch.NewRunner(batch.Options{
		Dir:     dir,
		Workers: viper.GetInt("workers"),
		Policy:  SelectedPolicy(),
		Logger:  logger.GetLogger(),
	})

	summary, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("batch conversion failed: %w", err)
	}

	if len(summary.Files) == 0 {
		fmt.Printf("No .x431 files found in %s\n", dir)
		return nil
	}

	printBatchSummary(summary)

	if reportDir := viper.GetString("report_dir"); reportDir != "" {
		generator := reporting.NewReportGenerator(reportDir, logger.GetLogger())
		path, err := generator.Generate(&reporting.ReportData{
			Version: cmd.Root().Version,
			Summary: summary,
		})
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		fmt.Printf("Report written to %s\n", path)
	}

	return nil
}

// printBatchSummary renders the final counters to the console
func printBatchSummary(summary *batch.Summary) {
	line := strings.Repeat("=", 60)
	fmt.Println(line)
	fmt.Println("Conversion complete:")
	fmt.Printf("  ✓ Success: %d\n", summary.Succeeded)
	fmt.Printf("  ✗ Errors:  %d\n", summary.Failed)
	if summary.Policy == "clean" {
		fmt.Println("\nFiles created with '_clean.csv' suffix")
	}
	fmt.Println(line)
}
