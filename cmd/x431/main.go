/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the X431 converter. Provides commands
for single-file conversion, batch directory conversion, CSV statistics, and raw
file inspection, with configuration management and structured logging.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/x431-converter/cmd/x431/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Logging configuration
	logDir    string
	logFormat string

	// Conversion configuration
	cleanHeaders bool
	outputPath   string

	// Batch configuration
	workers   int
	reportDir string

	// Analysis configuration
	columnIndex int
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "x431-converter",
		Short: "X431 Converter - LAUNCH diagnostic log to CSV toolkit",
		Long: `X431 Converter decodes LAUNCH X431 binary diagnostic log files into CSV
for analysis with standard tooling. It reconstructs the embedded string table and
fixed-width index records, supports verbose and Excel-friendly header formats,
batch-converts whole directories in parallel, and computes quick statistics over
converted data.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = console only)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add convert command
	convertCmd := &cobra.Command{
		Use:   "convert <file.x431>",
		Short: "Convert a single X431 log file to CSV",
		Long: `Decode one LAUNCH X431 log file and write its channels and data rows to a
CSV file next to the input (or to --output).`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunConvert,
	}
	convertCmd.Flags().BoolVar(&cleanHeaders, "clean", false, "Use Excel-friendly simplified headers")
	convertCmd.Flags().StringVar(&outputPath, "output", "", "Output CSV path (default: derived from input)")
	viper.BindPFlag("clean", convertCmd.Flags().Lookup("clean"))
	viper.BindPFlag("output", convertCmd.Flags().Lookup("output"))

	// Add batch command
	batchCmd := &cobra.Command{
		Use:   "batch [directory]",
		Short: "Convert all X431 log files under a directory",
		Long: `Recursively find .x431 files under a directory (default: current directory)
and convert each to CSV using a bounded worker pool. Per-file failures are counted
and reported without stopping the batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.RunBatch,
	}
	batchCmd.Flags().BoolVar(&cleanHeaders, "clean", false, "Use Excel-friendly simplified headers")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel workers (0 = auto-detect)")
	batchCmd.Flags().StringVar(&reportDir, "report", "", "Write an HTML session report to this directory")
	viper.BindPFlag("clean", batchCmd.Flags().Lookup("clean"))
	viper.BindPFlag("workers", batchCmd.Flags().Lookup("workers"))
	viper.BindPFlag("report_dir", batchCmd.Flags().Lookup("report"))

	// Add analyze command
	analyzeCmd := &cobra.Command{
		Use:   "analyze <file.csv>",
		Short: "Show statistics for a converted CSV file",
		Long: `Compute descriptive statistics over a CSV file produced by convert or batch:
numeric columns get min/max/mean/stddev, categorical columns get their most common
values.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunAnalyze,
	}
	analyzeCmd.Flags().IntVar(&columnIndex, "column", -1, "Analyze a single column by index (-1 = all)")
	viper.BindPFlag("column", analyzeCmd.Flags().Lookup("column"))

	// Add inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect <file.x431>",
		Short: "Dump the decoded structure of an X431 log file",
		Long: `Decode a file and print its structure: channel count, point value table
contents, resolved column headers, and row count. Useful when a file fails to
convert or produces unexpected output.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunInspect,
	}

	rootCmd.AddCommand(convertCmd, batchCmd, analyzeCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
