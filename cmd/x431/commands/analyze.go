/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyze.go
Description: Analyze command implementation for the X431 converter. Computes and
prints descriptive statistics over a converted CSV file.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/x431-converter/pkg/analysis"
)

// RunAnalyze prints statistics for a converted CSV file
func RunAnalyze(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	analyzer, err := analysis.NewAnalyzer(args[0])
	if err != nil {
		return fmt.Errorf("failed to load CSV: %w", err)
	}

	summary := analyzer.Summary()
	line := strings.Repeat("=", 60)
	fmt.Println(line)
	fmt.Printf("File: %s\n", summary.File)
	fmt.Printf("Rows: %d, Columns: %d\n", summary.TotalRows, summary.TotalColumns)
	fmt.Println(line)

	printActiveChannels(analyzer.ChangingColumns())

	column := viper.GetInt("column")
	if column >= 0 {
		stats, err := analyzer.ColumnStats(column)
		if err != nil {
			return err
		}
		printColumnStats(stats)
		return nil
	}

	all, err := analyzer.AllStats()
	if err != nil {
		return err
	}
	for _, stats := range all {
		printColumnStats(stats)
	}
	return nil
}

// printActiveChannels renders the columns whose values actually vary
func printActiveChannels(changing []analysis.ChangingColumn) {
	fmt.Printf("\nActive Channels: %d (columns with varying data)\n", len(changing))
	if len(changing) == 0 {
		return
	}

	fmt.Println("\nTop 10 Active Channels:")
	for i, col := range changing {
		if i >= 10 {
			break
		}
		samples := col.Samples
		if len(samples) > 3 {
			samples = samples[:3]
		}
		fmt.Printf("%3d. %s\n", i+1, col.Name)
		fmt.Printf("     Unique values: %d\n", col.UniqueCount)
		fmt.Printf("     Samples: %s\n", strings.Join(samples, ", "))
	}
}

// printColumnStats renders one column's statistics
func printColumnStats(stats *analysis.ColumnStats) {
	fmt.Printf("\n[%d] %s (%s)\n", stats.Index, stats.Name, stats.Type)
	fmt.Printf("  Values: %d, Unique: %d\n", stats.TotalValues, stats.UniqueValues)

	if stats.Type == analysis.ColumnNumeric {
		fmt.Printf("  Min: %.3f, Max: %.3f, Mean: %.3f, StdDev: %.3f\n",
			stats.Min, stats.Max, stats.Mean, stats.StdDev)
		return
	}

	for _, vc := range stats.MostCommon {
		fmt.Printf("  %6d × %s\n", vc.Count, vc.Value)
	}
}
