/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inspect.go
Description: Inspect command implementation for the X431 converter. Dumps the
decoded structure of a log file for troubleshooting: magic bytes, channel count,
point value table, resolved headers, and row count.
*/

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kleascm/x431-converter/pkg/x431"
)

// maxInspectValues limits how many point values are dumped
const maxInspectValues = 50

// RunInspect dumps the decoded structure of an X431 file
func RunInspect(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	fmt.Printf("File: %s\n", args[0])
	fmt.Printf("Size: %d bytes\n", len(data))
	if len(data) >= 4 {
		fmt.Printf("Magic: %q\n", strings.ToValidUTF8(string(data[:4]), "."))
	}

	result, err := x431.NewParser(data, x431.NewVerbosePolicy()).Parse()
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	fmt.Printf("Channel Count: %d\n", result.ChannelCount)
	fmt.Printf("Total Rows: %d\n", len(result.Rows))

	line := strings.Repeat("=", 60)
	fmt.Println("\n" + line)
	fmt.Printf("Point Values (%d total)\n", len(result.PointValues))
	fmt.Println(line)
	for i, value := range result.PointValues {
		if i >= maxInspectValues {
			fmt.Printf("  ... %d more\n", len(result.PointValues)-maxInspectValues)
			break
		}
		fmt.Printf("  [%3d] %s\n", i, value)
	}

	fmt.Println("\n" + line)
	fmt.Println("Column Headers")
	fmt.Println(line)
	for _, header := range result.Headers {
		fmt.Printf("  %s\n", header)
	}

	return nil
}
