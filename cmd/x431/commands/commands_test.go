/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: commands_test.go
Description: Tests for the converter CLI commands. Executes convert, batch,
analyze, and inspect against temporary log fixtures and verifies output
placement, flag routing, policy selection, and environment configuration.
*/

package commands

import (
	"encoding/binary"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleLog builds a minimal well-formed log: one channel named Speed,
// one data row referencing it
func sampleLog() []byte {
	buf := make([]byte, 0x166)

	buf[0x134] = 4                                        // one channel
	binary.LittleEndian.PutUint32(buf[0x0c:], 0x140-0x10) // preamble up to 0x140
	binary.LittleEndian.PutUint16(buf[0x138:], 9)         // primary index

	off := 0x140
	for i := 0; i < 8; i++ { // eight empty sections
		binary.LittleEndian.PutUint16(buf[off:], 2)
		off += 2
	}
	binary.LittleEndian.PutUint16(buf[off:], 8) // "Speed" entry, len+3
	copy(buf[off+2:], "Speed")
	off += 8
	binary.LittleEndian.PutUint16(buf[off:], 0) // sentinel
	off += 2

	binary.LittleEndian.PutUint16(buf[0x11c:], uint16(off-8)) // data pointer
	binary.LittleEndian.PutUint32(buf[off:], 4)               // one row
	binary.LittleEndian.PutUint16(buf[off+8:], 9)             // cell -> Speed
	return buf
}

// writeSampleLog drops a sample log into dir and returns its path
func writeSampleLog(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, sampleLog(), 0o644))
	return path
}

// resetConfig clears viper between tests and restores the logging defaults
// the root command would normally bind
func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.Set("log_level", "error")
	viper.Set("log_format", "custom")
	t.Cleanup(viper.Reset)
}

// newConvertCommand mirrors the convert command wiring from main
func newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "convert", Args: cobra.ExactArgs(1), RunE: RunConvert, SilenceUsage: true}
	cmd.Flags().Bool("clean", false, "")
	cmd.Flags().String("output", "", "")
	viper.BindPFlag("clean", cmd.Flags().Lookup("clean"))
	viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

// newBatchCommand mirrors the batch command wiring from main
func newBatchCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "batch", Args: cobra.MaximumNArgs(1), RunE: RunBatch, SilenceUsage: true}
	cmd.Flags().Bool("clean", false, "")
	cmd.Flags().Int("workers", 0, "")
	cmd.Flags().String("report", "", "")
	viper.BindPFlag("clean", cmd.Flags().Lookup("clean"))
	viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("report_dir", cmd.Flags().Lookup("report"))
	return cmd
}

// newAnalyzeCommand mirrors the analyze command wiring from main
func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "analyze", Args: cobra.ExactArgs(1), RunE: RunAnalyze, SilenceUsage: true}
	cmd.Flags().Int("column", -1, "")
	viper.BindPFlag("column", cmd.Flags().Lookup("column"))
	return cmd
}

// readCSV loads a converted file for assertions
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

// TestConvertCommandDefaultOutput writes the CSV next to the input with the
// verbose naming scheme
func TestConvertCommandDefaultOutput(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	input := writeSampleLog(t, dir, "log.x431")

	cmd := newConvertCommand()
	cmd.SetArgs([]string{input})
	require.NoError(t, cmd.Execute())

	records := readCSV(t, filepath.Join(dir, "log.x431.csv"))
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Num", "1. Speed"}, records[0])
	assert.Equal(t, []string{"1", "Speed"}, records[1])
}

// TestConvertCommandCleanFlag routes --clean through policy selection and the
// clean output naming scheme
func TestConvertCommandCleanFlag(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	input := writeSampleLog(t, dir, "log.x431")

	cmd := newConvertCommand()
	cmd.SetArgs([]string{input, "--clean"})
	require.NoError(t, cmd.Execute())

	records := readCSV(t, filepath.Join(dir, "log_clean.csv"))
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Row", "Speed"}, records[0])
}

// TestConvertCommandOutputOverride honors an explicit --output path
func TestConvertCommandOutputOverride(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	input := writeSampleLog(t, dir, "log.x431")
	override := filepath.Join(dir, "elsewhere.csv")

	cmd := newConvertCommand()
	cmd.SetArgs([]string{input, "--output", override})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, override)
	assert.NoFileExists(t, filepath.Join(dir, "log.x431.csv"))
}

// TestConvertCommandMissingFile surfaces a nonexistent input as an error
func TestConvertCommandMissingFile(t *testing.T) {
	resetConfig(t)

	cmd := newConvertCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.x431")})
	assert.Error(t, cmd.Execute())
}

// TestBatchCommand converts every log under the directory
func TestBatchCommand(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	writeSampleLog(t, dir, "a.x431")
	writeSampleLog(t, dir, "b.x431")

	cmd := newBatchCommand()
	cmd.SetArgs([]string{dir, "--workers", "2"})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "a.x431.csv"))
	assert.FileExists(t, filepath.Join(dir, "b.x431.csv"))
}

// TestBatchCommandCleanFlag routes --clean through to the output naming
func TestBatchCommandCleanFlag(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	writeSampleLog(t, dir, "a.x431")

	cmd := newBatchCommand()
	cmd.SetArgs([]string{dir, "--clean"})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "a_clean.csv"))
}

// TestAnalyzeCommand runs statistics over a converted file, whole-file and
// single-column
func TestAnalyzeCommand(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Num,Speed\n1,10\n2,20\n"), 0o644))

	cmd := newAnalyzeCommand()
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	resetConfig(t)
	cmd = newAnalyzeCommand()
	cmd.SetArgs([]string{path, "--column", "1"})
	require.NoError(t, cmd.Execute())

	resetConfig(t)
	cmd = newAnalyzeCommand()
	cmd.SetArgs([]string{path, "--column", "9"})
	assert.Error(t, cmd.Execute())
}

// TestInspectCommand dumps a decodable file without error and rejects a
// structurally broken one
func TestInspectCommand(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	input := writeSampleLog(t, dir, "log.x431")

	cmd := &cobra.Command{Use: "inspect", Args: cobra.ExactArgs(1), RunE: RunInspect, SilenceUsage: true}
	cmd.SetArgs([]string{input})
	require.NoError(t, cmd.Execute())

	broken := filepath.Join(dir, "broken.x431")
	require.NoError(t, os.WriteFile(broken, []byte{0x01, 0x02, 0x03}, 0o644))
	cmd = &cobra.Command{Use: "inspect", Args: cobra.ExactArgs(1), RunE: RunInspect, SilenceUsage: true}
	cmd.SetArgs([]string{broken})
	assert.Error(t, cmd.Execute())
}

// TestSelectedPolicy picks the header policy from configuration
func TestSelectedPolicy(t *testing.T) {
	resetConfig(t)

	assert.Equal(t, "verbose", SelectedPolicy().Name())

	viper.Set("clean", true)
	assert.Equal(t, "clean", SelectedPolicy().Name())
}

// TestLoadConfigEnvPrefix maps X431_-prefixed environment variables onto
// configuration keys
func TestLoadConfigEnvPrefix(t *testing.T) {
	resetConfig(t)
	t.Setenv("X431_CLEAN", "true")

	require.NoError(t, LoadConfig())
	assert.True(t, viper.GetBool("clean"))
	assert.Equal(t, "clean", SelectedPolicy().Name())
}

// TestLoadConfigMissingFile rejects an explicit config path that does not exist
func TestLoadConfigMissingFile(t *testing.T) {
	resetConfig(t)
	viper.Set("config", filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, LoadConfig())
}
