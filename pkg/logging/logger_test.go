/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for the logging system. Covers config validation, log file
creation, and the custom formatter output.
*/

package logging

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerConfigValidate rejects unknown levels and formats
func TestLoggerConfigValidate(t *testing.T) {
	valid := &LoggerConfig{Level: LogLevelInfo, Format: LogFormatText}
	assert.NoError(t, valid.Validate())

	badLevel := &LoggerConfig{Level: "verbose", Format: LogFormatText}
	assert.Error(t, badLevel.Validate())

	badFormat := &LoggerConfig{Level: LogLevelInfo, Format: "xml"}
	assert.Error(t, badFormat.Validate())
}

// TestLoggerCreatesRunFile writes a timestamped log file per run
func TestLoggerCreatesRunFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatText,
		OutputDir: dir,
	})
	require.NoError(t, err)
	defer logger.Close()

	assert.Contains(t, logger.LogFile(), "x431-converter_")
	assert.FileExists(t, logger.LogFile())
}

// TestConverterFormatter checks prefixing and stable field ordering
func TestConverterFormatter(t *testing.T) {
	formatter := &ConverterFormatter{Timestamp: false, Colors: false}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Time:    time.Now(),
		Message: "Batch conversion complete",
		Data: logrus.Fields{
			"succeeded": 3,
			"failed":    1,
		},
	}

	out, err := formatter.Format(entry)
	require.NoError(t, err)

	line := string(out)
	assert.Contains(t, line, "[BATCH]")
	assert.Contains(t, line, "failed=1 succeeded=3")
}
