/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the X431 converter commands. Provides common
configuration loading, logging setup, and header policy selection used across
all command implementations.
*/

package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kleascm/x431-converter/pkg/logging"
	"github.com/kleascm/x431-converter/pkg/x431"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("X431")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the session logger from configuration
func SetupLogging() (*logging.Logger, error) {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		Timestamp: true,
		Colors:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	return logger, nil
}

// SelectedPolicy returns the header policy chosen by configuration
func SelectedPolicy() x431.HeaderPolicy {
	if viper.GetBool("clean") {
		return x431.NewCleanPolicy()
	}
	return x431.NewVerbosePolicy()
}
