package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const configFilePath = "config.json"

// Config represents the application's configuration structure.
type Config struct {
	DataDir         string `json:"data-dir" mapstructure:"data-dir"`
	LogLevel        string `json:"log-level" mapstructure:"log-level"`
	AnalyzerAddress string `json:"analyzer-address" mapstructure:"analyzer-address"`
	BatchSize       int    `json:"batch-size" mapstructure:"batch-size"`
}

var requiredFields = []string{
	"data-dir",
}

// field: default value
var optionalFields = map[string]interface{}{
	"log-level":        "INFO",
	"analyzer-address": "",
	"batch-size":       500,
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file.
func InitConfig() (*Config, error) {
	v := viper.New()

	// Set config file type and name
	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, field := range requiredFields {
		v.BindEnv(field)
	}

	for optField, defaultValue := range optionalFields {
		v.SetDefault(optField, defaultValue)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	for _, field := range requiredFields {
		if !v.IsSet(field) {
			return nil, fmt.Errorf("missing required config field: %s", field)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &config, nil
}
