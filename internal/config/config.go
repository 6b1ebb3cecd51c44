package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Tracing  TracingConfig  `yaml:"tracing" envconfig:"TRACING"`
}

// PipelineConfig contains the explicit pipeline options. These replace
// the ambient report-wide globals of the original analysis: every knob
// the pipeline honors is a field here and is passed in at startup.
type PipelineConfig struct {
	TimeLogPath   string `yaml:"time_log" envconfig:"TIME_LOG" validate:"required"`
	ImportLogPath string `yaml:"import_log" envconfig:"IMPORT_LOG" validate:"required"`
	OutputPath    string `yaml:"output" envconfig:"OUTPUT" validate:"required"`
	WorkbookPath  string `yaml:"workbook" envconfig:"WORKBOOK"`
	Delimiter     string `yaml:"delimiter" envconfig:"DELIMITER" validate:"max=1"`
	DateColumn    string `yaml:"date_column" envconfig:"DATE_COLUMN" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/mergelogs.log"`
}

// TracingConfig contains OpenTelemetry tracing configuration
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled" envconfig:"ENABLED" default:"false"`
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" default:"1.0" validate:"min=0,max=1"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("IMPORTCLI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Pipeline.TimeLogPath == "" {
		envConfig.Pipeline.TimeLogPath = fileConfig.Pipeline.TimeLogPath
	}
	if envConfig.Pipeline.ImportLogPath == "" {
		envConfig.Pipeline.ImportLogPath = fileConfig.Pipeline.ImportLogPath
	}
	if envConfig.Pipeline.OutputPath == "" {
		envConfig.Pipeline.OutputPath = fileConfig.Pipeline.OutputPath
	}
	if envConfig.Pipeline.WorkbookPath == "" {
		envConfig.Pipeline.WorkbookPath = fileConfig.Pipeline.WorkbookPath
	}
	if envConfig.Pipeline.Delimiter == "" {
		envConfig.Pipeline.Delimiter = fileConfig.Pipeline.Delimiter
	}
	if envConfig.Pipeline.DateColumn == "" {
		envConfig.Pipeline.DateColumn = fileConfig.Pipeline.DateColumn
	}
	if fileConfig.Tracing.Enabled {
		envConfig.Tracing.Enabled = true
	}

	return envConfig
}

// applyDefaults fills the fields envconfig has no default tag for.
func (c *Config) applyDefaults() {
	if c.Pipeline.DateColumn == "" {
		c.Pipeline.DateColumn = "Date"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "both"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/mergelogs.log"
	}
	if c.Tracing.SampleRatio == 0 {
		c.Tracing.SampleRatio = 1.0
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.Pipeline.TimeLogPath == c.Pipeline.ImportLogPath {
		return fmt.Errorf("time log and import log must be distinct files: %s", c.Pipeline.TimeLogPath)
	}

	return nil
}

// OutputDelimiter returns the configured export field separator,
// defaulting to tab.
func (c *Config) OutputDelimiter() rune {
	if c.Pipeline.Delimiter == "" {
		return '\t'
	}
	return rune(c.Pipeline.Delimiter[0])
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			TimeLogPath:   "data/importtimes.log",
			ImportLogPath: "data/importstats.log",
			OutputPath:    "data/merged.tsv",
			DateColumn:    "Date",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "both",
			FilePath: "logs/mergelogs.log",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			SampleRatio: 1.0,
		},
	}
}
