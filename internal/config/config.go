package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Process ProcessConfig `mapstructure:"process"`
	Output  OutputConfig  `mapstructure:"output"`
}

// ProcessConfig holds normalization behavior settings
type ProcessConfig struct {
	// HeaderRowPolicy selects how duplicate-key header rows are handled:
	// "highlight" keeps them flagged, "delete" removes them.
	HeaderRowPolicy string `mapstructure:"header_row_policy"`
	// StartVersion / EndVersion bound the extraction column window.
	StartVersion string `mapstructure:"start_version"`
	EndVersion   string `mapstructure:"end_version"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir     string   `mapstructure:"dir"`     // Output directory
	Formats []string `mapstructure:"formats"` // Report formats (json, word)
}

// Load reads the configuration from a file or uses defaults.
// If configPath is empty, it looks for "config.yaml" in the current directory.
// If the file doesn't exist, it uses sensible defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			// Config file not found - defaults apply.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("process.header_row_policy", "highlight")
	v.SetDefault("process.start_version", "")
	v.SetDefault("process.end_version", "")

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.formats", []string{})
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput
	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// OutputPath joins a file name onto the output directory.
func (c *Config) OutputPath(fileName string) string {
	return filepath.Join(c.Output.Dir, fileName)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.Process.HeaderRowPolicy) {
	case "highlight", "delete":
	default:
		return fmt.Errorf("process.header_row_policy must be \"highlight\" or \"delete\", got %q",
			c.Process.HeaderRowPolicy)
	}
	for _, f := range c.Output.Formats {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "json", "word", "docx":
		default:
			return fmt.Errorf("unknown report format %q (want json or word)", f)
		}
	}
	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Node Parser Configuration ===")
	fmt.Printf("Header Row Policy: %s\n", c.Process.HeaderRowPolicy)
	fmt.Printf("Start Version:     %s\n", c.Process.StartVersion)
	fmt.Printf("End Version:       %s\n", c.Process.EndVersion)
	fmt.Printf("Output Directory:  %s\n", c.Output.Dir)
	fmt.Printf("Report Formats:    %v\n", c.Output.Formats)
	fmt.Println("=================================")
}
