// Package config handles converter configuration loading and management.
package config

// Config holds all converter settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls naming and formatting of converted files.
type OutputConfig struct {
	BinarySuffix    string `yaml:"binary_suffix"`    // Appended to the output base name
	BinaryExtension string `yaml:"binary_extension"` // Extension of the combined binary
	Indent          int    `yaml:"indent"`           // Spaces per JSON indent level
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			BinarySuffix:    "0",
			BinaryExtension: ".bin",
			Indent:          2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
