package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.BinarySuffix != "0" {
		t.Errorf("expected binary suffix '0', got %q", cfg.Output.BinarySuffix)
	}
	if cfg.Output.BinaryExtension != ".bin" {
		t.Errorf("expected binary extension '.bin', got %q", cfg.Output.BinaryExtension)
	}
	if cfg.Output.Indent != 2 {
		t.Errorf("expected indent 2, got %d", cfg.Output.Indent)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "convert.yaml")

	yamlContent := `
output:
  binary_suffix: "_data"
  binary_extension: ".buf"
  indent: 4

logging:
  level: "debug"
  log_file: "convert.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.BinarySuffix != "_data" {
		t.Errorf("expected suffix '_data', got %q", cfg.Output.BinarySuffix)
	}
	if cfg.Output.BinaryExtension != ".buf" {
		t.Errorf("expected extension '.buf', got %q", cfg.Output.BinaryExtension)
	}
	if cfg.Output.Indent != 4 {
		t.Errorf("expected indent 4, got %d", cfg.Output.Indent)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "convert.log" {
		t.Errorf("expected log file 'convert.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "convert.yaml")

	if err := os.WriteFile(configPath, []byte("output:\n  indent: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Indent != 0 {
		t.Errorf("expected indent 0, got %d", cfg.Output.Indent)
	}
	// Untouched keys keep their defaults
	if cfg.Output.BinarySuffix != "0" || cfg.Output.BinaryExtension != ".bin" {
		t.Errorf("expected default naming, got %+v", cfg.Output)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  indent: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/convert.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty extension", func(c *Config) { c.Output.BinaryExtension = "" }},
		{"negative indent", func(c *Config) { c.Output.Indent = -2 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "convert.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  indent: 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find convert.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "log file flag",
			setup: func() { *flagLogFile = "/tmp/convert.log" },
			verify: func(cfg *Config) {
				if cfg.Logging.LogFile != "/tmp/convert.log" {
					t.Errorf("expected log file /tmp/convert.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
		{
			name:  "indent flag",
			setup: func() { *flagIndent = 0 },
			verify: func(cfg *Config) {
				if cfg.Output.Indent != 0 {
					t.Errorf("expected indent 0, got %d", cfg.Output.Indent)
				}
			},
			teardown: func() { *flagIndent = -1 },
		},
		{
			name:  "unset indent flag",
			setup: func() {},
			verify: func(cfg *Config) {
				if cfg.Output.Indent != 2 {
					t.Errorf("expected default indent 2, got %d", cfg.Output.Indent)
				}
			},
			teardown: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "convert.yaml")

	yamlContent := `
output:
  binary_suffix: "_flat"
  indent: 8
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagIndent = 1
	defer func() {
		*flagConfig = ""
		*flagIndent = -1
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Indent should be from flag (1), not file (8)
	if cfg.Output.Indent != 1 {
		t.Errorf("expected indent 1 from flag, got %d", cfg.Output.Indent)
	}

	// Suffix should be from file since no flag override
	if cfg.Output.BinarySuffix != "_flat" {
		t.Errorf("expected suffix '_flat' from file, got %q", cfg.Output.BinarySuffix)
	}
}

func TestParseFlags(t *testing.T) {
	defer func() { *flagDebug = false }()

	args, err := ParseFlags([]string{"-debug", "in.gltf", "out.gltf"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if !*flagDebug {
		t.Error("expected -debug to be set")
	}
	if len(args) != 2 || args[0] != "in.gltf" || args[1] != "out.gltf" {
		t.Errorf("unexpected positional args: %v", args)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		help bool
	}{
		{"help", []string{"-h"}, true},
		{"long help", []string{"-help", "in.gltf", "out.gltf"}, true},
		{"unknown flag", []string{"-bogus", "in.gltf", "out.gltf"}, false},
		{"bad indent", []string{"-indent", "wide", "in.gltf", "out.gltf"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() { *flagIndent = -1 }()

			args, err := ParseFlags(tt.args)
			if err == nil {
				t.Fatalf("expected error, got args %v", args)
			}
			if got := errors.Is(err, flag.ErrHelp); got != tt.help {
				t.Errorf("errors.Is(err, flag.ErrHelp) = %v, expected %v (err: %v)", got, tt.help, err)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "convert.yaml")

	cfg := Default()
	cfg.Output.BinarySuffix = "_packed"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Output.BinarySuffix != "_packed" {
		t.Errorf("expected suffix '_packed' after reload, got %q", loaded.Output.BinarySuffix)
	}
}
