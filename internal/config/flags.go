package config

import (
	"flag"
	"io"
)

// flags parses the convert command line. Errors are returned to the caller,
// which prints its own usage text.
var flags = newFlagSet()

var (
	flagConfig      = flags.String("config", "", "Path to config file")
	flagDebug       = flags.Bool("debug", false, "Enable debug logging")
	flagLogFile     = flags.String("log-file", "", "Also write logs to this file")
	flagIndent      = flags.Int("indent", -1, "Spaces per JSON indent level (0 = compact)")
	flagWriteConfig = flags.String("write-config", "", "Write the effective config to this path")
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// ParseFlags parses command-line flags from args and returns the remaining
// positional arguments. A -h or -help argument yields flag.ErrHelp.
func ParseFlags(args []string) ([]string, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	return flags.Args(), nil
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the path given via --write-config, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagIndent >= 0 {
		cfg.Output.Indent = *flagIndent
	}
}
