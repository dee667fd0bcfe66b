// convert rewrites a glTF document with interleaved vertex buffers into one
// where every accessor has its own tightly packed buffer view.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/gltf-deinterleave/internal/config"
	"github.com/Faultbox/gltf-deinterleave/internal/logger"
	"github.com/Faultbox/gltf-deinterleave/pkg/deinterleave"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `convert - split interleaved glTF vertex buffers

Usage:
  convert [options] <input.gltf> <output.gltf>

Writes <output.gltf> and <output>0.bin next to it.

Options:
  -config <file>        Load settings from a YAML file
  -debug                Enable debug logging
  -log-file <file>      Also write logs to a rotated file
  -indent <n>           Spaces per JSON indent level (0 = compact)
  -write-config <file>  Save the effective settings to a YAML file`)
}

func run(args []string, stdout, stderr io.Writer) int {
	positional, err := config.ParseFlags(args)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		printUsage(stderr)
		return 1
	}
	if len(positional) != 2 {
		printUsage(stderr)
		return 1
	}
	input, output := positional[0], positional[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Debug("config loaded",
		zap.String("level", cfg.Logging.Level),
		zap.String("logFile", cfg.Logging.LogFile),
		zap.String("binarySuffix", cfg.Output.BinarySuffix),
		zap.String("binaryExtension", cfg.Output.BinaryExtension),
		zap.Int("indent", cfg.Output.Indent),
	)

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to write config", zap.String("path", path), zap.Error(err))
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		logger.Info("config written", zap.String("path", path))
	}

	if samePath(input, output) {
		logger.Warn("output overwrites input", zap.String("path", output))
	}

	conv := deinterleave.NewConverter(converterOptions(cfg), logger.Log)
	result, err := conv.Convert(input, output)
	if err != nil {
		logger.Error("conversion failed",
			zap.String("input", input),
			zap.String("kind", deinterleave.ErrorKind(err)),
			zap.Error(err),
		)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, result.Summary())
	return 0
}

// converterOptions maps config settings onto converter options.
func converterOptions(cfg *config.Config) deinterleave.Options {
	return deinterleave.Options{
		BinarySuffix:    cfg.Output.BinarySuffix,
		BinaryExtension: cfg.Output.BinaryExtension,
		Indent:          strings.Repeat(" ", cfg.Output.Indent),
	}
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
