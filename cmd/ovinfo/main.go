// Command ovinfo prints the OpenVINO runtime version, the available devices
// with their plugin versions and properties, and optionally reads and
// compiles a model.
//
// Usage:
//
//	ovinfo [--lib path] [--config plugins.xml] [-m model.xml [-d CPU]] [--format yaml]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	ov "github.com/benedoc-inc/ovgo/openvino"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config, w io.Writer) error {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	runtime, err := ov.NewRuntime(cfg.Lib)
	if err != nil {
		return fmt.Errorf("failed to create runtime: %w", err)
	}
	defer runtime.Close()

	version, err := runtime.Version()
	if err != nil {
		return fmt.Errorf("failed to get runtime version: %w", err)
	}

	core, err := runtime.NewCore(cfg.Config, &ov.CoreOptions{
		Logger: logger,
		Hooks:  []ov.Hook{ov.NewSlogHook(logger)},
	})
	if err != nil {
		return fmt.Errorf("failed to create core: %w", err)
	}
	defer core.Close()

	report := &Report{Runtime: version.String()}
	if report.Devices, err = collectDevices(core, cfg.Properties); err != nil {
		return err
	}
	if cfg.Model != "" {
		if report.Model, err = collectModel(core, cfg.Model, cfg.Weights, cfg.Device); err != nil {
			return err
		}
	}

	return writeReport(w, report, cfg.Format)
}
