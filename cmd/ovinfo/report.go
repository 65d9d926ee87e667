package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	ov "github.com/benedoc-inc/ovgo/openvino"
)

// Report is everything ovinfo learned about the runtime.
type Report struct {
	Runtime string         `json:"runtime" yaml:"runtime"`
	Devices []DeviceReport `json:"devices" yaml:"devices"`
	Model   *ModelReport   `json:"model,omitempty" yaml:"model,omitempty"`
}

type DeviceReport struct {
	Name       string            `json:"name" yaml:"name"`
	Plugins    []PluginReport    `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type PluginReport struct {
	Device      string `json:"device" yaml:"device"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
}

type ModelReport struct {
	Path           string   `json:"path" yaml:"path"`
	Name           string   `json:"name" yaml:"name"`
	Inputs         int      `json:"inputs" yaml:"inputs"`
	Outputs        int      `json:"outputs" yaml:"outputs"`
	Labels         []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	CompiledDevice string   `json:"compiled_device" yaml:"compiled_device"`
}

// collectDevices queries every available device. Per-device failures are
// left out of the report instead of aborting it.
func collectDevices(core *ov.Core, properties []string) ([]DeviceReport, error) {
	devices, err := core.AvailableDevices()
	if err != nil {
		return nil, fmt.Errorf("failed to get available devices: %w", err)
	}

	reports := make([]DeviceReport, 0, len(devices))
	for _, device := range devices {
		dr := DeviceReport{Name: device}

		versions, _ := core.Versions(device)
		for _, v := range versions {
			dr.Plugins = append(dr.Plugins, PluginReport{
				Device:      v.Device,
				Version:     v.Version.String(),
				Description: v.Version.Description,
			})
		}

		for _, key := range properties {
			value, err := core.Property(device, key)
			if err != nil {
				continue
			}
			if dr.Properties == nil {
				dr.Properties = make(map[string]string)
			}
			dr.Properties[key] = value
		}
		reports = append(reports, dr)
	}
	return reports, nil
}

func collectModel(core *ov.Core, modelPath, weightsPath, device string) (*ModelReport, error) {
	model, err := core.ReadModel(modelPath, weightsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}
	defer model.Close()

	mr := &ModelReport{Path: modelPath, Labels: core.LabelNames()}
	if mr.Name, err = model.FriendlyName(); err != nil {
		return nil, fmt.Errorf("failed to get model name: %w", err)
	}
	if mr.Inputs, err = model.InputsSize(); err != nil {
		return nil, fmt.Errorf("failed to get inputs size: %w", err)
	}
	if mr.Outputs, err = model.OutputsSize(); err != nil {
		return nil, fmt.Errorf("failed to get outputs size: %w", err)
	}

	compiled, err := core.CompileModel(model, device)
	if err != nil {
		return nil, fmt.Errorf("failed to compile model: %w", err)
	}
	defer compiled.Close()
	mr.CompiledDevice = compiled.Device()

	return mr, nil
}

// writeReport renders r as text, json or yaml.
func writeReport(w io.Writer, r *Report, format string) error {
	switch format {
	case "", "text":
		writeText(w, r)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, r *Report) {
	fmt.Fprintf(w, "OpenVINO Runtime %s\n", r.Runtime)

	fmt.Fprintln(w, "\n=== Devices ===")
	if len(r.Devices) == 0 {
		fmt.Fprintln(w, "(none)")
	}
	for _, d := range r.Devices {
		fmt.Fprintln(w, d.Name)
		for _, p := range d.Plugins {
			fmt.Fprintf(w, "    %s: %s (%s)\n", p.Device, p.Version, p.Description)
		}
		for _, key := range slices.Sorted(maps.Keys(d.Properties)) {
			fmt.Fprintf(w, "    %s: %s\n", key, d.Properties[key])
		}
	}

	if r.Model == nil {
		return
	}
	m := r.Model
	fmt.Fprintln(w, "\n=== Model ===")
	fmt.Fprintf(w, "Path:     %s\n", m.Path)
	fmt.Fprintf(w, "Name:     %s\n", m.Name)
	fmt.Fprintf(w, "Inputs:   %d\n", m.Inputs)
	fmt.Fprintf(w, "Outputs:  %d\n", m.Outputs)
	if len(m.Labels) > 0 {
		fmt.Fprintf(w, "Labels:   %s\n", strings.Join(m.Labels, ", "))
	}
	fmt.Fprintf(w, "Compiled: %s\n", m.CompiledDevice)
}
