package openvino

import (
	"fmt"
	"log/slog"
	goruntime "runtime"

	"github.com/benedoc-inc/ovgo/internal/cstrings"
	"github.com/benedoc-inc/ovgo/openvino/internal/api"
)

// Model is a network graph read by a Core but not yet compiled for a device.
// A Model returned alongside an error holds no native handle; Valid reports false.
type Model struct {
	ptr     api.OvModel
	runtime *Runtime
	logger  *slog.Logger
	cleanup goruntime.Cleanup
}

func newModel(r *Runtime, ptr api.OvModel, logger *slog.Logger) *Model {
	m := &Model{ptr: ptr, runtime: r, logger: logger}
	m.cleanup = goruntime.AddCleanup(m, func(p api.OvModel) {
		r.release(func(f api.APIFuncs) { f.ModelFree(p) })
	}, ptr)
	return m
}

// Valid reports whether the Model holds a live native handle and its
// Runtime is still open.
func (m *Model) Valid() bool {
	return m != nil && m.ptr != 0 && m.runtime.loaded()
}

// Close releases the native model. It is safe to call Close multiple times.
func (m *Model) Close() {
	if m.ptr == 0 {
		return
	}
	m.cleanup.Stop()
	ptr := m.ptr
	m.ptr = 0
	m.runtime.release(func(f api.APIFuncs) { f.ModelFree(ptr) })
}

func (m *Model) log() *slog.Logger {
	if m.logger != nil {
		return m.logger
	}
	return m.runtime.log()
}

// FriendlyName returns the model's friendly name.
func (m *Model) FriendlyName() (string, error) {
	if !m.Valid() {
		return "", ErrInvalidModel
	}

	var namePtr *byte
	status := m.runtime.apiFuncs.ModelGetFriendlyName(m.ptr, &namePtr)
	if err := m.runtime.check(m.log(), &CallInfo{Op: "model_get_friendly_name"}, status); err != nil {
		return "", fmt.Errorf("failed to get friendly name: %w", err)
	}
	name := cstrings.CStringToString(namePtr)
	m.runtime.apiFuncs.Free(namePtr)

	return name, nil
}

// InputsSize returns the number of model inputs.
func (m *Model) InputsSize() (int, error) {
	if !m.Valid() {
		return 0, ErrInvalidModel
	}

	var size uintptr
	status := m.runtime.apiFuncs.ModelInputsSize(m.ptr, &size)
	if err := m.runtime.check(m.log(), &CallInfo{Op: "model_inputs_size"}, status); err != nil {
		return 0, fmt.Errorf("failed to get inputs size: %w", err)
	}
	return int(size), nil
}

// OutputsSize returns the number of model outputs.
func (m *Model) OutputsSize() (int, error) {
	if !m.Valid() {
		return 0, ErrInvalidModel
	}

	var size uintptr
	status := m.runtime.apiFuncs.ModelOutputsSize(m.ptr, &size)
	if err := m.runtime.check(m.log(), &CallInfo{Op: "model_outputs_size"}, status); err != nil {
		return 0, fmt.Errorf("failed to get outputs size: %w", err)
	}
	return int(size), nil
}
