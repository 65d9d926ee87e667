package openvino

import (
	"fmt"
	"log/slog"
	goruntime "runtime"

	"github.com/benedoc-inc/ovgo/openvino/internal/api"
)

// CompiledModel is a model compiled for a specific device and ready for execution.
// A CompiledModel returned alongside an error holds no native handle; Valid reports false.
type CompiledModel struct {
	ptr     api.OvCompiledModel
	runtime *Runtime
	logger  *slog.Logger
	cleanup goruntime.Cleanup
	device  string
}

func newCompiledModel(r *Runtime, ptr api.OvCompiledModel, device string, logger *slog.Logger) *CompiledModel {
	cm := &CompiledModel{ptr: ptr, runtime: r, logger: logger, device: device}
	cm.cleanup = goruntime.AddCleanup(cm, func(p api.OvCompiledModel) {
		r.release(func(f api.APIFuncs) { f.CompiledModelFree(p) })
	}, ptr)
	return cm
}

// Valid reports whether the CompiledModel holds a live native handle and
// its Runtime is still open.
func (cm *CompiledModel) Valid() bool {
	return cm != nil && cm.ptr != 0 && cm.runtime.loaded()
}

// Device returns the device name the model was compiled for, as requested.
func (cm *CompiledModel) Device() string {
	return cm.device
}

// Close releases the native compiled model. It is safe to call Close multiple times.
func (cm *CompiledModel) Close() {
	if cm.ptr == 0 {
		return
	}
	cm.cleanup.Stop()
	ptr := cm.ptr
	cm.ptr = 0
	cm.runtime.release(func(f api.APIFuncs) { f.CompiledModelFree(ptr) })
}

func (cm *CompiledModel) log() *slog.Logger {
	if cm.logger != nil {
		return cm.logger
	}
	return cm.runtime.log()
}

// InputsSize returns the number of inputs of the compiled model.
func (cm *CompiledModel) InputsSize() (int, error) {
	if !cm.Valid() {
		return 0, ErrInvalidModel
	}

	var size uintptr
	status := cm.runtime.apiFuncs.CompiledModelInputsSize(cm.ptr, &size)
	info := &CallInfo{Op: "compiled_model_inputs_size", Device: cm.device}
	if err := cm.runtime.check(cm.log(), info, status); err != nil {
		return 0, fmt.Errorf("failed to get inputs size: %w", err)
	}
	return int(size), nil
}

// OutputsSize returns the number of outputs of the compiled model.
func (cm *CompiledModel) OutputsSize() (int, error) {
	if !cm.Valid() {
		return 0, ErrInvalidModel
	}

	var size uintptr
	status := cm.runtime.apiFuncs.CompiledModelOutputsSize(cm.ptr, &size)
	info := &CallInfo{Op: "compiled_model_outputs_size", Device: cm.device}
	if err := cm.runtime.check(cm.log(), info, status); err != nil {
		return 0, fmt.Errorf("failed to get outputs size: %w", err)
	}
	return int(size), nil
}
