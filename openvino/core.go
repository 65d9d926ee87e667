package openvino

import (
	"fmt"
	"log/slog"
	goruntime "runtime"
	"time"

	"github.com/benedoc-inc/ovgo/internal/cstrings"
	"github.com/benedoc-inc/ovgo/labels"
	"github.com/benedoc-inc/ovgo/openvino/internal/api"
)

// LabelReader extracts class label names embedded in a model file.
// Read must never fail; it returns nil when no labels can be found.
type LabelReader interface {
	Read(modelPath string) []string
}

// LabelReaderFunc adapts a function into a LabelReader.
type LabelReaderFunc func(modelPath string) []string

// Read calls f(modelPath).
func (f LabelReaderFunc) Read(modelPath string) []string { return f(modelPath) }

// CoreOptions configures a Core.
type CoreOptions struct {
	// Logger receives a Debug record for every failed native call.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Hooks are invoked around every native call made by the Core.
	Hooks []Hook

	// LabelReader is consulted by ReadModel. If nil, labels.DefaultReader is used.
	LabelReader LabelReader
}

func (o *CoreOptions) logger() *slog.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o *CoreOptions) hooks() []Hook {
	if o != nil {
		return o.Hooks
	}
	return nil
}

func (o *CoreOptions) labelReader() LabelReader {
	if o != nil && o.LabelReader != nil {
		return o.LabelReader
	}
	return labels.DefaultReader
}

// Core represents an OpenVINO runtime core entity (ov_core_t).
//
// A Core whose creation failed holds no native handle; Valid reports false
// and every operation returns ErrCoreClosed. Several Core instances can
// coexist, but each loads its own plugins, so one per application is the
// recommended setup.
//
// A Core is NOT safe for concurrent use from multiple goroutines.
type Core struct {
	ptr     api.OvCore
	runtime *Runtime
	cleanup goruntime.Cleanup

	logger      *slog.Logger
	hooks       []Hook
	labelReader LabelReader
	labelNames  []string
}

// NewCore creates a Core. If configPath is non-empty, plugins are described
// by that XML file (ov_core_create_with_config); otherwise the default
// plugins.xml next to the library, or the static configuration, is used.
//
// On failure NewCore returns both an error and a non-nil Core with no native
// handle, so callers that ignore the error hold an invalid Core rather than nil.
func (r *Runtime) NewCore(configPath string, opts *CoreOptions) (*Core, error) {
	core := &Core{
		runtime:     r,
		logger:      opts.logger(),
		hooks:       opts.hooks(),
		labelReader: opts.labelReader(),
	}
	info := &CallInfo{Op: "core_create"}
	if configPath != "" {
		info = &CallInfo{Op: "core_create_with_config", Path: configPath}
	}
	if !r.loaded() {
		return core, fmt.Errorf("failed to create core: %w", core.reject(info, ErrRuntimeClosed))
	}

	var corePtr api.OvCore
	var err error
	if configPath != "" {
		configBytes, cerr := cstrings.StringToBytes(configPath)
		if cerr != nil {
			return core, fmt.Errorf("failed to create core: %w", core.reject(info, cerr))
		}
		err = core.invoke(info, func() api.OvStatus {
			return r.apiFuncs.CoreCreateWithConfig(&configBytes[0], &corePtr)
		})
	} else {
		err = core.invoke(info, func() api.OvStatus {
			return r.apiFuncs.CoreCreate(&corePtr)
		})
	}
	if err != nil {
		return core, fmt.Errorf("failed to create core: %w", err)
	}

	core.ptr = corePtr
	core.cleanup = goruntime.AddCleanup(core, func(p api.OvCore) {
		r.release(func(f api.APIFuncs) { f.CoreFree(p) })
	}, corePtr)

	return core, nil
}

// Valid reports whether the Core holds a live native handle and its
// Runtime is still open.
func (c *Core) Valid() bool {
	return c != nil && c.ptr != 0 && c.runtime.loaded()
}

// Close releases the native core. It is safe to call Close multiple times,
// and after the Runtime has been closed.
func (c *Core) Close() {
	if c.ptr == 0 {
		return
	}
	c.cleanup.Stop()
	ptr := c.ptr
	c.ptr = 0
	c.runtime.release(func(f api.APIFuncs) { f.CoreFree(ptr) })
}

// LabelNames returns the class labels found in the model file passed to the
// last ReadModel call, or nil when the file carried none.
func (c *Core) LabelNames() []string {
	return c.labelNames
}

// invoke runs one native call, notifying hooks and converting its status.
// A failure is written to the debug log.
func (c *Core) invoke(info *CallInfo, call func() api.OvStatus) error {
	for _, h := range c.hooks {
		h.BeforeCall(info)
	}

	start := time.Now()
	status := call()
	info.Duration = time.Since(start)
	c.runtime.check(c.logger, info, status)

	for _, h := range c.hooks {
		h.AfterCall(info)
	}
	return info.Err
}

// reject records a call refused before reaching the native library.
// Hooks see it like a failed native call with zero duration.
func (c *Core) reject(info *CallInfo, err error) error {
	for _, h := range c.hooks {
		h.BeforeCall(info)
	}

	info.Err = err
	logFailure(c.logger, info)

	for _, h := range c.hooks {
		h.AfterCall(info)
	}
	return err
}

// ReadModel reads a model from an IR / ONNX / PDPD / TF / TFLite file.
//
// For IR models weightsPath names the .bin file; if it is empty, the native
// layer looks for a .bin file with the same stem as the .xml and loads the
// IR without weights when none exists. For the other formats weightsPath
// is ignored.
//
// ReadModel also scans the file for embedded label names, available
// afterwards from LabelNames.
//
// On failure the returned Model is non-nil and invalid.
func (c *Core) ReadModel(modelPath, weightsPath string) (*Model, error) {
	c.labelNames = c.labelReader.Read(modelPath)

	info := &CallInfo{Op: "core_read_model", Path: modelPath}
	if !c.Valid() {
		return &Model{runtime: c.runtime}, c.reject(info, ErrCoreClosed)
	}

	modelPathBytes, err := cstrings.StringToBytes(modelPath)
	if err != nil {
		return &Model{runtime: c.runtime}, c.reject(info, err)
	}
	weightsPathBytes, err := cstrings.StringToBytes(weightsPath)
	if err != nil {
		return &Model{runtime: c.runtime}, c.reject(info, err)
	}

	var modelPtr api.OvModel
	err = c.invoke(info, func() api.OvStatus {
		return c.runtime.apiFuncs.CoreReadModel(c.ptr, &modelPathBytes[0], &weightsPathBytes[0], &modelPtr)
	})
	if err != nil {
		return &Model{runtime: c.runtime}, fmt.Errorf("failed to read model: %w", err)
	}

	return newModel(c.runtime, modelPtr, c.logger), nil
}

// ReadModelFromMemory reads a model from its serialized form (for example
// IR XML text or ONNX bytes). weights may be nil for formats that carry
// their own weights.
//
// The model shares memory with weights: keep weights open for as long as
// the model, or any model compiled from it, is in use.
//
// On failure the returned Model is non-nil and invalid.
func (c *Core) ReadModelFromMemory(model []byte, weights *Tensor) (*Model, error) {
	info := &CallInfo{Op: "core_read_model_from_memory_buffer"}
	if !c.Valid() {
		return &Model{runtime: c.runtime}, c.reject(info, ErrCoreClosed)
	}
	if len(model) == 0 {
		return &Model{runtime: c.runtime}, c.reject(info, fmt.Errorf("model data cannot be empty"))
	}

	var weightsPtr api.OvTensor
	if weights != nil {
		if weights.ptr == 0 {
			return &Model{runtime: c.runtime}, c.reject(info, ErrTensorClosed)
		}
		weightsPtr = weights.ptr
	}

	var modelPtr api.OvModel
	err := c.invoke(info, func() api.OvStatus {
		return c.runtime.apiFuncs.CoreReadModelFromMemoryBuffer(c.ptr, &model[0], uintptr(len(model)), weightsPtr, &modelPtr)
	})
	if err != nil {
		return &Model{runtime: c.runtime}, fmt.Errorf("failed to read model from memory: %w", err)
	}

	return newModel(c.runtime, modelPtr, c.logger), nil
}

// CompileModel compiles model for device. An empty device selects DefaultDevice ("AUTO").
// Many compiled models can be created from one Core and used simultaneously,
// up to the limits of the hardware.
//
// On failure the returned CompiledModel is non-nil and invalid.
func (c *Core) CompileModel(model *Model, device string) (*CompiledModel, error) {
	if device == "" {
		device = DefaultDevice
	}

	info := &CallInfo{Op: "core_compile_model", Device: device}
	if !c.Valid() {
		return &CompiledModel{runtime: c.runtime}, c.reject(info, ErrCoreClosed)
	}
	if !model.Valid() {
		return &CompiledModel{runtime: c.runtime}, c.reject(info, ErrInvalidModel)
	}

	deviceBytes, err := cstrings.StringToBytes(device)
	if err != nil {
		return &CompiledModel{runtime: c.runtime}, c.reject(info, err)
	}

	var compiledPtr api.OvCompiledModel
	err = c.invoke(info, func() api.OvStatus {
		return c.runtime.apiFuncs.CoreCompileModel(c.ptr, model.ptr, &deviceBytes[0], 0, &compiledPtr)
	})
	if err != nil {
		return &CompiledModel{runtime: c.runtime}, fmt.Errorf("failed to compile model: %w", err)
	}

	return newCompiledModel(c.runtime, compiledPtr, device, c.logger), nil
}

// CompileModelFromFile reads and compiles a model file in one step. An empty
// device selects DefaultDevice ("AUTO"). This can be faster than ReadModel
// followed by CompileModel, especially when model caching is enabled.
//
// On failure the returned CompiledModel is non-nil and invalid.
func (c *Core) CompileModelFromFile(modelPath, device string) (*CompiledModel, error) {
	if device == "" {
		device = DefaultDevice
	}

	info := &CallInfo{Op: "core_compile_model_from_file", Device: device, Path: modelPath}
	if !c.Valid() {
		return &CompiledModel{runtime: c.runtime}, c.reject(info, ErrCoreClosed)
	}

	modelPathBytes, err := cstrings.StringToBytes(modelPath)
	if err != nil {
		return &CompiledModel{runtime: c.runtime}, c.reject(info, err)
	}
	deviceBytes, err := cstrings.StringToBytes(device)
	if err != nil {
		return &CompiledModel{runtime: c.runtime}, c.reject(info, err)
	}

	var compiledPtr api.OvCompiledModel
	err = c.invoke(info, func() api.OvStatus {
		return c.runtime.apiFuncs.CoreCompileModelFromFile(c.ptr, &modelPathBytes[0], &deviceBytes[0], 0, &compiledPtr)
	})
	if err != nil {
		return &CompiledModel{runtime: c.runtime}, fmt.Errorf("failed to compile model: %w", err)
	}

	return newCompiledModel(c.runtime, compiledPtr, device, c.logger), nil
}
