package v2

import (
	"fmt"
	"unsafe"

	"github.com/benedoc-inc/ovgo/openvino/internal/api"
	"github.com/ebitengine/purego"
)

var _ api.APIFuncs = (*Funcs)(nil)

// SymbolLookup resolves an exported symbol of the loaded library to its address.
type SymbolLookup func(name string) (uintptr, error)

// Funcs contains cached function pointers to OpenVINO C API functions.
type Funcs struct {
	// Status and common
	getErrorInfo       func(api.OvStatus) unsafe.Pointer
	getOpenvinoVersion func(*api.Version) api.OvStatus
	versionFree        func(*api.Version)
	free               func(*byte)

	// Core
	coreCreate                    func(*api.OvCore) api.OvStatus
	coreCreateWithConfig          func(*byte, *api.OvCore) api.OvStatus
	coreFree                      func(api.OvCore)
	coreReadModel                 func(api.OvCore, *byte, *byte, *api.OvModel) api.OvStatus
	coreReadModelFromMemoryBuffer func(api.OvCore, *byte, uintptr, api.OvTensor, *api.OvModel) api.OvStatus
	coreCompileModel              func(api.OvCore, api.OvModel, *byte, uintptr, *api.OvCompiledModel) api.OvStatus
	coreCompileModelFromFile      func(api.OvCore, *byte, *byte, uintptr, *api.OvCompiledModel) api.OvStatus
	coreGetVersionsByDeviceName   func(api.OvCore, *byte, *api.CoreVersionList) api.OvStatus
	coreVersionsFree              func(*api.CoreVersionList)
	coreGetAvailableDevices       func(api.OvCore, *api.AvailableDevices) api.OvStatus
	availableDevicesFree          func(*api.AvailableDevices)
	coreGetProperty               func(api.OvCore, *byte, *byte, **byte) api.OvStatus

	// Model
	modelFree            func(api.OvModel)
	modelGetFriendlyName func(api.OvModel, **byte) api.OvStatus
	modelInputsSize      func(api.OvModel, *uintptr) api.OvStatus
	modelOutputsSize     func(api.OvModel, *uintptr) api.OvStatus

	// Compiled model
	compiledModelFree        func(api.OvCompiledModel)
	compiledModelInputsSize  func(api.OvCompiledModel, *uintptr) api.OvStatus
	compiledModelOutputsSize func(api.OvCompiledModel, *uintptr) api.OvStatus

	// Tensor. ov_tensor_create_from_host_ptr takes ov_shape_t by value,
	// so its signature is platform specific (see tensor_*.go).
	tensorFuncs
	tensorFree func(api.OvTensor)
}

type binding struct {
	symbol string
	fptr   any
}

// bindings lists every C symbol the bindings call, paired with its slot in f.
func (f *Funcs) bindings() []binding {
	return []binding{
		{"ov_get_error_info", &f.getErrorInfo},
		{"ov_get_openvino_version", &f.getOpenvinoVersion},
		{"ov_version_free", &f.versionFree},
		{"ov_free", &f.free},

		{"ov_core_create", &f.coreCreate},
		{"ov_core_create_with_config", &f.coreCreateWithConfig},
		{"ov_core_free", &f.coreFree},
		{"ov_core_read_model", &f.coreReadModel},
		{"ov_core_read_model_from_memory_buffer", &f.coreReadModelFromMemoryBuffer},
		// ov_core_compile_model and ov_core_compile_model_from_file are
		// variadic; they are always called with zero property arguments.
		{"ov_core_compile_model", &f.coreCompileModel},
		{"ov_core_compile_model_from_file", &f.coreCompileModelFromFile},
		{"ov_core_get_versions_by_device_name", &f.coreGetVersionsByDeviceName},
		{"ov_core_versions_free", &f.coreVersionsFree},
		{"ov_core_get_available_devices", &f.coreGetAvailableDevices},
		{"ov_available_devices_free", &f.availableDevicesFree},
		{"ov_core_get_property", &f.coreGetProperty},

		{"ov_model_free", &f.modelFree},
		{"ov_model_get_friendly_name", &f.modelGetFriendlyName},
		{"ov_model_inputs_size", &f.modelInputsSize},
		{"ov_model_outputs_size", &f.modelOutputsSize},

		{"ov_compiled_model_free", &f.compiledModelFree},
		{"ov_compiled_model_inputs_size", &f.compiledModelInputsSize},
		{"ov_compiled_model_outputs_size", &f.compiledModelOutputsSize},

		{"ov_tensor_create_from_host_ptr", &f.tensorCreateFromHostPtr},
		{"ov_tensor_free", &f.tensorFree},
	}
}

// BoundSymbols returns the names of all C symbols InitializeFuncs binds.
func BoundSymbols() []string {
	bs := (&Funcs{}).bindings()
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.symbol
	}
	return names
}

// InitializeFuncs resolves and registers every function pointer up front,
// so a library missing a symbol fails here instead of on first use.
func InitializeFuncs(lookup SymbolLookup) (*Funcs, error) {
	funcs := &Funcs{}
	for _, b := range funcs.bindings() {
		addr, err := lookup(b.symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", b.symbol, err)
		}
		if addr == 0 {
			return nil, fmt.Errorf("symbol %s not found", b.symbol)
		}
		purego.RegisterFunc(b.fptr, addr)
	}
	return funcs, nil
}

// Status and common methods

func (f *Funcs) GetErrorInfo(status api.OvStatus) unsafe.Pointer {
	return f.getErrorInfo(status)
}

func (f *Funcs) GetOpenvinoVersion(version *api.Version) api.OvStatus {
	return f.getOpenvinoVersion(version)
}

func (f *Funcs) VersionFree(version *api.Version) {
	f.versionFree(version)
}

func (f *Funcs) Free(content *byte) {
	f.free(content)
}

// Core methods

func (f *Funcs) CoreCreate(core *api.OvCore) api.OvStatus {
	return f.coreCreate(core)
}

func (f *Funcs) CoreCreateWithConfig(xmlConfigFile *byte, core *api.OvCore) api.OvStatus {
	return f.coreCreateWithConfig(xmlConfigFile, core)
}

func (f *Funcs) CoreFree(core api.OvCore) {
	f.coreFree(core)
}

func (f *Funcs) CoreReadModel(core api.OvCore, modelPath, binPath *byte, model *api.OvModel) api.OvStatus {
	return f.coreReadModel(core, modelPath, binPath, model)
}

func (f *Funcs) CoreReadModelFromMemoryBuffer(core api.OvCore, modelStr *byte, strLen uintptr, weights api.OvTensor, model *api.OvModel) api.OvStatus {
	return f.coreReadModelFromMemoryBuffer(core, modelStr, strLen, weights, model)
}

func (f *Funcs) CoreCompileModel(core api.OvCore, model api.OvModel, deviceName *byte, propertyArgsSize uintptr, compiledModel *api.OvCompiledModel) api.OvStatus {
	return f.coreCompileModel(core, model, deviceName, propertyArgsSize, compiledModel)
}

func (f *Funcs) CoreCompileModelFromFile(core api.OvCore, modelPath, deviceName *byte, propertyArgsSize uintptr, compiledModel *api.OvCompiledModel) api.OvStatus {
	return f.coreCompileModelFromFile(core, modelPath, deviceName, propertyArgsSize, compiledModel)
}

func (f *Funcs) CoreGetVersionsByDeviceName(core api.OvCore, deviceName *byte, versions *api.CoreVersionList) api.OvStatus {
	return f.coreGetVersionsByDeviceName(core, deviceName, versions)
}

func (f *Funcs) CoreVersionsFree(versions *api.CoreVersionList) {
	f.coreVersionsFree(versions)
}

func (f *Funcs) CoreGetAvailableDevices(core api.OvCore, devices *api.AvailableDevices) api.OvStatus {
	return f.coreGetAvailableDevices(core, devices)
}

func (f *Funcs) AvailableDevicesFree(devices *api.AvailableDevices) {
	f.availableDevicesFree(devices)
}

func (f *Funcs) CoreGetProperty(core api.OvCore, deviceName, propertyKey *byte, propertyValue **byte) api.OvStatus {
	return f.coreGetProperty(core, deviceName, propertyKey, propertyValue)
}

// Model methods

func (f *Funcs) ModelFree(model api.OvModel) {
	f.modelFree(model)
}

func (f *Funcs) ModelGetFriendlyName(model api.OvModel, friendlyName **byte) api.OvStatus {
	return f.modelGetFriendlyName(model, friendlyName)
}

func (f *Funcs) ModelInputsSize(model api.OvModel, size *uintptr) api.OvStatus {
	return f.modelInputsSize(model, size)
}

func (f *Funcs) ModelOutputsSize(model api.OvModel, size *uintptr) api.OvStatus {
	return f.modelOutputsSize(model, size)
}

// Compiled model methods

func (f *Funcs) CompiledModelFree(compiledModel api.OvCompiledModel) {
	f.compiledModelFree(compiledModel)
}

func (f *Funcs) CompiledModelInputsSize(compiledModel api.OvCompiledModel, size *uintptr) api.OvStatus {
	return f.compiledModelInputsSize(compiledModel, size)
}

func (f *Funcs) CompiledModelOutputsSize(compiledModel api.OvCompiledModel, size *uintptr) api.OvStatus {
	return f.compiledModelOutputsSize(compiledModel, size)
}

// Tensor methods

func (f *Funcs) TensorFree(tensor api.OvTensor) {
	f.tensorFree(tensor)
}
