package api

import "unsafe"

// OvCore is an opaque pointer to an OpenVINO ov_core_t.
type OvCore uintptr

// OvModel is an opaque pointer to an OpenVINO ov_model_t.
type OvModel uintptr

// OvCompiledModel is an opaque pointer to an OpenVINO ov_compiled_model_t.
type OvCompiledModel uintptr

// OvTensor is an opaque pointer to an OpenVINO ov_tensor_t.
type OvTensor uintptr

// OvStatus mirrors the ov_status_e enum returned by every fallible call.
type OvStatus int32

// OvElementType mirrors the ov_element_type_e enum.
type OvElementType int32

// AvailableDevices mirrors ov_available_devices_t.
type AvailableDevices struct {
	Devices **byte
	Size    uintptr
}

// Version mirrors ov_version_t.
type Version struct {
	BuildNumber *byte
	Description *byte
}

// CoreVersion mirrors ov_core_version_t.
type CoreVersion struct {
	DeviceName *byte
	Version    Version
}

// CoreVersionList mirrors ov_core_version_list_t.
type CoreVersionList struct {
	Versions *CoreVersion
	Size     uintptr
}

// Shape mirrors ov_shape_t.
type Shape struct {
	Rank int64
	Dims *int64
}

// APIFuncs is an interface for the OpenVINO C API functions used by the bindings.
type APIFuncs interface {
	// Status and common
	GetErrorInfo(OvStatus) unsafe.Pointer
	GetOpenvinoVersion(*Version) OvStatus
	VersionFree(*Version)
	Free(*byte)

	// Core
	CoreCreate(*OvCore) OvStatus
	CoreCreateWithConfig(*byte, *OvCore) OvStatus
	CoreFree(OvCore)
	CoreReadModel(OvCore, *byte, *byte, *OvModel) OvStatus
	CoreReadModelFromMemoryBuffer(OvCore, *byte, uintptr, OvTensor, *OvModel) OvStatus
	CoreCompileModel(OvCore, OvModel, *byte, uintptr, *OvCompiledModel) OvStatus
	CoreCompileModelFromFile(OvCore, *byte, *byte, uintptr, *OvCompiledModel) OvStatus
	CoreGetVersionsByDeviceName(OvCore, *byte, *CoreVersionList) OvStatus
	CoreVersionsFree(*CoreVersionList)
	CoreGetAvailableDevices(OvCore, *AvailableDevices) OvStatus
	AvailableDevicesFree(*AvailableDevices)
	CoreGetProperty(OvCore, *byte, *byte, **byte) OvStatus

	// Model
	ModelFree(OvModel)
	ModelGetFriendlyName(OvModel, **byte) OvStatus
	ModelInputsSize(OvModel, *uintptr) OvStatus
	ModelOutputsSize(OvModel, *uintptr) OvStatus

	// Compiled model
	CompiledModelFree(OvCompiledModel)
	CompiledModelInputsSize(OvCompiledModel, *uintptr) OvStatus
	CompiledModelOutputsSize(OvCompiledModel, *uintptr) OvStatus

	// Tensor
	TensorCreateFromHostPtr(OvElementType, Shape, unsafe.Pointer, *OvTensor) OvStatus
	TensorFree(OvTensor)
}
