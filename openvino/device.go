package openvino

import (
	"fmt"

	"github.com/benedoc-inc/ovgo/internal/cstrings"
	"github.com/benedoc-inc/ovgo/openvino/internal/api"
)

// Common read-only device property keys for Property.
const (
	PropertyFullDeviceName           = "FULL_DEVICE_NAME"
	PropertyAvailableDevices         = "AVAILABLE_DEVICES"
	PropertyOptimizationCapabilities = "OPTIMIZATION_CAPABILITIES"
	PropertySupportedProperties      = "SUPPORTED_PROPERTIES"
)

// AvailableDevices returns the devices available for inference, such as
// [CPU GPU.0 GPU.1 NPU]. Devices of the same type are numbered with a .N
// suffix; the names can be passed to CompileModel.
//
// The result is never nil: a Core with no plugins, or a failed call,
// yields an empty slice.
func (c *Core) AvailableDevices() ([]string, error) {
	info := &CallInfo{Op: "core_get_available_devices"}
	if !c.Valid() {
		return []string{}, c.reject(info, ErrCoreClosed)
	}

	var devices api.AvailableDevices
	err := c.invoke(info, func() api.OvStatus {
		return c.runtime.apiFuncs.CoreGetAvailableDevices(c.ptr, &devices)
	})
	if err != nil {
		return []string{}, fmt.Errorf("failed to get available devices: %w", err)
	}
	defer c.runtime.apiFuncs.AvailableDevicesFree(&devices)

	return cstrings.CStringArrayToStrings(devices.Devices, int(devices.Size)), nil
}

// Property returns a device property as a string, e.g.
// core.Property("CPU", PropertyFullDeviceName).
func (c *Core) Property(device, key string) (string, error) {
	info := &CallInfo{Op: "core_get_property", Device: device}
	if !c.Valid() {
		return "", c.reject(info, ErrCoreClosed)
	}

	deviceBytes, err := cstrings.StringToBytes(device)
	if err != nil {
		return "", c.reject(info, err)
	}
	keyBytes, err := cstrings.StringToBytes(key)
	if err != nil {
		return "", c.reject(info, err)
	}

	var valuePtr *byte
	err = c.invoke(info, func() api.OvStatus {
		return c.runtime.apiFuncs.CoreGetProperty(c.ptr, &deviceBytes[0], &keyBytes[0], &valuePtr)
	})
	if err != nil {
		return "", fmt.Errorf("failed to get property %s: %w", key, err)
	}

	value := cstrings.CStringToString(valuePtr)
	c.runtime.apiFuncs.Free(valuePtr)
	return value, nil
}
