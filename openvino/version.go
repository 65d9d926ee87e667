package openvino

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/Masterminds/semver/v3"
	"github.com/benedoc-inc/ovgo/internal/cstrings"
	"github.com/benedoc-inc/ovgo/openvino/internal/api"
)

// Version describes a plugin or runtime version.
// Major, Minor and Patch are parsed from the leading "X.Y.Z" of BuildNumber
// and stay zero when BuildNumber does not start with a version.
type Version struct {
	Major       uint64
	Minor       uint64
	Patch       uint64
	BuildNumber string
	Description string
}

// DeviceVersion pairs a device name with the version of its plugin.
type DeviceVersion struct {
	Device  string
	Version Version
}

// String returns the build number, e.g. "2024.6.0-17404-4c0f47d2335-releases/2024/6".
func (v Version) String() string {
	return v.BuildNumber
}

func newVersion(buildNumber, description string) Version {
	v := Version{BuildNumber: buildNumber, Description: description}

	prefix, _, _ := strings.Cut(buildNumber, "-")
	if sv, err := semver.NewVersion(prefix); err == nil {
		v.Major = sv.Major()
		v.Minor = sv.Minor()
		v.Patch = sv.Patch()
	}
	return v
}

// Versions returns plugin versions for device. A composite name such as
// "HETERO:CPU,GPU" yields one entry per device.
// On failure the returned slice is empty and non-nil.
func (c *Core) Versions(device string) ([]DeviceVersion, error) {
	info := &CallInfo{Op: "core_get_versions_by_device_name", Device: device}
	if !c.Valid() {
		return []DeviceVersion{}, c.reject(info, ErrCoreClosed)
	}

	deviceBytes, err := cstrings.StringToBytes(device)
	if err != nil {
		return []DeviceVersion{}, c.reject(info, err)
	}

	var list api.CoreVersionList
	err = c.invoke(info, func() api.OvStatus {
		return c.runtime.apiFuncs.CoreGetVersionsByDeviceName(c.ptr, &deviceBytes[0], &list)
	})
	if err != nil {
		return []DeviceVersion{}, fmt.Errorf("failed to get versions: %w", err)
	}
	defer c.runtime.apiFuncs.CoreVersionsFree(&list)

	out := make([]DeviceVersion, 0, list.Size)
	if list.Versions != nil && list.Size > 0 {
		for _, cv := range unsafe.Slice(list.Versions, list.Size) {
			out = append(out, DeviceVersion{
				Device: cstrings.CStringToString(cv.DeviceName),
				Version: newVersion(
					cstrings.CStringToString(cv.Version.BuildNumber),
					cstrings.CStringToString(cv.Version.Description),
				),
			})
		}
	}
	return out, nil
}

// Version returns the plugin version for device. When device names several
// devices only the first entry is returned; use Versions for all of them.
// On failure the zero DeviceVersion is returned with the error.
func (c *Core) Version(device string) (DeviceVersion, error) {
	versions, err := c.Versions(device)
	if err != nil {
		return DeviceVersion{}, err
	}
	if len(versions) == 0 {
		return DeviceVersion{}, nil
	}
	return versions[0], nil
}
