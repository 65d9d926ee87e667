//go:build !windows

package openvino

import (
	goruntime "runtime"

	"github.com/ebitengine/purego"
)

func defaultLibraryName() string {
	if goruntime.GOOS == "darwin" {
		return "libopenvino_c.dylib"
	}
	return "libopenvino_c.so"
}

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}
