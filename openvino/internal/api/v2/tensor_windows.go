//go:build windows

package v2

import (
	"unsafe"

	"github.com/benedoc-inc/ovgo/openvino/internal/api"
)

// The Windows x64 ABI passes structs larger than 8 bytes by reference.
type tensorFuncs struct {
	tensorCreateFromHostPtr func(api.OvElementType, *api.Shape, unsafe.Pointer, *api.OvTensor) api.OvStatus
}

func (f *Funcs) TensorCreateFromHostPtr(elementType api.OvElementType, shape api.Shape, hostPtr unsafe.Pointer, tensor *api.OvTensor) api.OvStatus {
	return f.tensorCreateFromHostPtr(elementType, &shape, hostPtr, tensor)
}
