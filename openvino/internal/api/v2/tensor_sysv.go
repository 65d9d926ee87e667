//go:build !windows

package v2

import (
	"unsafe"

	"github.com/benedoc-inc/ovgo/openvino/internal/api"
)

// A two-word struct passed by value travels in two integer registers on the
// System V amd64 and AAPCS64 ABIs, so ov_shape_t is split into its fields.
type tensorFuncs struct {
	tensorCreateFromHostPtr func(api.OvElementType, int64, *int64, unsafe.Pointer, *api.OvTensor) api.OvStatus
}

func (f *Funcs) TensorCreateFromHostPtr(elementType api.OvElementType, shape api.Shape, hostPtr unsafe.Pointer, tensor *api.OvTensor) api.OvStatus {
	return f.tensorCreateFromHostPtr(elementType, shape.Rank, shape.Dims, hostPtr, tensor)
}
