package openvino

import (
	"fmt"
	goruntime "runtime"
	"unsafe"

	"github.com/benedoc-inc/ovgo/openvino/internal/api"
)

// Tensor is a one-dimensional u8 tensor over caller-owned host memory,
// used to pass model weights to ReadModelFromMemory.
//
// The tensor does not copy data. The buffer is pinned until Close and must
// not be modified while the tensor, or any model read with it, is alive.
type Tensor struct {
	ptr     api.OvTensor
	runtime *Runtime
	data    []byte
	pinner  *goruntime.Pinner
	cleanup goruntime.Cleanup
}

type tensorRelease struct {
	runtime *Runtime
	ptr     api.OvTensor
	pinner  *goruntime.Pinner
}

// NewTensorFromBytes wraps data in a u8 tensor of shape [len(data)].
func (r *Runtime) NewTensorFromBytes(data []byte) (*Tensor, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("tensor data cannot be empty")
	}
	if !r.loaded() {
		return nil, ErrRuntimeClosed
	}

	pinner := &goruntime.Pinner{}
	pinner.Pin(&data[0])

	dims := []int64{int64(len(data))}
	shape := api.Shape{Rank: 1, Dims: &dims[0]}

	var tensorPtr api.OvTensor
	status := r.apiFuncs.TensorCreateFromHostPtr(ElementTypeU8, shape, unsafe.Pointer(&data[0]), &tensorPtr)
	if err := r.check(r.log(), &CallInfo{Op: "tensor_create_from_host_ptr"}, status); err != nil {
		pinner.Unpin()
		return nil, fmt.Errorf("failed to create tensor: %w", err)
	}

	t := &Tensor{
		ptr:     tensorPtr,
		runtime: r,
		data:    data,
		pinner:  pinner,
	}
	t.cleanup = goruntime.AddCleanup(t, func(rel tensorRelease) {
		rel.runtime.release(func(f api.APIFuncs) { f.TensorFree(rel.ptr) })
		rel.pinner.Unpin()
	}, tensorRelease{runtime: r, ptr: tensorPtr, pinner: pinner})

	return t, nil
}

// Len returns the number of bytes in the tensor.
func (t *Tensor) Len() int {
	return len(t.data)
}

// Close releases the native tensor and unpins its buffer.
// It is safe to call Close multiple times.
func (t *Tensor) Close() {
	if t.ptr == 0 {
		return
	}
	t.cleanup.Stop()
	ptr := t.ptr
	t.ptr = 0
	t.runtime.release(func(f api.APIFuncs) { f.TensorFree(ptr) })
	t.pinner.Unpin()
	t.data = nil
}
