package openvino

import (
	"github.com/benedoc-inc/ovgo/openvino/internal/api"
)

// DefaultDevice is the device selector used when no device name is given.
// It lets the AUTO plugin pick the target.
const DefaultDevice = "AUTO"

// StatusCode represents status codes returned by the OpenVINO C API.
type StatusCode = api.OvStatus

// Status codes returned by the OpenVINO C API (ov_status_e).
const (
	// StatusOK indicates success.
	StatusOK StatusCode = 0
	// StatusGeneralError indicates a generic failure.
	StatusGeneralError StatusCode = -1
	// StatusNotImplemented indicates the feature is not implemented.
	StatusNotImplemented StatusCode = -2
	// StatusNetworkNotLoaded indicates the model was not loaded.
	StatusNetworkNotLoaded StatusCode = -3
	// StatusParameterMismatch indicates a parameter mismatch.
	StatusParameterMismatch StatusCode = -4
	// StatusNotFound indicates the requested object was not found.
	StatusNotFound StatusCode = -5
	// StatusOutOfBounds indicates an index was out of bounds.
	StatusOutOfBounds StatusCode = -6
	// StatusUnexpected indicates an unexpected exception in the runtime.
	StatusUnexpected StatusCode = -7
	// StatusRequestBusy indicates the infer request is busy.
	StatusRequestBusy StatusCode = -8
	// StatusResultNotReady indicates the result is not ready.
	StatusResultNotReady StatusCode = -9
	// StatusNotAllocated indicates memory was not allocated.
	StatusNotAllocated StatusCode = -10
	// StatusInferNotStarted indicates inference was not started.
	StatusInferNotStarted StatusCode = -11
	// StatusNetworkNotRead indicates the model could not be read.
	StatusNetworkNotRead StatusCode = -12
	// StatusInferCancelled indicates inference was cancelled.
	StatusInferCancelled StatusCode = -13
	// StatusInvalidCParam indicates an invalid argument at the C boundary.
	StatusInvalidCParam StatusCode = -14
	// StatusUnknownCError indicates an unknown error in the C layer.
	StatusUnknownCError StatusCode = -15
	// StatusNotImplementCMethod indicates the C method is not implemented.
	StatusNotImplementCMethod StatusCode = -16
	// StatusUnknownException indicates an unknown exception.
	StatusUnknownException StatusCode = -17
)

// ElementType represents the element type of a tensor (ov_element_type_e).
type ElementType = api.OvElementType

// Element types used by the bindings. Values follow the C enum order.
const (
	// ElementTypeUndefined indicates an undefined element type.
	ElementTypeUndefined ElementType = 0
	// ElementTypeF32 indicates float32 elements.
	ElementTypeF32 ElementType = 5
	// ElementTypeU8 indicates uint8 elements; raw weight buffers use this type.
	ElementTypeU8 ElementType = 14
)
