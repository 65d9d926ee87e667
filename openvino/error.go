package openvino

import (
	"errors"
	"fmt"
)

var (
	// ErrRuntimeClosed is returned when the Runtime that owns an object has
	// been closed and its library unloaded.
	ErrRuntimeClosed = errors.New("runtime is closed")

	// ErrCoreClosed is returned when an operation is attempted on a closed
	// or never successfully created Core.
	ErrCoreClosed = errors.New("core is closed")

	// ErrInvalidModel is returned when a nil, failed or closed Model or
	// CompiledModel is used.
	ErrInvalidModel = errors.New("model is invalid")

	// ErrTensorClosed is returned when a closed Tensor is used.
	ErrTensorClosed = errors.New("tensor is closed")
)

// StatusError represents a non-OK status returned from the OpenVINO C API.
type StatusError struct {
	// Op is the native operation that failed, e.g. "core_read_model".
	Op      string
	Code    StatusCode
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("openvino %s failed (%s)", e.Op, statusCodeName(e.Code))
	}
	return fmt.Sprintf("openvino %s failed (%s): %s", e.Op, statusCodeName(e.Code), e.Message)
}

// IsStatus reports whether err wraps a StatusError with the given code.
func IsStatus(err error, code StatusCode) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// statusCodeName returns a human-readable name for a status code.
func statusCodeName(code StatusCode) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusGeneralError:
		return "GENERAL_ERROR"
	case StatusNotImplemented:
		return "NOT_IMPLEMENTED"
	case StatusNetworkNotLoaded:
		return "NETWORK_NOT_LOADED"
	case StatusParameterMismatch:
		return "PARAMETER_MISMATCH"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusOutOfBounds:
		return "OUT_OF_BOUNDS"
	case StatusUnexpected:
		return "UNEXPECTED"
	case StatusRequestBusy:
		return "REQUEST_BUSY"
	case StatusResultNotReady:
		return "RESULT_NOT_READY"
	case StatusNotAllocated:
		return "NOT_ALLOCATED"
	case StatusInferNotStarted:
		return "INFER_NOT_STARTED"
	case StatusNetworkNotRead:
		return "NETWORK_NOT_READ"
	case StatusInferCancelled:
		return "INFER_CANCELLED"
	case StatusInvalidCParam:
		return "INVALID_C_PARAM"
	case StatusUnknownCError:
		return "UNKNOWN_C_ERROR"
	case StatusNotImplementCMethod:
		return "NOT_IMPLEMENT_C_METHOD"
	case StatusUnknownException:
		return "UNKNOWN_EXCEPTION"
	default:
		return fmt.Sprintf("StatusCode(%d)", code)
	}
}
