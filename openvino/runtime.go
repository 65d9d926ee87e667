package openvino

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/benedoc-inc/ovgo/internal/cstrings"
	"github.com/benedoc-inc/ovgo/openvino/internal/api"
	v2 "github.com/benedoc-inc/ovgo/openvino/internal/api/v2"
)

// Runtime holds a loaded OpenVINO C library and its bound functions.
//
// Objects created from a Runtime should be closed before the Runtime.
// Once the Runtime is closed they report Valid() == false, their
// operations fail, and Close and garbage collection no longer call into
// the unloaded library.
type Runtime struct {
	// mu orders Close against cleanups running on the finalizer goroutine.
	mu            sync.RWMutex
	libraryHandle uintptr
	apiFuncs      api.APIFuncs
	logger        *slog.Logger
}

// NewRuntime loads the OpenVINO C library from libraryPath and binds the
// functions the package uses. An empty path loads the platform default
// library name (libopenvino_c.so, libopenvino_c.dylib or openvino_c.dll)
// through the system search path.
func NewRuntime(libraryPath string) (*Runtime, error) {
	if libraryPath == "" {
		libraryPath = defaultLibraryName()
	}

	handle, err := openLibrary(libraryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load library %s: %w", libraryPath, err)
	}

	funcs, err := v2.InitializeFuncs(func(name string) (uintptr, error) {
		return lookupSymbol(handle, name)
	})
	if err != nil {
		closeLibrary(handle)
		return nil, fmt.Errorf("failed to initialize API functions: %w", err)
	}

	return &Runtime{
		libraryHandle: handle,
		apiFuncs:      funcs,
	}, nil
}

// SetLogger sets the logger that receives a Debug record for every failed
// native call made outside a Core (Version, tensor creation). A nil logger
// selects slog.Default().
func (r *Runtime) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

func (r *Runtime) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// Close unloads the library. It is safe to call Close multiple times.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.apiFuncs = nil
	if r.libraryHandle == 0 {
		return nil
	}
	err := closeLibrary(r.libraryHandle)
	r.libraryHandle = 0
	if err != nil {
		return fmt.Errorf("failed to close library: %w", err)
	}
	return nil
}

// loaded reports whether native calls can be made.
func (r *Runtime) loaded() bool {
	return r != nil && r.apiFuncs != nil
}

// release hands the bound functions to free unless the library has been
// unloaded, in which case the native object is already gone with it.
// It is the only path through which handles are freed.
func (r *Runtime) release(free func(api.APIFuncs)) {
	if r == nil {
		return
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.apiFuncs != nil {
		free(r.apiFuncs)
	}
}

// Version returns the version of the loaded OpenVINO runtime.
func (r *Runtime) Version() (Version, error) {
	if !r.loaded() {
		return Version{}, ErrRuntimeClosed
	}

	var v api.Version
	status := r.apiFuncs.GetOpenvinoVersion(&v)
	if err := r.check(r.log(), &CallInfo{Op: "get_openvino_version"}, status); err != nil {
		return Version{}, err
	}
	defer r.apiFuncs.VersionFree(&v)

	return newVersion(cstrings.CStringToString(v.BuildNumber), cstrings.CStringToString(v.Description)), nil
}

// statusError converts a native status into a *StatusError, or nil for StatusOK.
func (r *Runtime) statusError(op string, status api.OvStatus) error {
	if status == StatusOK {
		return nil
	}
	var msg string
	if r.apiFuncs != nil {
		if p := r.apiFuncs.GetErrorInfo(status); p != nil {
			msg = cstrings.CStringToString((*byte)(p))
		}
	}
	return &StatusError{Op: op, Code: status, Message: msg}
}

// check converts status like statusError and writes the failure to logger.
func (r *Runtime) check(logger *slog.Logger, info *CallInfo, status api.OvStatus) error {
	info.Err = r.statusError(info.Op, status)
	if info.Err != nil {
		logFailure(logger, info)
	}
	return info.Err
}

// logFailure writes the debug record for a failed call.
func logFailure(logger *slog.Logger, info *CallInfo) {
	attrs := []any{slog.String("op", info.Op)}
	if info.Device != "" {
		attrs = append(attrs, slog.String("device", info.Device))
	}
	if info.Path != "" {
		attrs = append(attrs, slog.String("path", info.Path))
	}
	var se *StatusError
	if errors.As(info.Err, &se) {
		attrs = append(attrs, slog.Int("status", int(se.Code)))
	}
	logger.Debug("openvino call failed", append(attrs, slog.String("error", info.Err.Error()))...)
}
