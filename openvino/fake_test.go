package openvino

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/benedoc-inc/ovgo/internal/cstrings"
	"github.com/benedoc-inc/ovgo/openvino/internal/api"
)

var _ api.APIFuncs = (*fakeAPI)(nil)

// fakeAPI is an in-memory api.APIFuncs that hands out unique handles and
// records every allocation and release, so tests can check ownership
// without the native library.
type fakeAPI struct {
	mu sync.Mutex

	devices    []string
	versions   map[string][][3]string // device name -> (device, build, description)
	properties map[string]string      // device + "/" + key -> value
	models     map[string]bool        // readable model paths
	configs    map[string]bool        // valid plugin config paths
	failures   map[string]api.OvStatus

	next        uintptr
	live        map[uintptr]string
	freed       map[string]int
	doubleFrees int
	calls       []string

	lastWeightsPath string
	lastDevice      string
	lastModelLen    uintptr
	lastWeights     api.OvTensor
	lastTensorType  api.OvElementType
	lastTensorDims  []int64

	keep []any
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		devices: []string{"CPU", "GPU.0"},
		versions: map[string][][3]string{
			"CPU": {{"CPU", "2024.6.0-17404-4c0f47d2335-releases/2024/6", "Intel CPU plugin"}},
			"HETERO:CPU,GPU": {
				{"CPU", "2024.6.0-17404-4c0f47d2335-releases/2024/6", "Intel CPU plugin"},
				{"GPU", "2024.6.0-17404-4c0f47d2335-releases/2024/6", "Intel GPU plugin"},
			},
		},
		properties: map[string]string{
			"CPU/FULL_DEVICE_NAME": "Intel(R) Core(TM) i7-1185G7 @ 3.00GHz",
		},
		models:   map[string]bool{},
		configs:  map[string]bool{},
		failures: map[string]api.OvStatus{},
		live:     map[uintptr]string{},
		freed:    map[string]int{},
	}
}

// newFakeRuntime returns a Runtime backed by a fresh fakeAPI.
func newFakeRuntime(t *testing.T) (*Runtime, *fakeAPI) {
	t.Helper()
	fake := newFakeAPI()
	return &Runtime{apiFuncs: fake}, fake
}

func (f *fakeAPI) alloc(kind string) uintptr {
	f.next++
	h := 0x1000 + f.next
	f.live[h] = kind
	return h
}

func (f *fakeAPI) release(kind string, h uintptr) {
	if f.live[h] != kind {
		f.doubleFrees++
		return
	}
	delete(f.live, h)
	f.freed[kind]++
}

func (f *fakeAPI) cstr(s string) *byte {
	b, err := cstrings.StringToBytes(s)
	if err != nil {
		panic(err)
	}
	f.keep = append(f.keep, b)
	return &b[0]
}

func (f *fakeAPI) record(op string) api.OvStatus {
	f.calls = append(f.calls, op)
	return f.failures[op]
}

func (f *fakeAPI) liveCount(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, k := range f.live {
		if k == kind {
			n++
		}
	}
	return n
}

func (f *fakeAPI) freedCount(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.freed[kind]
}

func (f *fakeAPI) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (f *fakeAPI) GetErrorInfo(status api.OvStatus) unsafe.Pointer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return unsafe.Pointer(f.cstr("fake failure " + statusCodeName(status)))
}

func (f *fakeAPI) GetOpenvinoVersion(v *api.Version) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.record("get_openvino_version"); st != StatusOK {
		return st
	}
	v.BuildNumber = f.cstr("2024.6.0-17404-4c0f47d2335-releases/2024/6")
	v.Description = f.cstr("OpenVINO Runtime")
	return StatusOK
}

func (f *fakeAPI) VersionFree(*api.Version) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.freed["version"]++
}

func (f *fakeAPI) Free(*byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.freed["string"]++
}

func (f *fakeAPI) CoreCreate(core *api.OvCore) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.record("core_create"); st != StatusOK {
		return st
	}
	*core = api.OvCore(f.alloc("core"))
	return StatusOK
}

func (f *fakeAPI) CoreCreateWithConfig(path *byte, core *api.OvCore) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.record("core_create_with_config"); st != StatusOK {
		return st
	}
	if !f.configs[cstrings.CStringToString(path)] {
		return StatusNotFound
	}
	*core = api.OvCore(f.alloc("core"))
	return StatusOK
}

func (f *fakeAPI) CoreFree(core api.OvCore) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.release("core", uintptr(core))
}

func (f *fakeAPI) CoreReadModel(_ api.OvCore, modelPath, binPath *byte, model *api.OvModel) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastWeightsPath = cstrings.CStringToString(binPath)
	if st := f.record("core_read_model"); st != StatusOK {
		return st
	}
	if !f.models[cstrings.CStringToString(modelPath)] {
		return StatusGeneralError
	}
	*model = api.OvModel(f.alloc("model"))
	return StatusOK
}

func (f *fakeAPI) CoreReadModelFromMemoryBuffer(_ api.OvCore, _ *byte, strLen uintptr, weights api.OvTensor, model *api.OvModel) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastModelLen = strLen
	f.lastWeights = weights
	if st := f.record("core_read_model_from_memory_buffer"); st != StatusOK {
		return st
	}
	*model = api.OvModel(f.alloc("model"))
	return StatusOK
}

func (f *fakeAPI) knownDevice(device string) bool {
	if device == DefaultDevice {
		return true
	}
	for _, d := range f.devices {
		if d == device {
			return true
		}
	}
	return false
}

func (f *fakeAPI) CoreCompileModel(_ api.OvCore, model api.OvModel, device *byte, _ uintptr, compiled *api.OvCompiledModel) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastDevice = cstrings.CStringToString(device)
	if st := f.record("core_compile_model"); st != StatusOK {
		return st
	}
	if f.live[uintptr(model)] != "model" || !f.knownDevice(f.lastDevice) {
		return StatusGeneralError
	}
	*compiled = api.OvCompiledModel(f.alloc("compiled_model"))
	return StatusOK
}

func (f *fakeAPI) CoreCompileModelFromFile(_ api.OvCore, modelPath, device *byte, _ uintptr, compiled *api.OvCompiledModel) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastDevice = cstrings.CStringToString(device)
	if st := f.record("core_compile_model_from_file"); st != StatusOK {
		return st
	}
	if !f.models[cstrings.CStringToString(modelPath)] || !f.knownDevice(f.lastDevice) {
		return StatusGeneralError
	}
	*compiled = api.OvCompiledModel(f.alloc("compiled_model"))
	return StatusOK
}

func (f *fakeAPI) CoreGetVersionsByDeviceName(_ api.OvCore, device *byte, list *api.CoreVersionList) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.record("core_get_versions_by_device_name"); st != StatusOK {
		return st
	}
	entries, ok := f.versions[cstrings.CStringToString(device)]
	if !ok {
		return StatusGeneralError
	}
	out := make([]api.CoreVersion, len(entries))
	for i, e := range entries {
		out[i] = api.CoreVersion{
			DeviceName: f.cstr(e[0]),
			Version:    api.Version{BuildNumber: f.cstr(e[1]), Description: f.cstr(e[2])},
		}
	}
	f.keep = append(f.keep, out)
	list.Versions = &out[0]
	list.Size = uintptr(len(out))
	return StatusOK
}

func (f *fakeAPI) CoreVersionsFree(list *api.CoreVersionList) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.freed["versions"]++
	list.Versions = nil
	list.Size = 0
}

func (f *fakeAPI) CoreGetAvailableDevices(_ api.OvCore, devices *api.AvailableDevices) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.record("core_get_available_devices"); st != StatusOK {
		return st
	}
	if len(f.devices) == 0 {
		devices.Devices = nil
		devices.Size = 0
		return StatusOK
	}
	arr := make([]*byte, len(f.devices))
	for i, d := range f.devices {
		arr[i] = f.cstr(d)
	}
	f.keep = append(f.keep, arr)
	devices.Devices = &arr[0]
	devices.Size = uintptr(len(arr))
	return StatusOK
}

func (f *fakeAPI) AvailableDevicesFree(devices *api.AvailableDevices) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.freed["devices"]++
	devices.Devices = nil
	devices.Size = 0
}

func (f *fakeAPI) CoreGetProperty(_ api.OvCore, device, key *byte, value **byte) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.record("core_get_property"); st != StatusOK {
		return st
	}
	v, ok := f.properties[cstrings.CStringToString(device)+"/"+cstrings.CStringToString(key)]
	if !ok {
		return StatusNotFound
	}
	*value = f.cstr(v)
	return StatusOK
}

func (f *fakeAPI) ModelFree(model api.OvModel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.release("model", uintptr(model))
}

func (f *fakeAPI) ModelGetFriendlyName(_ api.OvModel, name **byte) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.record("model_get_friendly_name"); st != StatusOK {
		return st
	}
	*name = f.cstr("torch_jit")
	return StatusOK
}

func (f *fakeAPI) ModelInputsSize(_ api.OvModel, size *uintptr) api.OvStatus {
	*size = 1
	return StatusOK
}

func (f *fakeAPI) ModelOutputsSize(_ api.OvModel, size *uintptr) api.OvStatus {
	*size = 2
	return StatusOK
}

func (f *fakeAPI) CompiledModelFree(compiled api.OvCompiledModel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.release("compiled_model", uintptr(compiled))
}

func (f *fakeAPI) CompiledModelInputsSize(_ api.OvCompiledModel, size *uintptr) api.OvStatus {
	*size = 1
	return StatusOK
}

func (f *fakeAPI) CompiledModelOutputsSize(_ api.OvCompiledModel, size *uintptr) api.OvStatus {
	*size = 2
	return StatusOK
}

func (f *fakeAPI) TensorCreateFromHostPtr(elementType api.OvElementType, shape api.Shape, _ unsafe.Pointer, tensor *api.OvTensor) api.OvStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.record("tensor_create_from_host_ptr"); st != StatusOK {
		return st
	}
	f.lastTensorType = elementType
	f.lastTensorDims = append([]int64(nil), unsafe.Slice(shape.Dims, shape.Rank)...)
	*tensor = api.OvTensor(f.alloc("tensor"))
	return StatusOK
}

func (f *fakeAPI) TensorFree(tensor api.OvTensor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.release("tensor", uintptr(tensor))
}
