// Package openvino provides Go bindings for the OpenVINO runtime C API using purego.
//
// The package loads libopenvino_c at runtime and calls into it without cgo.
// It covers the Core entity: creating the runtime core, reading models
// (IR/ONNX/PDPD/TF/TFLite), compiling them for a device, enumerating devices
// and querying plugin versions. Inference itself happens inside the native
// library.
//
// Every native handle is owned by exactly one Go value and released by its
// Close method; use defer:
//
//	rt, err := openvino.NewRuntime("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	core, err := rt.NewCore("", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer core.Close()
//
//	model, err := core.ReadModel("model.xml", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer model.Close()
//
//	compiled, err := core.CompileModel(model, "") // "AUTO"
//
// None of the handle types are safe for concurrent use.
package openvino
