package openvino

import "time"

// Hook provides callbacks around native calls made by a Core for observability.
// Implement this interface to add metrics, logging, or tracing.
//
// Example:
//
//	type metricsHook struct {
//	    histogram prometheus.Histogram
//	}
//
//	func (h *metricsHook) BeforeCall(info *CallInfo) {}
//	func (h *metricsHook) AfterCall(info *CallInfo) {
//	    h.histogram.Observe(info.Duration.Seconds())
//	    if info.Err != nil {
//	        errorCounter.Inc()
//	    }
//	}
type Hook interface {
	// BeforeCall is called before the native function is invoked.
	BeforeCall(info *CallInfo)

	// AfterCall is called after the native function returns.
	// Duration and Err are populated.
	AfterCall(info *CallInfo)
}

// CallInfo describes one native call.
// Op, Device and Path are set before the call; Duration and Err after.
type CallInfo struct {
	Op       string
	Device   string
	Path     string
	Duration time.Duration
	Err      error
}

type hookFunc struct {
	fn func(*CallInfo)
}

func (h *hookFunc) BeforeCall(_ *CallInfo)   {}
func (h *hookFunc) AfterCall(info *CallInfo) { h.fn(info) }

// AfterCallHook creates a Hook that calls fn after every native call.
//
// Example:
//
//	core, _ := rt.NewCore("", &CoreOptions{
//	    Hooks: []Hook{
//	        AfterCallHook(func(info *CallInfo) {
//	            log.Printf("%s took %v", info.Op, info.Duration)
//	        }),
//	    },
//	})
func AfterCallHook(fn func(*CallInfo)) Hook {
	return &hookFunc{fn: fn}
}
