package openvino

import (
	"log/slog"
)

// SlogHook is a Hook that logs native calls via log/slog.
// It logs at Debug level on success and Warn level on failure.
//
// Example:
//
//	core, _ := rt.NewCore("", &openvino.CoreOptions{
//	    Hooks: []openvino.Hook{openvino.NewSlogHook(slog.Default())},
//	})
type SlogHook struct {
	logger *slog.Logger
}

// NewSlogHook creates a Hook that logs native calls to the given slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogHook(logger *slog.Logger) *SlogHook {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogHook{logger: logger}
}

func (h *SlogHook) BeforeCall(_ *CallInfo) {}

func (h *SlogHook) AfterCall(info *CallInfo) {
	attrs := []any{
		slog.String("op", info.Op),
		slog.Duration("duration", info.Duration),
	}
	if info.Device != "" {
		attrs = append(attrs, slog.String("device", info.Device))
	}
	if info.Path != "" {
		attrs = append(attrs, slog.String("path", info.Path))
	}

	if info.Err != nil {
		h.logger.Warn("openvino call failed", append(attrs, slog.String("error", info.Err.Error()))...)
	} else {
		h.logger.Debug("openvino call completed", attrs...)
	}
}
