package telemetry

import (
	"time"

	"go.uber.org/zap"

	"aechlegal/internal/domain"
)

const (
	FieldEvent      = "event"
	FieldAction     = "action"
	FieldCode       = "code"
	FieldSource     = "source"
	FieldModel      = "model"
	FieldDurationMs = "duration_ms"
	FieldLogSource  = "log_source"
)

const (
	EventActionFailed  = "action_failed"
	EventLLMGenerate   = "llm_generate"
	EventToolCall      = "tool_call"
	EventManifestWrite = "manifest_write"
)

const (
	LogSourceCLI    = "cli"
	LogSourceSkills = "skills"
	LogSourceMCP    = "mcp"
)

func EventField(event string) zap.Field {
	return zap.String(FieldEvent, event)
}

func ActionField(action string) zap.Field {
	return zap.String(FieldAction, action)
}

// CodeField records the domain error code of err, or "UNKNOWN".
func CodeField(err error) zap.Field {
	code, ok := domain.CodeFrom(err)
	if !ok {
		code = "UNKNOWN"
	}
	return zap.String(FieldCode, string(code))
}

func SourceField(path string) zap.Field {
	return zap.String(FieldSource, path)
}

func ModelField(model string) zap.Field {
	return zap.String(FieldModel, model)
}

func DurationField(duration time.Duration) zap.Field {
	return zap.Int64(FieldDurationMs, duration.Milliseconds())
}
