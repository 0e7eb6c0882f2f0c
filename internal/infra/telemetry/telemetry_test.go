package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aechlegal/internal/domain"
)

func TestNewLogger_QuietByDefault(t *testing.T) {
	logger, err := NewLogger(false, LogSourceCLI)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewLogger_VerboseEnablesDebug(t *testing.T) {
	logger, err := NewLogger(true, LogSourceSkills)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	notFound := domain.NotFound("classify", "File", "/tmp/x.txt")
	logger.Debug("failed",
		EventField(EventActionFailed),
		ActionField("classify"),
		CodeField(notFound),
		SourceField("/tmp/x.txt"),
		DurationField(1500*time.Millisecond),
	)
	logger.Debug("plain", CodeField(errors.New("boom")))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, EventActionFailed, fields[FieldEvent])
	assert.Equal(t, "classify", fields[FieldAction])
	assert.Equal(t, string(domain.CodeNotFound), fields[FieldCode])
	assert.Equal(t, "/tmp/x.txt", fields[FieldSource])
	assert.Equal(t, int64(1500), fields[FieldDurationMs])
	assert.Equal(t, "UNKNOWN", entries[1].ContextMap()[FieldCode])
}
