package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/notes-api/internal/config"
)

func TestNewLoggerService_DisabledWithoutLicense(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	ls := NewLoggerService(cfg)

	require.NotNil(t, ls)
	assert.Nil(t, ls.GetApplication())
	assert.NotPanics(t, ls.Shutdown)
}

func TestLoggerService_NilReceiver(t *testing.T) {
	var ls *LoggerService
	assert.Nil(t, ls.GetApplication())
}

func TestNewLogger_JSONFields(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(cfg, &LoggerService{}, &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("note_id", "abc").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "production", entry["environment"])
	assert.Equal(t, "abc", entry["note_id"])
	assert.NotContains(t, entry, "caller")
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tracelog.LogLevel(GetPgxTraceLogLevel(tt.level)))
		})
	}
}

func TestWithTraceContext_NoTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	log := WithTraceContext(base, nil)
	log.Info().Msg("hello")

	assert.NotContains(t, buf.String(), "trace.id")
}
