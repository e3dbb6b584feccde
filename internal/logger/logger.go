// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/deppfellow/notes-api/internal/config"
)

// nrConnectTimeout bounds how long startup waits for the New Relic agent.
const nrConnectTimeout = 10 * time.Second

// LoggerService owns the optional New Relic application.
//
// A LoggerService with a nil application is valid: every caller checks
// GetApplication() before recording telemetry.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService starts the New Relic agent when a license key is configured.
//
// Agent start-up failures are reported on stderr and leave the service
// running without APM rather than refusing to boot.
func NewLoggerService(cfg *config.ObservabilityConfig) *LoggerService {
	service := &LoggerService{}

	if !cfg.NewRelic.Enabled() {
		return service
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
	}
	if cfg.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Error().Err(err).Msg("failed to initialize New Relic, continuing without APM")
		return service
	}

	if err := app.WaitForConnection(nrConnectTimeout); err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Warn().Err(err).Msg("New Relic did not connect in time, data will be sent once connected")
	}

	service.nrApp = app
	return service
}

// GetApplication returns the New Relic application, or nil when disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// Shutdown flushes pending telemetry.
func (ls *LoggerService) Shutdown() {
	if ls.GetApplication() != nil {
		ls.nrApp.Shutdown(nrConnectTimeout)
	}
}

// NewLoggerWithService builds the application logger.
//
// Output is JSON on stdout, or a human-friendly console writer when the
// configured format is "console". With New Relic log forwarding enabled the
// JSON stream is teed through the zerolog writer integration.
func NewLoggerWithService(cfg *config.ObservabilityConfig, loggerService *LoggerService) zerolog.Logger {
	return newLogger(cfg, loggerService, os.Stdout)
}

func newLogger(cfg *config.ObservabilityConfig, loggerService *LoggerService, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	// Lets logger.Error().Stack() print stacks from pkg/errors wrapped errors.
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339

	var writer io.Writer = out
	switch {
	case cfg.Logging.Format == "console":
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	case loggerService.GetApplication() != nil && cfg.NewRelic.AppLogForwardingEnabled:
		writer = zerologWriter.New(out, loggerService.GetApplication())
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()

	if !cfg.IsProduction() {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// NewPgxLogger builds the logger used for SQL query tracing in local development.
//
// Queries are verbose, so they go through a console writer with the SQL and
// arguments rendered on their own.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
		FieldsExclude: []string{
			"pid",
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return "[SQL] " + i.(string)
		},
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("component", "database").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level to the numeric pgx tracelog level.
//
// Values follow tracelog.LogLevel: 6 trace, 5 debug, 4 info, 3 warn, 2 error, 1 none.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6
	case zerolog.DebugLevel:
		return 5
	case zerolog.InfoLevel:
		return 4
	case zerolog.WarnLevel:
		return 3
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return 2
	default:
		return 1
	}
}

// WithTraceContext adds New Relic trace.id and span.id to a logger so log lines
// can be joined to distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	metadata := txn.GetTraceMetadata()
	if metadata.TraceID == "" {
		return logger
	}

	return logger.With().
		Str("trace.id", metadata.TraceID).
		Str("span.id", metadata.SpanID).
		Logger()
}
