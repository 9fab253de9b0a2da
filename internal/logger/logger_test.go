package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/deppfellow/product-service/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func captureAgentOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := agentOutput
	agentOutput = &buf
	t.Cleanup(func() { agentOutput = previous })
	return &buf
}

func TestAgentOutputIsStderr(t *testing.T) {
	assert.Same(t, os.Stderr, agentOutput)
}

func TestNewLoggerServiceWithoutLicense(t *testing.T) {
	out := captureAgentOutput(t)

	svc := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, svc.GetApplication())
	assert.Contains(t, out.String(), "license key not provided")
	svc.Shutdown()
}

func TestNewLoggerServiceInvalidLicenseWritesToAgentOutput(t *testing.T) {
	out := captureAgentOutput(t)

	cfg := config.DefaultObservabilityConfig()
	cfg.NewRelic.LicenseKey = "too-short"
	cfg.NewRelic.DebugLogging = true

	svc := NewLoggerService(cfg)

	assert.Nil(t, svc.GetApplication())
	assert.Contains(t, out.String(), "Failed to initialize New Relic")
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLogger(cfg)

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	base := zerolog.Nop()
	assert.Equal(t, base, WithTraceContext(base, nil))
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, int(tracelog.LogLevelDebug), GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, int(tracelog.LogLevelError), GetPgxTraceLogLevel(zerolog.ErrorLevel))
	assert.Equal(t, int(tracelog.LogLevelNone), GetPgxTraceLogLevel(zerolog.Disabled))
}
