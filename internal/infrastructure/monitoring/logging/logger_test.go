package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerDefaults(t *testing.T) {
	logger, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestFieldsReachEntries(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := NewLoggerFromCore(core)

	logger.With(String("run_id", "abc")).Info("target resolved",
		String("ion", "Pb"),
		Int("charge", 2),
		Float64("ionic_radius", 1.29),
		Bool("hume_rothery", true),
	)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "target resolved", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["run_id"])
	assert.Equal(t, "Pb", fields["ion"])
	assert.Equal(t, int64(2), fields["charge"])
}

func TestNamedLogger(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := NewLoggerFromCore(core).Named("screen").Named("crossref")

	logger.Debug("scan complete")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "screen.crossref", entries[0].LoggerName)
}

func TestErrField(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestDefaultLogger(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	nop := NewNopLogger()
	SetDefault(nop)
	assert.Equal(t, nop, Default())

	// nil is ignored rather than clobbering the default.
	SetDefault(nil)
	assert.Equal(t, nop, Default())
}
