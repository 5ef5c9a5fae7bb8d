package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestTestObserved(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.InfoLevel)
	lggr = lggr.Named("validate")

	lggr.Debugw("dropped", "value", "0x01")
	lggr.Infow("validated", "type", "HexBytes20")
	lggr.Warnf("rejected %d values", 2)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "validated", entries[0].Message)
	assert.Equal(t, "HexBytes20", entries[0].ContextMap()["type"])
	assert.Equal(t, "validate", entries[0].LoggerName)
	assert.Equal(t, "rejected 2 values", entries[1].Message)
	assert.Equal(t, "validate", lggr.Name())
}

func TestConfig_New(t *testing.T) {
	t.Parallel()

	lggr, err := Config{Level: zapcore.DebugLevel, Encoding: "json"}.New()
	require.NoError(t, err)
	assert.Empty(t, lggr.Name())

	_, err = NewWith(func(cfg *zap.Config) { cfg.Encoding = "nope" })
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	t.Parallel()

	lggr := Nop()
	lggr.Errorw("ignored", "err", "boom")
	assert.NotNil(t, lggr.Named("x"))
	Test(t).Info("visible in verbose test output")
}
