package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestValidLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		assert.True(t, ValidLevel(lvl), lvl)
	}
	assert.False(t, ValidLevel("trace"))
	assert.False(t, ValidLevel(""))
}

func TestNew(t *testing.T) {
	l, err := New("debug", false)
	require.NoError(t, err)
	require.NotNil(t, l)

	l, err = New("bogus", true)
	require.NoError(t, err, "unknown level falls back to the config default")
	require.NotNil(t, l)
}

func TestFromZap_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))

	l.Info("converted", Int("records", 3), String("input", "in.html"), Bool("brackets", true))
	l.Warnf("nothing to write to %s", "out.nix")
	l.Error("failed", Error(errors.New("boom")))

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, "converted", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, int64(3), ctx["records"])
	assert.Equal(t, "in.html", ctx["input"])
	assert.Equal(t, true, ctx["brackets"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "nothing to write to out.nix", entries[1].Message)

	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info("ignored")
	l.Debugf("ignored %d", 1)
	assert.NoError(t, l.Sync())
}
