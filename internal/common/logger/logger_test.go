// internal/common/logger/logger_test.go
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

func TestZapAdapter_FieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).WithFields(map[string]interface{}{"taskType": "estimate-roi"})

	log.Info("quote resolved", map[string]interface{}{"tier": "impact", "basePrice": int64(65000)})
	log.Warn("cache miss", nil)
	log.WithError(errors.New("boom")).Error("job failed", map[string]interface{}{"jobKey": int64(7)})

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "estimate-roi", ctx["taskType"])
	assert.Equal(t, "impact", ctx["tier"])
	assert.Equal(t, int64(65000), ctx["basePrice"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestMapToZapFields_SortedAndErrorAware(t *testing.T) {
	fields := mapToZapFields(map[string]interface{}{
		"b":     1,
		"a":     "x",
		"cause": errors.New("lookup failed"),
	})

	require.Len(t, fields, 3)
	assert.Equal(t, "a", fields[0].Key)
	assert.Equal(t, "b", fields[1].Key)
	assert.Equal(t, "cause", fields[2].Key)
	assert.Equal(t, zapcore.ErrorType, fields[2].Type)

	assert.Nil(t, mapToZapFields(nil))
}

func TestBuild_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := Build(Options{Level: "loud", Format: "json", Service: "marketplace-workers"})
	require.NoError(t, err)

	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestBuild_DebugLevel(t *testing.T) {
	l, err := Build(Options{Level: "debug", Format: "console"})
	require.NoError(t, err)

	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
