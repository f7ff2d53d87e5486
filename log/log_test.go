package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogLevel(t *testing.T) {
	var buf bytes.Buffer
	hooked := 0
	logger := newWithWriter("logtest", zap.NewAtomicLevelAt(zapcore.InfoLevel), &buf,
		func(entry zapcore.Entry) error {
			hooked++
			require.Equal(t, zapcore.InfoLevel, entry.Level)
			return nil
		},
	)

	logger.Debug("hidden")
	require.Empty(t, buf.String())
	require.Zero(t, hooked)

	logger.Info("visible", zap.Int("n", 1))
	require.Contains(t, buf.String(), "visible")
	require.Contains(t, buf.String(), "logtest")
	require.Equal(t, 1, hooked)
}

func TestJSONLog(t *testing.T) {
	JSONLog(true)
	t.Cleanup(func() { JSONLog(false) })

	var buf bytes.Buffer
	logger := newWithWriter("json", zap.NewAtomicLevelAt(zapcore.InfoLevel), &buf)
	logger.Info("message", zap.String("key", "value"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "message", entry["msg"])
	require.Equal(t, "value", entry["key"])
	require.Equal(t, "json", entry["logger"])
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, lvl.Level())

	_, err = ParseLevel("loud")
	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
	require.Equal(t, "ERR_BAD_FLAGS", fatal.Code)
}

func TestFatalError(t *testing.T) {
	reason := errors.New("boom")
	err := ErrInvalidCheckpoints(reason)
	require.ErrorIs(t, err, reason)
	require.Equal(t, "checkpoint data is invalid: boom", err.Error())

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, err.MarshalLogObject(enc))
	require.Equal(t, "ERR_INVALID_CHECKPOINTS", enc.Fields["code"])

	err = ErrUnknownPreset("regtest", []string{"main", "test"})
	require.Equal(t, `unknown preset "regtest", options [main test]`, err.Error())
}
