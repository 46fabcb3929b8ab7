package reportlog

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"erreport/pkg/report"
)

var (
	billing = report.NewComponent("billing", "1.4.0")
	storage = report.NewComponent("storage", "0.3.1")
)

func sampleChain(cause error) error {
	return billing.WrapAt("service.go", 23, storage.WrapAt("disk.go", 41, cause))
}

func TestZap_Report(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	logger := zap.New(core)

	Zap(logger, sampleChain(errors.New("disk full")), "save invoice")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "save invoice", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "billing@1.4.0", fields[keyComponent])
	assert.Equal(t, "service.go:23", fields[keyLocation])
	assert.Equal(t, "disk full", fields[keyCause])
	assert.Equal(t, "{billing@1.4.0} service.go:23 -> {storage@0.3.1} disk.go:41 -> disk full", fields[keyChain])

	want := []any{
		map[string]any{"component": "billing@1.4.0", "file": "service.go", "line": 23},
		map[string]any{"component": "storage@0.3.1", "file": "disk.go", "line": 41},
	}
	if diff := cmp.Diff(want, fields[keyFrames]); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestZap_PlainError(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	logger := zap.New(core)

	Zap(logger, errors.New("standard error"), "failed")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "standard error", fields["error"])
	assert.NotContains(t, fields, keyComponent)
}

func TestZap_NilInputs(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	Zap(zap.New(core), nil, "should not log")
	Zap(nil, errors.New("x"), "should not panic")

	assert.Equal(t, 0, logs.Len())
}

func TestField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	logger.Info("retrying", Field(sampleChain(errors.New("disk full"))))
	logger.Info("retrying", Field(errors.New("plain")))

	require.Equal(t, 2, logs.Len())

	got := logs.All()[0].ContextMap()["report"]
	want := map[string]any{
		"component": "billing@1.4.0",
		"message":   "{billing@1.4.0} service.go:23 -> {storage@0.3.1} disk.go:41 -> disk full",
		"cause":     "disk full",
		"frames": []any{
			map[string]any{"component": "billing@1.4.0", "file": "service.go", "line": 23},
			map[string]any{"component": "storage@0.3.1", "file": "disk.go", "line": 41},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report field mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "plain", logs.All()[1].ContextMap()["error"])
}

// testLogger captures logr error calls.
type testLogger struct {
	errorCalls []errorCall
}

type errorCall struct {
	err           error
	msg           string
	keysAndValues []any
}

func (l *testLogger) Init(info logr.RuntimeInfo)                   {}
func (l *testLogger) Enabled(level int) bool                       { return true }
func (l *testLogger) Info(level int, msg string, kv ...any)        {}
func (l *testLogger) WithValues(keysAndValues ...any) logr.LogSink { return l }
func (l *testLogger) WithName(name string) logr.LogSink            { return l }

func (l *testLogger) Error(err error, msg string, keysAndValues ...any) {
	l.errorCalls = append(l.errorCalls, errorCall{err: err, msg: msg, keysAndValues: keysAndValues})
}

// getValue extracts a value from logr key/value pairs.
func getValue(kv []any, key string) any {
	for i := 0; i < len(kv)-1; i += 2 {
		if kv[i] == key {
			return kv[i+1]
		}
	}
	return nil
}

func TestLogr(t *testing.T) {
	t.Run("with report", func(t *testing.T) {
		sink := &testLogger{}
		err := sampleChain(errors.New("disk full"))

		Logr(logr.New(sink), err, "save invoice")

		require.Len(t, sink.errorCalls, 1)
		call := sink.errorCalls[0]
		assert.Equal(t, err, call.err)
		assert.Equal(t, "save invoice", call.msg)
		assert.Equal(t, "billing@1.4.0", getValue(call.keysAndValues, keyComponent))
		assert.Equal(t, "service.go:23", getValue(call.keysAndValues, keyLocation))
		assert.Equal(t, "disk full", getValue(call.keysAndValues, keyCause))
		assert.Contains(t, getValue(call.keysAndValues, keyChain), "{storage@0.3.1} disk.go:41")
	})

	t.Run("with plain error", func(t *testing.T) {
		sink := &testLogger{}

		Logr(logr.New(sink), errors.New("standard error"), "failed")

		require.Len(t, sink.errorCalls, 1)
		assert.Empty(t, sink.errorCalls[0].keysAndValues)
	})

	t.Run("with nil error", func(t *testing.T) {
		sink := &testLogger{}

		Logr(logr.New(sink), nil, "should not log")

		assert.Len(t, sink.errorCalls, 0)
	})
}

func TestKeysAndValues_ReportBehindWrapper(t *testing.T) {
	err := sampleChain(errors.New("disk full"))
	kv := KeysAndValues(errors.Join(errors.New("other"), err))

	assert.Equal(t, "billing@1.4.0", getValue(kv, keyComponent))
	assert.Nil(t, KeysAndValues(errors.New("plain")))
	assert.Nil(t, KeysAndValues(nil))
}
