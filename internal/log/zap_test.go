package log

import (
	"bytes"
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// mockWriteSyncer is a mock implementation of the zapcore.WriteSyncer interface for testing purposes.
type mockWriteSyncer struct {
	buffer bytes.Buffer
}

func (m *mockWriteSyncer) Write(p []byte) (n int, err error) {
	return m.buffer.Write(p)
}

func (m *mockWriteSyncer) Sync() error {
	return nil
}

func newTestLogger(level zapcore.Level) (*zapLogger, *mockWriteSyncer) {
	mock := &mockWriteSyncer{}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), mock, level)
	return &zapLogger{logger: zap.New(core)}, mock
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(context.Background())
	if logger == nil {
		t.Fatal("Expected logger to be non-nil")
	}
}

func TestNewLoggerFromContext(t *testing.T) {
	stored, _ := newTestLogger(zap.InfoLevel)
	ctx := WithLogger(context.Background(), stored)

	if got := NewLogger(ctx); got != stored {
		t.Fatal("Expected the logger stored in the context to be returned")
	}
}

func TestNewDevelopmentLogger(t *testing.T) {
	if NewDevelopmentLogger() == nil {
		t.Fatal("Expected development logger to be non-nil")
	}
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	logger := NewLogger(ctx)
	ctxWithLogger := WithLogger(ctx, logger)
	if ctxWithLogger.Value(loggerKey) == nil {
		t.Fatal("Expected logger to be set in context")
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name  string
		level zapcore.Level
		log   func(l *zapLogger, msg string)
		msg   string
	}{
		{name: "debug", level: zap.DebugLevel, log: func(l *zapLogger, m string) { l.Debug(m) }, msg: "debug message"},
		{name: "info", level: zap.InfoLevel, log: func(l *zapLogger, m string) { l.Info(m) }, msg: "info message"},
		{name: "warn", level: zap.WarnLevel, log: func(l *zapLogger, m string) { l.Warn(m) }, msg: "warn message"},
		{name: "error", level: zap.ErrorLevel, log: func(l *zapLogger, m string) { l.Error(m) }, msg: "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, mock := newTestLogger(tt.level)
			tt.log(logger, tt.msg)
			if !bytes.Contains(mock.buffer.Bytes(), []byte(tt.msg)) {
				t.Fatalf("Expected %s to be logged, got %s", tt.msg, mock.buffer.String())
			}
		})
	}
}

func TestFieldsArePassedThrough(t *testing.T) {
	logger, mock := newTestLogger(zap.InfoLevel)

	logger.Info("parsed input", zap.String("path", "results.sarif"), "ignored", 42)

	if !bytes.Contains(mock.buffer.Bytes(), []byte(`"path":"results.sarif"`)) {
		t.Fatalf("Expected zap field in output, got %s", mock.buffer.String())
	}
	if bytes.Contains(mock.buffer.Bytes(), []byte("ignored")) {
		t.Fatalf("Expected non-zap arguments to be dropped, got %s", mock.buffer.String())
	}
}
