package types

import "sync"

// LogEntry is a single call recorded by MockLogger.
type LogEntry struct {
	Level   string
	Message string
}

// MockLogger records every message so tests can assert on diagnostics.
type MockLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

func (m *MockLogger) record(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Message: msg})
}

func (m *MockLogger) Debug(msg string, fields ...interface{}) { m.record("debug", msg) }
func (m *MockLogger) Info(msg string, fields ...interface{})  { m.record("info", msg) }
func (m *MockLogger) Warn(msg string, fields ...interface{})  { m.record("warn", msg) }
func (m *MockLogger) Error(msg string, fields ...interface{}) { m.record("error", msg) }

// Messages returns the recorded messages for the given level.
func (m *MockLogger) Messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
