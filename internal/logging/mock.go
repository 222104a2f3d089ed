package logging

import (
	"fmt"
	"sync"
)

// LogEntry records a single message captured by the MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// MockLogger is a Logger implementation for tests. It records entries instead
// of writing them, and never exits the process on Fatal.
type MockLogger struct {
	mu      sync.Mutex
	entries []LogEntry
	fields  map[string]interface{}
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{fields: map[string]interface{}{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	merged := make(map[string]interface{}, len(m.fields)+len(fields))
	for k, v := range m.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	m.entries = append(m.entries, LogEntry{Level: level, Message: msg, Fields: merged})
}

// Debug records a debug-level entry
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }

// Info records an info-level entry
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields) }

// Warn records a warn-level entry
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields) }

// Error records an error-level entry
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// Fatal records a fatal-level entry without exiting
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("fatal", msg, fields) }

// Fatalf records a formatted fatal-level entry without exiting
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("fatal", fmt.Sprintf(msg, args...), nil)
}

// WithError returns a logger with an error field attached
func (m *MockLogger) WithError(err error) Logger {
	return m.WithField("error", err)
}

// WithField returns a logger with a single field attached
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a logger with multiple fields attached.
// The child forwards entries to the parent so tests see everything in one place.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	merged := make(map[string]interface{}, len(m.fields)+len(fields))
	for k, v := range m.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	return &boundMock{parent: m, fields: merged}
}

// boundMock forwards records to its parent with extra fields bound.
type boundMock struct {
	parent *MockLogger
	fields map[string]interface{}
}

func (b *boundMock) toFields(fields []Field) []Field {
	out := make([]Field, 0, len(b.fields)+len(fields))
	for k, v := range b.fields {
		out = append(out, Field{Key: k, Value: v})
	}
	return append(out, fields...)
}

func (b *boundMock) Debug(msg string, fields ...Field) { b.parent.Debug(msg, b.toFields(fields)...) }
func (b *boundMock) Info(msg string, fields ...Field)  { b.parent.Info(msg, b.toFields(fields)...) }
func (b *boundMock) Warn(msg string, fields ...Field)  { b.parent.Warn(msg, b.toFields(fields)...) }
func (b *boundMock) Error(msg string, fields ...Field) { b.parent.Error(msg, b.toFields(fields)...) }
func (b *boundMock) Fatal(msg string, fields ...Field) { b.parent.Fatal(msg, b.toFields(fields)...) }
func (b *boundMock) Fatalf(msg string, args ...interface{}) {
	b.parent.Fatalf(msg, args...)
}
func (b *boundMock) WithError(err error) Logger {
	return b.WithField("error", err)
}
func (b *boundMock) WithField(key string, value interface{}) Logger {
	return b.WithFields(Field{Key: key, Value: value})
}
func (b *boundMock) WithFields(fields ...Field) Logger {
	merged := make(map[string]interface{}, len(b.fields)+len(fields))
	for k, v := range b.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	return &boundMock{parent: b.parent, fields: merged}
}

// Entries returns a copy of all recorded entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// HasEntry reports whether an entry with the given level and message was recorded.
func (m *MockLogger) HasEntry(level, message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}

// Clear discards all recorded entries.
func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}
