package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("reading file", Field{Key: FieldFile, Value: "a.csv"})
	mock.Warn("something odd")

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0].Level)
	assert.Equal(t, "a.csv", entries[0].Fields[FieldFile])
	assert.True(t, mock.HasEntry("warn", "something odd"))
	assert.False(t, mock.HasEntry("error", "something odd"))
}

func TestMockLoggerBoundFieldsForwardToParent(t *testing.T) {
	mock := NewMockLogger()

	child := mock.WithField(FieldAccount, "acc_checking").WithField(FieldCount, 3)
	child.Info("normalized source")

	entries := mock.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "acc_checking", entries[0].Fields[FieldAccount])
	assert.Equal(t, 3, entries[0].Fields[FieldCount])
}

func TestMockLoggerWithError(t *testing.T) {
	mock := NewMockLogger()
	cause := errors.New("boom")

	mock.WithError(cause).Error("write failed")

	entries := mock.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, cause, entries[0].Fields["error"])
}

func TestMockLoggerFatalDoesNotExit(t *testing.T) {
	mock := NewMockLogger()
	mock.Fatalf("run failed: %v", errors.New("boom"))

	assert.True(t, mock.HasEntry("fatal", "run failed: boom"))
}

func TestNewLogrusAdapterLevels(t *testing.T) {
	adapter := NewLogrusAdapter("debug", "json")
	require.NotNil(t, adapter)

	// Bound fields produce a new logger without touching the original.
	bound := adapter.WithField(FieldSource, "x.csv")
	assert.NotNil(t, bound)
}

func TestSetDefaultLogger(t *testing.T) {
	original := GetLogger()
	defer SetDefaultLogger(original)

	mock := NewMockLogger()
	SetDefaultLogger(mock)
	assert.Equal(t, Logger(mock), GetLogger())
}
