package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := Log
	Log = slog.New(slog.NewTextHandler(&buf, nil))
	t.Cleanup(func() { Log = previous })
	return &buf
}

func TestTraceSkipsRecordNotFound(t *testing.T) {
	buf := captureLog(t)
	gl := NewGormLogger(gormlogger.Warn, 200*time.Millisecond)

	fc := func() (string, int64) { return "SELECT * FROM snapshots", 0 }
	gl.Trace(context.Background(), time.Now(), fc, gormlogger.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestTraceLogsRealErrors(t *testing.T) {
	buf := captureLog(t)
	gl := NewGormLogger(gormlogger.Warn, 200*time.Millisecond)

	fc := func() (string, int64) { return "INSERT INTO snapshots", 0 }
	gl.Trace(context.Background(), time.Now(), fc, errors.New("database is locked"))

	assert.Contains(t, buf.String(), "SQL Error")
	assert.Contains(t, buf.String(), "database is locked")
}

func TestTraceLogsSlowQueries(t *testing.T) {
	buf := captureLog(t)
	gl := NewGormLogger(gormlogger.Warn, time.Millisecond)

	fc := func() (string, int64) { return "SELECT * FROM audit_logs", 42 }
	gl.Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)

	assert.Contains(t, buf.String(), "Slow SQL")
}
