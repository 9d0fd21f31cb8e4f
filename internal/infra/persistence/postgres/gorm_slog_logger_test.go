package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"printhub/config"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var record map[string]any
		require.NoError(t, dec.Decode(&record))
		records = append(records, record)
	}

	return records
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gl := newGormSlogLogger(base, &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-7")))

	gl.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)
	gl.Trace(ctx, time.Now(), sqlFn("SELECT missing"), gorm.ErrRecordNotFound)
	gl.Trace(ctx, time.Now(), sqlFn("INSERT broken"), errors.New("duplicate key"))
	gl.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT slow"), nil)

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)

	assert.Equal(t, "GORM query failed", records[0]["msg"])
	assert.Equal(t, "INSERT broken", records[0]["sql"])
	assert.Equal(t, "req-7", records[0]["request_id"])

	assert.Equal(t, "GORM slow query", records[1]["msg"])
	assert.Equal(t, "WARN", records[1]["level"])
}

func TestGormSlogLogger_LogModeInfoLogsEveryQuery(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gl := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Info)

	gl.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	gl.Info(context.Background(), "connected to %s", "printhub")

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, "GORM query", records[0]["msg"])
	assert.Equal(t, "connected to printhub", records[1]["message"])

	buf.Reset()
	gl.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
	assert.Zero(t, buf.Len())
}

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, waited := poolWaitReport(prev, prev)
	assert.False(t, waited)

	level, attrs, waited := poolWaitReport(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond})
	require.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, int64(2), attrs[0].Value.Int64())
	assert.Equal(t, 10*time.Millisecond, attrs[2].Value.Duration())

	level, _, _ = poolWaitReport(prev, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	assert.Equal(t, slog.LevelWarn, level)
}
