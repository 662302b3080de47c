package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		begin    time.Time
		err      error
		expected string
		absent   bool
	}{
		{name: "record not found is silent", begin: time.Now(), err: gorm.ErrRecordNotFound, absent: true},
		{name: "failure logs at error", begin: time.Now(), err: errors.New("connection refused"), expected: "level=ERROR"},
		{name: "constraint violation logs at warn", begin: time.Now(), err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), expected: "level=WARN"},
		{name: "slow query", begin: time.Now().Add(-time.Second), expected: "GORM slow query"},
		{name: "fast query hidden outside debug", begin: time.Now(), absent: true},
		{name: "fast query shown in debug", debug: true, begin: time.Now(), expected: "SELECT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(tt.debug)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.absent {
				assert.Zero(t, buf.Len())

				return
			}
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newBufferedGormLogger(false)
	reqBuf := &bytes.Buffer{}
	reqLogger := slog.New(slog.NewTextHandler(reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Contains(t, reqBuf.String(), "request_id=req-42")
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.LogMode(logger.Silent).Error(context.Background(), "dropped %d", 1)
	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "kept %d", 2)
	assert.Contains(t, buf.String(), "kept 2")
}
