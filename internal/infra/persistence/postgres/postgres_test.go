package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_RequiresPostgresSection(t *testing.T) {
	db, err := New(Params{Config: &config.Config{}, Logger: newTestSlogLogger()})

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "postgres configuration is missing")
}

func TestMonitorPool_ReturnsWithoutDatabase(t *testing.T) {
	done := make(chan struct{})
	go func() {
		monitorPool(context.Background(), newTestSlogLogger(), nil, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitorPool kept running without a database")
	}
}
