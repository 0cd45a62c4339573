package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/uninsured-dashboard/internal/config"
	"github.com/couchcryptid/uninsured-dashboard/internal/domain"
	"github.com/couchcryptid/uninsured-dashboard/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "../../internal/domain/testdata/uninsured_sample.csv"

func testConfig(dataPath string) *config.Config {
	return &config.Config{
		HTTPAddr:        "127.0.0.1:0",
		LogLevel:        "info",
		LogFormat:       "json",
		ShutdownTimeout: time.Second,
		DataPath:        dataPath,
		Variant:         "fraction",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_MissingDataFileRefusesToStart(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.csv"))
	metrics := observability.NewMetricsForTesting()

	err := run(context.Background(), cfg, discardLogger(), metrics)

	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrDataLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.DashboardReady), 0)
}

func TestRun_MalformedDataFileRefusesToStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("state_code,year,uninsured\nCA,2010,NaN\n"), 0o600))
	metrics := observability.NewMetricsForTesting()

	err := run(context.Background(), testConfig(path), discardLogger(), metrics)

	require.ErrorIs(t, err, domain.ErrDataLoad)
	var dle *domain.DataLoadError
	require.ErrorAs(t, err, &dle)
	assert.Equal(t, 2, dle.Line)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.DashboardReady), 0)
}

func TestRun_UnknownVariant(t *testing.T) {
	cfg := testConfig(sampleCSV)
	cfg.Variant = "bogus"

	err := run(context.Background(), cfg, discardLogger(), observability.NewMetricsForTesting())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestRun_StopsWhenContextCancelled(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, testConfig(sampleCSV), discardLogger(), metrics)

	require.NoError(t, err)
	assert.InDelta(t, 8, testutil.ToFloat64(metrics.RecordsLoaded), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.DashboardReady), 0)
}

func TestRun_ListenFailureIsReturned(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	cfg := testConfig(sampleCSV)
	cfg.HTTPAddr = ln.Addr().String()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = run(ctx, cfg, discardLogger(), observability.NewMetricsForTesting())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server")
}
