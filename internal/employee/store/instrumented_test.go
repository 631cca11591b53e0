package store

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/employeedir/employeedir/backend/go-services/pkg/logger"
	"github.com/employeedir/employeedir/backend/go-services/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedCountsFailures(t *testing.T) {
	inner := NewMemoryStore()
	s := NewInstrumented(inner, "instrumented-test")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, employee.Seed()))
	doc, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Employees, 2)
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.StoreErrors.WithLabelValues("instrumented-test", "load")))

	inner.LoadErr = errors.New("disk gone")
	_, err = s.Load(ctx)
	require.Error(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreErrors.WithLabelValues("instrumented-test", "load")))
}

func TestInstrumentedLogsFailuresAsWarnings(t *testing.T) {
	var buf bytes.Buffer
	defer logger.SetOutput(logger.SetOutput(&buf))
	logger.Init("info")

	inner := NewMemoryStore()
	inner.SaveErr = errors.New("disk full")
	s := NewInstrumented(inner, "instrumented-log-test")
	require.Error(t, s.Save(context.Background(), employee.Seed()))

	require.Contains(t, buf.String(), "[WARN] store instrumented-log-test save failed: disk full")
	require.NotContains(t, buf.String(), "[ERROR]")
}

func TestInstrumentedForwardsLock(t *testing.T) {
	fs, err := NewFileStore(t.TempDir() + "/employees.json")
	require.NoError(t, err)
	var st Store = NewInstrumented(fs, "instrumented-lock-test")
	_, ok := st.(Locker)
	require.True(t, ok)

	locked := false
	require.NoError(t, WithLock(context.Background(), st, func() error {
		locked = true
		return nil
	}))
	require.True(t, locked)
}
