package store

import (
	"context"
	"path/filepath"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/employeedir/employeedir/backend/go-services/internal/config"
	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/stretchr/testify/require"
)

func TestFactory(t *testing.T) {
	dir := t.TempDir()
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	cases := []config.Config{
		{Store: config.StoreConfig{Backend: "file", DataFile: filepath.Join(dir, "employees.json")}},
		{Store: config.StoreConfig{Backend: "memory"}},
		{Store: config.StoreConfig{Backend: "bolt"}, Bolt: config.BoltConfig{Path: filepath.Join(dir, "employees.db")}},
		{Store: config.StoreConfig{Backend: "sqlite"}, SQLite: config.SQLiteConfig{Path: filepath.Join(dir, "employees.sqlite")}},
		{Store: config.StoreConfig{Backend: "redis"}, Redis: config.RedisConfig{Host: m.Host(), Port: m.Port(), Key: "factory"}},
	}
	for _, cfg := range cases {
		cfg := cfg
		t.Run(cfg.Store.Backend, func(t *testing.T) {
			s, closeFn, err := New(context.Background(), &cfg)
			require.NoError(t, err)
			defer closeFn()
			require.IsType(t, &Instrumented{}, s)

			require.NoError(t, s.InitializeIfAbsent(context.Background(), employee.Seed()))
			doc, err := s.Load(context.Background())
			require.NoError(t, err)
			require.Len(t, doc.Employees, 2)
		})
	}
}

func TestFactoryUnknownBackend(t *testing.T) {
	_, closeFn, err := New(context.Background(), &config.Config{Store: config.StoreConfig{Backend: "cassandra"}})
	require.Error(t, err)
	require.NotNil(t, closeFn)
}
