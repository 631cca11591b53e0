package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/stretchr/testify/require"
)

func TestFileStoreLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	doc := employee.Document{Employees: []employee.Employee{{ID: 1, Name: "Alice", Position: "Eng", Department: "R&D", Email: "a@x.com", Phone: "1"}}}
	require.NoError(t, s.Save(context.Background(), doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `{
  "employees": [
    {
      "id": 1,
      "name": "Alice",
      "position": "Eng",
      "department": "R&D",
      "email": "a@x.com",
      "phone": "1"
    }
  ]
}`
	require.Equal(t, want, string(data))
}

func TestFileStoreRoundTripIsByteStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.InitializeIfAbsent(ctx, employee.Seed()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		doc, err := s.Load(ctx)
		require.NoError(t, err)
		require.NoError(t, s.Save(ctx, doc))
	}
	last, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, first, last)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "employees.json"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(context.Background(), employee.Seed()))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "employees.json", entries[0].Name())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte("{\"employees\": [ "), 0o644))
	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Load(context.Background())
	require.ErrorIs(t, err, ErrStorageUnavailable)

	// an existing but unreadable document is not replaced by the seed
	require.NoError(t, s.InitializeIfAbsent(context.Background(), employee.Seed()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{\"employees\": [ ", string(data))
}

func TestFileStoreUnreadablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.Mkdir(path, 0o755))
	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Load(context.Background())
	require.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestFileStoreSaveFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	path := filepath.Join(dir, "employees.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, employee.Seed()))

	// replacing the data dir with a file makes temp-file creation fail
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o644))
	err = s.Save(ctx, employee.Document{})
	require.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestFileStoreLockExcludesOtherInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	a, err := NewFileStore(path)
	require.NoError(t, err)
	b, err := NewFileStore(path)
	require.NoError(t, err)

	unlock, err := a.Lock(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = b.Lock(ctx)
	require.ErrorIs(t, err, ErrStorageUnavailable)

	require.NoError(t, unlock())
	unlockB, err := b.Lock(context.Background())
	require.NoError(t, err)
	require.NoError(t, unlockB())
}

func TestFileStoreInitializeWaitsForLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	unlock, err := s.Lock(context.Background())
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, s.InitializeIfAbsent(ctx, employee.Seed()), ErrStorageUnavailable)
	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, unlock())
	require.NoError(t, s.InitializeIfAbsent(context.Background(), employee.Seed()))
}
