package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/gofrs/flock"
)

const lockRetryDelay = 10 * time.Millisecond

// FileStore keeps the Document in one JSON file. Saves go through a temp file
// in the same directory followed by a rename, so readers see either the old
// or the new Document and never a partial write.
//
// Writers in other processes are serialized through an flock on path+".lock"
// (see Lock). The in-process mutex only guards this instance.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates the parent directory of path if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, unavailable("create data dir", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the location of the JSON file.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(ctx context.Context) (employee.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

func (s *FileStore) Save(ctx context.Context, doc employee.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Lock takes an exclusive flock on the lock file next to the Document. Each
// call opens its own handle, so goroutines sharing one FileStore contend the
// same way separate processes do.
func (s *FileStore) Lock(ctx context.Context) (func() error, error) {
	lock := flock.New(s.path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, unavailable("lock "+lock.Path(), err)
	}
	if !locked {
		return nil, unavailable("lock "+lock.Path(), errors.New("lock not acquired"))
	}
	return lock.Unlock, nil
}

func (s *FileStore) InitializeIfAbsent(ctx context.Context, seed employee.Document) error {
	unlock, err := s.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return unavailable("stat "+s.path, err)
	}
	return s.write(seed)
}

func (s *FileStore) read() (employee.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return employee.Document{Employees: []employee.Employee{}}, nil
		}
		return employee.Document{}, unavailable("read "+s.path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return employee.Document{}, unavailable("load "+s.path, err)
	}
	return doc, nil
}

func (s *FileStore) write(doc employee.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return unavailable("encode document", err)
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return unavailable("write "+s.path, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
