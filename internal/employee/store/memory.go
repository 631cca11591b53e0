package store

import (
	"context"
	"sync"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
)

// MemoryStore is an in-process Store used by tests and ephemeral runs.
// Loads and saves copy the Document so callers never share slices with it.
type MemoryStore struct {
	mu      sync.RWMutex
	doc     employee.Document
	present bool

	// LoadErr and SaveErr, when set, are returned instead of touching state.
	LoadErr error
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (employee.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.LoadErr != nil {
		return employee.Document{}, m.LoadErr
	}
	if !m.present {
		return employee.Document{Employees: []employee.Employee{}}, nil
	}
	return m.doc.Clone(), nil
}

func (m *MemoryStore) Save(ctx context.Context, doc employee.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.doc = doc.Clone()
	m.present = true
	return nil
}

func (m *MemoryStore) InitializeIfAbsent(ctx context.Context, seed employee.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.present {
		return nil
	}
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.doc = seed.Clone()
	m.present = true
	return nil
}
