package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/employeedir/employeedir/backend/go-services/internal/employee/store"
	"github.com/employeedir/employeedir/backend/go-services/pkg/metrics"
)

var (
	ErrNotFound = errors.New("employee not found")
)

// Service defines the employee operations used by the handler layer.
type Service interface {
	List(ctx context.Context) ([]employee.Employee, error)
	Get(ctx context.Context, id int) (*employee.Employee, error)
	Create(ctx context.Context, d employee.Draft) (*employee.Employee, error)
	Update(ctx context.Context, id int, d employee.Draft) (*employee.Employee, error)
	Delete(ctx context.Context, id int) (*employee.Employee, error)
}

// Directory implements Service on top of a whole-document Store. Every call
// loads the Document fresh; mutations hold mu across load, change and save so
// two concurrent creates cannot both compute the same id. Stores that
// implement store.Locker are additionally locked across the cycle, which
// covers other processes writing the same Document.
type Directory struct {
	mu    sync.Mutex
	store store.Store
}

var _ Service = (*Directory)(nil)

// NewDirectory returns a Directory backed by st.
func NewDirectory(st store.Store) *Directory {
	return &Directory{store: st}
}

// NewMemoryDirectory returns a Directory backed by an empty in-memory store.
func NewMemoryDirectory() *Directory {
	return NewDirectory(store.NewMemoryStore())
}

func record(op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	metrics.EmployeeOperations.WithLabelValues(op, outcome).Inc()
}

func (d *Directory) load(ctx context.Context) (employee.Document, error) {
	doc, err := d.store.Load(ctx)
	if err != nil {
		return employee.Document{}, fmt.Errorf("load employees: %w", err)
	}
	return doc, nil
}

// mutate runs fn against a freshly loaded Document and persists the result.
// Nothing is saved when fn fails.
func (d *Directory) mutate(ctx context.Context, fn func(doc *employee.Document) (employee.Employee, error)) (*employee.Employee, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out employee.Employee
	err := store.WithLock(ctx, d.store, func() error {
		doc, err := d.load(ctx)
		if err != nil {
			return err
		}
		if out, err = fn(&doc); err != nil {
			return err
		}
		if err := d.store.Save(ctx, doc); err != nil {
			return fmt.Errorf("save employees: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every employee in document order.
func (d *Directory) List(ctx context.Context) (out []employee.Employee, err error) {
	defer func() { record("list", err) }()
	doc, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	if doc.Employees == nil {
		return []employee.Employee{}, nil
	}
	return doc.Employees, nil
}

func (d *Directory) Get(ctx context.Context, id int) (out *employee.Employee, err error) {
	defer func() { record("get", err) }()
	doc, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	i := doc.IndexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	e := doc.Employees[i]
	return &e, nil
}

// Create appends a new employee with id 1 + max(existing ids).
func (d *Directory) Create(ctx context.Context, draft employee.Draft) (out *employee.Employee, err error) {
	defer func() { record("create", err) }()
	return d.mutate(ctx, func(doc *employee.Document) (employee.Employee, error) {
		e := draft.WithID(doc.NextID())
		doc.Employees = append(doc.Employees, e)
		return e, nil
	})
}

// Update replaces every field of the employee with the draft, keeping its id
// and position. Fields missing from the draft end up empty.
func (d *Directory) Update(ctx context.Context, id int, draft employee.Draft) (out *employee.Employee, err error) {
	defer func() { record("update", err) }()
	return d.mutate(ctx, func(doc *employee.Document) (employee.Employee, error) {
		i := doc.IndexOf(id)
		if i < 0 {
			return employee.Employee{}, ErrNotFound
		}
		e := draft.WithID(id)
		doc.Employees[i] = e
		return e, nil
	})
}

// Delete removes the employee and returns it.
func (d *Directory) Delete(ctx context.Context, id int) (out *employee.Employee, err error) {
	defer func() { record("delete", err) }()
	return d.mutate(ctx, func(doc *employee.Document) (employee.Employee, error) {
		i := doc.IndexOf(id)
		if i < 0 {
			return employee.Employee{}, ErrNotFound
		}
		removed := doc.Employees[i]
		doc.Employees = append(doc.Employees[:i], doc.Employees[i+1:]...)
		return removed, nil
	})
}
