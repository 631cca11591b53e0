package store

import (
	"context"
	"errors"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/employeedir/employeedir/backend/go-services/internal/storage"
)

// ObjectStorage is the subset of an object store the directory needs.
// It is satisfied by *storage.MinIOStorage and by test fakes.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// ObjectStore keeps the encoded Document as one object. Object PUTs replace
// the whole object, so readers never observe a partial Document.
type ObjectStore struct {
	objects ObjectStorage
	key     string
}

func NewObjectStore(objects ObjectStorage, key string) *ObjectStore {
	if key == "" {
		key = "employees.json"
	}
	return &ObjectStore{objects: objects, key: key}
}

func (o *ObjectStore) Load(ctx context.Context) (employee.Document, error) {
	data, err := o.objects.Get(ctx, o.key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return employee.Document{Employees: []employee.Employee{}}, nil
		}
		return employee.Document{}, unavailable("object get", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return employee.Document{}, unavailable("object load", err)
	}
	return doc, nil
}

func (o *ObjectStore) Save(ctx context.Context, doc employee.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return unavailable("encode document", err)
	}
	if err := o.objects.Put(ctx, o.key, data, "application/json"); err != nil {
		return unavailable("object put", err)
	}
	return nil
}

// InitializeIfAbsent is check-then-put; object stores offer no conditional
// create through this interface.
func (o *ObjectStore) InitializeIfAbsent(ctx context.Context, seed employee.Document) error {
	ok, err := o.objects.Exists(ctx, o.key)
	if err != nil {
		return unavailable("object stat", err)
	}
	if ok {
		return nil
	}
	return o.Save(ctx, seed)
}
