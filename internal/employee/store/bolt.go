package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"go.etcd.io/bbolt"
)

var (
	boltBucket = []byte("employees")
	boltKey    = []byte("document")
)

// BoltStore keeps the encoded Document as one value in an embedded bbolt file.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens or creates the bbolt file at path.
func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, unavailable("create data dir", err)
	}
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, unavailable("open bolt", err)
	}
	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}

func (b *BoltStore) Load(ctx context.Context) (employee.Document, error) {
	doc := employee.Document{Employees: []employee.Employee{}}
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if bucket == nil {
			return nil
		}
		data := bucket.Get(boltKey)
		if data == nil {
			return nil
		}
		d, err := Decode(data)
		if err != nil {
			return err
		}
		doc = d
		return nil
	})
	if err != nil {
		return employee.Document{}, unavailable("bolt load", err)
	}
	return doc, nil
}

func (b *BoltStore) Save(ctx context.Context, doc employee.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return unavailable("encode document", err)
	}
	err = b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(boltBucket)
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		return bucket.Put(boltKey, data)
	})
	if err != nil {
		return unavailable("bolt save", err)
	}
	return nil
}

func (b *BoltStore) InitializeIfAbsent(ctx context.Context, seed employee.Document) error {
	data, err := Encode(seed)
	if err != nil {
		return unavailable("encode document", err)
	}
	err = b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(boltBucket)
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		if bucket.Get(boltKey) != nil {
			return nil
		}
		return bucket.Put(boltKey, data)
	})
	if err != nil {
		return unavailable("bolt seed", err)
	}
	return nil
}
