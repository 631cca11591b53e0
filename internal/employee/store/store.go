// Package store persists the employee Document as a single unit.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
)

var (
	// ErrStorageUnavailable wraps every failure to read, decode or write the
	// persisted Document. Callers should treat it as a server-side fault.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Store loads and saves the whole Document. Implementations never apply
// partial updates; Save replaces the persisted representation in full.
type Store interface {
	// Load returns the persisted Document, or an empty one when nothing has
	// been written yet.
	Load(ctx context.Context) (employee.Document, error)

	// Save replaces the persisted Document.
	Save(ctx context.Context, doc employee.Document) error

	// InitializeIfAbsent writes seed only when no Document exists yet.
	InitializeIfAbsent(ctx context.Context, seed employee.Document) error
}

// Locker is implemented by stores whose Document can be shared with other
// processes. The lock serializes a whole load, change and save cycle; Save
// itself does not take it.
type Locker interface {
	Lock(ctx context.Context) (unlock func() error, err error)
}

// WithLock runs fn while holding st's lock, or runs it directly when st has
// no cross-process lock.
func WithLock(ctx context.Context, st Store, fn func() error) (err error) {
	l, ok := st.(Locker)
	if !ok {
		return fn()
	}
	unlock, err := l.Lock(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if uerr := unlock(); uerr != nil && err == nil {
			err = unavailable("unlock", uerr)
		}
	}()
	return fn()
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}

// Encode renders the persisted layout: {"employees": [...]} with two-space
// indentation and no trailing newline. Text is written unescaped, so "R&D"
// stays "R&D". The output is stable for equal documents.
func Encode(doc employee.Document) ([]byte, error) {
	if doc.Employees == nil {
		doc.Employees = []employee.Employee{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses the persisted layout and rejects duplicate ids. A null
// employees array decodes to an empty one.
func Decode(data []byte) (employee.Document, error) {
	var doc employee.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return employee.Document{}, fmt.Errorf("decode document: %w", err)
	}
	if doc.Employees == nil {
		doc.Employees = []employee.Employee{}
	}
	if err := doc.Validate(); err != nil {
		return employee.Document{}, err
	}
	return doc, nil
}
