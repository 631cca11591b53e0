package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteDocumentName = "employees"

// SqliteStore keeps the encoded Document in a single row.
//
// Table:
//
//	documents(name, body)  PRIMARY KEY (name)
type SqliteStore struct {
	db *sql.DB
}

func NewSqliteStore(dbPath string) (*SqliteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, unavailable("create data dir", err)
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, unavailable("open sqlite", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, unavailable("sqlite pragma", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		name TEXT PRIMARY KEY,
		body TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, unavailable("sqlite schema", err)
	}
	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}

func (s *SqliteStore) Load(ctx context.Context) (employee.Document, error) {
	var body string
	err := s.db.QueryRowContext(ctx, "SELECT body FROM documents WHERE name = ?", sqliteDocumentName).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Document{Employees: []employee.Employee{}}, nil
		}
		return employee.Document{}, unavailable("sqlite select", err)
	}
	doc, err := Decode([]byte(body))
	if err != nil {
		return employee.Document{}, unavailable("sqlite load", err)
	}
	return doc, nil
}

func (s *SqliteStore) Save(ctx context.Context, doc employee.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return unavailable("encode document", err)
	}
	if _, err := s.db.ExecContext(ctx, "INSERT OR REPLACE INTO documents (name, body) VALUES (?, ?)", sqliteDocumentName, string(data)); err != nil {
		return unavailable("sqlite save", err)
	}
	return nil
}

func (s *SqliteStore) InitializeIfAbsent(ctx context.Context, seed employee.Document) error {
	data, err := Encode(seed)
	if err != nil {
		return unavailable("encode document", err)
	}
	if _, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO documents (name, body) VALUES (?, ?)", sqliteDocumentName, string(data)); err != nil {
		return unavailable("sqlite seed", err)
	}
	return nil
}
