package infra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/Huspam/personal-website/internal/models"
	"github.com/Huspam/personal-website/internal/ports"
)

const sqliteDocumentsSchema = `
	CREATE TABLE IF NOT EXISTS documents (
		collection TEXT NOT NULL,
		id         TEXT NOT NULL,
		data       TEXT NOT NULL,
		PRIMARY KEY (collection, id)
	)
`

// SQLiteDocuments is a file-backed document store for local runs.
type SQLiteDocuments struct {
	db *sql.DB
}

var _ ports.DocumentStore = (*SQLiteDocuments)(nil)

func OpenSQLiteDocuments(path string) (*SQLiteDocuments, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteDocumentsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure documents schema: %w", err)
	}
	return &SQLiteDocuments{db: db}, nil
}

// Put inserts or replaces one document.
func (s *SQLiteDocuments) Put(ctx context.Context, collection, id string, fields map[string]any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode document %q: %w", id, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)
		 ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data`,
		collection, id, string(raw),
	)
	if err != nil {
		return fmt.Errorf("put document %q: %w", id, err)
	}
	return nil
}

func (s *SQLiteDocuments) Stream(
	ctx context.Context,
	collection string,
	fn func(doc models.Document) error,
) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data FROM documents WHERE collection = ? ORDER BY id`,
		collection,
	)
	if err != nil {
		return fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return fmt.Errorf("scan document: %w", err)
		}
		fields, err := decodeFields([]byte(raw))
		if err != nil {
			return fmt.Errorf("document %q: %w", id, err)
		}
		if err := fn(models.Document{ID: id, Fields: fields}); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *SQLiteDocuments) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
