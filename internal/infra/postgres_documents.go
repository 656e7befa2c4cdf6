package infra

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Huspam/personal-website/internal/models"
	"github.com/Huspam/personal-website/internal/ports"
)

// documents holds one JSON object per (collection, id), mirroring a
// document-store collection.
const postgresDocumentsSchema = `
	CREATE TABLE IF NOT EXISTS documents (
		collection TEXT  NOT NULL,
		id         TEXT  NOT NULL,
		data       JSONB NOT NULL,
		PRIMARY KEY (collection, id)
	)
`

type PostgresDocuments struct {
	pool *pgxpool.Pool
}

var _ ports.DocumentStore = (*PostgresDocuments)(nil)

func NewPostgresDocuments(pool *pgxpool.Pool) *PostgresDocuments {
	return &PostgresDocuments{pool: pool}
}

func (r *PostgresDocuments) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, postgresDocumentsSchema); err != nil {
		return fmt.Errorf("ensure documents schema: %w", err)
	}
	return nil
}

func (r *PostgresDocuments) Stream(
	ctx context.Context,
	collection string,
	fn func(doc models.Document) error,
) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, data
		 FROM documents
		 WHERE collection = $1
		 ORDER BY id`,
		collection,
	)
	if err != nil {
		return fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return fmt.Errorf("scan document: %w", err)
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return fmt.Errorf("document %q: %w", id, err)
		}
		if err := fn(models.Document{ID: id, Fields: fields}); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *PostgresDocuments) Close() error {
	r.pool.Close()
	return nil
}

func decodeFields(raw []byte) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}
