package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS %[1]s.documents (
		seq        bigserial PRIMARY KEY,
		id         text NOT NULL UNIQUE,
		collection text NOT NULL,
		body       jsonb NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS documents_collection_seq_idx ON %[1]s.documents (collection, seq)`,
	`CREATE INDEX IF NOT EXISTS documents_body_idx ON %[1]s.documents USING gin (body jsonb_path_ops)`,
}

// EnsureSchema creates the schema and the documents table if they are missing.
// It is safe to run on every start.
func (r *DocumentRepository) EnsureSchema(ctx context.Context, schema string) error {
	ident := pgx.Identifier{schema}.Sanitize()

	if _, err := r.pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+ident); err != nil {
		return fmt.Errorf("create schema %s: %w", schema, err)
	}

	for _, stmt := range schemaStatements {
		if _, err := r.pool.Exec(ctx, fmt.Sprintf(stmt, ident)); err != nil {
			return fmt.Errorf("ensure documents table: %w", err)
		}
	}

	return nil
}
