package store

import (
	"context"
	"encoding/json"
	"fmt"

	"loantracker/internal/utils"
	"loantracker/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Unqualified so the pool's search_path picks the schema.
const documentTableName = "documents"

const maxListedCollections = 10

type documentRow struct {
	ID   string `db:"id"`
	Body []byte `db:"body"`
}

// DocumentRepository stores every record type as a JSON document in a single
// table, keyed by collection name.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

// Insert appends record to collection and returns the assigned identifier.
func (r *DocumentRepository) Insert(ctx context.Context, collection string, record any) (string, error) {
	id := utils.NanoID()

	query, args, err := buildInsert(id, collection, record)
	if err != nil {
		return "", err
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return "", utils.ErrorWrapOrNil(err, fmt.Sprintf("failed to insert %s document", collection))
	}

	return id, nil
}

// Query returns every document in collection whose fields equal all of the
// filter's values, in insertion order. An empty filter matches everything.
func (r *DocumentRepository) Query(ctx context.Context, collection string, filter map[string]any) ([]types.Document, error) {
	query, args, err := buildQuery(collection, filter)
	if err != nil {
		return nil, err
	}

	var rows []documentRow
	if err := pgxscan.Select(ctx, r.pool, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s documents: %w", collection, err)
	}

	return decodeRows(rows)
}

// Collections lists the names of collections holding at least one document.
func (r *DocumentRepository) Collections(ctx context.Context) ([]string, error) {
	query, args, err := psql().
		Select("collection").
		Distinct().
		From(documentTableName).
		OrderBy("collection ASC").
		Limit(maxListedCollections).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate collections query: %w", err)
	}

	out := make([]string, 0)
	if err := pgxscan.Select(ctx, r.pool, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select collections: %w", err)
	}

	return out, nil
}

func buildInsert(id, collection string, record any) (string, []any, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return "", nil, fmt.Errorf("marshal %s document: %w", collection, err)
	}

	query, args, err := psql().
		Insert(documentTableName).
		Columns("id", "collection", "body").
		Values(id, collection, string(body)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate insert %s query: %w", collection, err)
	}

	return query, args, nil
}

func buildQuery(collection string, filter map[string]any) (string, []any, error) {
	builder := psql().
		Select("id", "body").
		From(documentTableName).
		Where(sq.Eq{"collection": collection}).
		OrderBy("seq ASC")

	if len(filter) > 0 {
		contains, err := json.Marshal(filter)
		if err != nil {
			return "", nil, fmt.Errorf("marshal %s filter: %w", collection, err)
		}
		builder = builder.Where(sq.Expr("body @> ?::jsonb", string(contains)))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate %s query: %w", collection, err)
	}

	return query, args, nil
}

func decodeRows(rows []documentRow) ([]types.Document, error) {
	docs := make([]types.Document, 0, len(rows))
	for _, row := range rows {
		doc := make(types.Document)
		if err := json.Unmarshal(row.Body, &doc); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", row.ID, err)
		}
		doc[types.DocumentIDKey] = row.ID
		docs = append(docs, doc)
	}
	return docs, nil
}
