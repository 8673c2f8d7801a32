package store

import (
	"context"
	"encoding/json"
	"errors"

	"car-rental/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS collections (
    name       text        PRIMARY KEY,
    documents  jsonb       NOT NULL CHECK (jsonb_typeof(documents) = 'array'),
    updated_at timestamptz NOT NULL DEFAULT now()
);`

const (
	loadCollectionSQL = `SELECT documents FROM collections WHERE name = $1`
	saveCollectionSQL = `
INSERT INTO collections (name, documents) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET documents = EXCLUDED.documents, updated_at = now()`
)

// DBTX is the subset of *pgxpool.Pool the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps each collection as one jsonb array row, so record order
// survives a round trip exactly as it does on disk.
type PostgresStore struct {
	db DBTX
}

func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return errs.Wrap(err, "create collections table")
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, name string) ([]json.RawMessage, error) {
	var data []byte
	if err := s.db.QueryRow(ctx, loadCollectionSQL, name).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Wrap(ErrCollectionNotFound, name)
		}
		return nil, errs.Wrapf(err, "load collection %s", name)
	}

	records, err := decodeArray(data)
	if err != nil {
		return nil, errs.Wrapf(ErrMalformed, "%s: %v", name, err)
	}
	return records, nil
}

func (s *PostgresStore) Save(ctx context.Context, name string, records any) error {
	data, err := encodeArray(records)
	if err != nil {
		return errs.Wrapf(err, "encode collection %s", name)
	}
	if _, err := s.db.Exec(ctx, saveCollectionSQL, name, data); err != nil {
		return errs.Wrapf(err, "save collection %s", name)
	}
	return nil
}
