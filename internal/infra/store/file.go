package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"car-rental/internal/pkg/errs"
)

// FileStore keeps each collection in <dir>/<name>.json.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Load(ctx context.Context, name string) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(ErrCollectionNotFound, path)
		}
		return nil, errs.Wrapf(err, "read %s", path)
	}

	records, err := decodeArray(data)
	if err != nil {
		return nil, errs.Wrapf(ErrMalformed, "%s: %v", path, err)
	}
	return records, nil
}

func (s *FileStore) Save(ctx context.Context, name string, records any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeArray(records)
	if err != nil {
		return errs.Wrapf(err, "encode collection %s", name)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errs.Wrapf(err, "create data dir %s", s.dir)
	}
	path := s.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrapf(err, "write %s", path)
	}
	return nil
}
