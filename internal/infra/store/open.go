package store

import (
	"context"

	"car-rental/internal/infra/db"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
)

// Open builds the store selected by cfg.Store.Driver. The returned cleanup is
// never nil.
func Open(ctx context.Context, cfg config.Config) (Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverJSON:
		return NewFileStore(cfg.Store.DataDir), func() {}, nil
	case config.StoreDriverPostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, nil, errs.Wrap(err, "connect document store")
		}
		st := NewPostgresStore(pool)
		if err := st.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, nil, err
		}
		return st, cleanup, nil
	default:
		return nil, nil, errs.Newf("unsupported store driver %q", cfg.Store.Driver)
	}
}
