package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"car-rental/internal/infra"
	"car-rental/internal/infra/store"
)

// Decoder turns one raw stored record into a validated entity.
type Decoder[T any] func(raw json.RawMessage) (T, error)

// Repository exclusively owns one loaded collection. The collection is read
// from the store once, on first use, and is read-only afterwards.
type Repository[T any] struct {
	store      store.Store
	collection string
	decode     Decoder[T]
	logger     *slog.Logger

	once    sync.Once
	items   []T
	loadErr error
}

func New[T any](st store.Store, collection string, decode Decoder[T], logger *slog.Logger) *Repository[T] {
	return &Repository[T]{
		store:      st,
		collection: collection,
		decode:     decode,
		logger:     logger,
	}
}

func (r *Repository[T]) Collection() string {
	return r.collection
}

// EnsureLoaded performs the one-time load. Concurrent first callers block on
// the same load; a failed load stays failed for the lifetime of the instance.
func (r *Repository[T]) EnsureLoaded(ctx context.Context) error {
	r.once.Do(func() {
		// The load outlives the request that happened to trigger it.
		r.items, r.loadErr = r.load(context.WithoutCancel(ctx))
	})
	return r.loadErr
}

func (r *Repository[T]) load(ctx context.Context) ([]T, error) {
	raws, err := r.store.Load(ctx, r.collection)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDataSource, "failed to load "+r.collection, err)
	}

	items := make([]T, 0, len(raws))
	for i, raw := range raws {
		item, err := r.decode(raw)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDataSource,
				fmt.Sprintf("invalid record #%d in %s", i, r.collection), err)
		}
		items = append(items, item)
	}

	r.logger.Debug("collection loaded", "collection", r.collection, "count", len(items))
	return items, nil
}

// Find returns the first record, in stored order, that satisfies match.
func (r *Repository[T]) Find(ctx context.Context, match func(T) bool) (T, error) {
	var zero T
	if err := r.EnsureLoaded(ctx); err != nil {
		return zero, err
	}

	for _, item := range r.items {
		if match(item) {
			return item, nil
		}
	}
	return zero, infra.WrapRepoErr(r.logger, infra.KindNotFound, "no matching record in "+r.collection, nil)
}

func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(r.items), nil
}
