package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"letify_backend/internal/kvstore"
	"letify_backend/internal/logger"
)

var ErrRecordNotFound = errors.New("record not found")

// Repository stores one record family as JSON under keys sharing prefix.
type Repository[T any] struct {
	store  kvstore.Store
	prefix string
}

func NewRepository[T any](store kvstore.Store, prefix string) *Repository[T] {
	return &Repository[T]{store: store, prefix: prefix}
}

// Put writes rec under key, replacing any previous value.
func (r *Repository[T]) Put(ctx context.Context, key string, rec *T) error {
	if !strings.HasPrefix(key, r.prefix) {
		return fmt.Errorf("key %q does not belong to %q", key, r.prefix)
	}
	return kvstore.SetJSON(ctx, r.store, key, rec)
}

// Get returns ErrRecordNotFound for a missing key or a key from another family.
func (r *Repository[T]) Get(ctx context.Context, key string) (*T, error) {
	if !strings.HasPrefix(key, r.prefix) {
		return nil, ErrRecordNotFound
	}

	var rec T
	if err := kvstore.GetJSON(ctx, r.store, key, &rec); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *Repository[T]) Delete(ctx context.Context, key string) error {
	if !strings.HasPrefix(key, r.prefix) {
		return ErrRecordNotFound
	}
	return r.store.Delete(ctx, key)
}

// List returns every record of the family in key order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	return r.ListPrefix(ctx, r.prefix)
}

// ListPrefix narrows the scan to a sub-prefix, e.g. one user's thread.
// Undecodable records are logged and skipped.
func (r *Repository[T]) ListPrefix(ctx context.Context, prefix string) ([]T, error) {
	entries, err := r.store.ScanPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(entries))
	for _, e := range entries {
		var rec T
		if err := json.Unmarshal(e.Value, &rec); err != nil {
			logger.CtxWarn(ctx, "skipping undecodable record", "key", e.Key, "error", err.Error())
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
